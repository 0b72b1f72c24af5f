package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/practice-sem-2/chat-service/internal/ratelimit"
	"github.com/practice-sem-2/chat-service/internal/usecases"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	engine       *gin.Engine
	users        *usecases.UsersUsecase
	chats        *usecases.ChatsUsecase
	health       *HealthChecker
	loginLimiter ratelimit.Limiter
	logger       *logrus.Logger
}

func New(
	users *usecases.UsersUsecase,
	chats *usecases.ChatsUsecase,
	health *HealthChecker,
	loginLimiter ratelimit.Limiter,
	logger *logrus.Logger,
) *Server {
	if loginLimiter == nil {
		loginLimiter = ratelimit.Unlimited{}
	}

	s := &Server{
		engine:       gin.New(),
		users:        users,
		chats:        chats,
		health:       health,
		loginLimiter: loginLimiter,
		logger:       logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.Use(gin.Recovery(), requestID(), accessLog(s.logger))

	s.engine.GET("/health", s.health.handle)
	s.engine.POST("/register", s.register)
	s.engine.POST("/login", limitByIP(s.loginLimiter, s.logger), s.login)

	authorized := s.engine.Group("/", authenticate(s.users))

	users := authorized.Group("/users")
	users.GET("", s.listUsers)
	users.GET("/:id", s.getUser)
	users.PUT("/:id", s.updateProfile)
	users.POST("/:id/password", s.changePassword)
	users.GET("/:id/chats", s.userChats)

	chats := authorized.Group("/chats")
	chats.POST("", s.createChat)
	chats.GET("/:id", s.getChat)
	chats.GET("/:id/messages", s.getMessages)
	chats.POST("/:id/messages", s.postMessage)
	chats.GET("/:id/members", s.listMembers)
	chats.POST("/:id/members", s.addMember)
	chats.DELETE("/:id/members/:userId", s.removeMember)
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP on address until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.logger.Infof("http server listening on %s", address)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
