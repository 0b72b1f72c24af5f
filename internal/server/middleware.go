package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/practice-sem-2/chat-service/internal/models"
	"github.com/practice-sem-2/chat-service/internal/ratelimit"
	"github.com/practice-sem-2/chat-service/internal/usecases"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
	principalKey    = "principal"
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func accessLog(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"request_id": c.GetString(requestIDKey),
		})
		if user := principal(c); user != nil {
			entry = entry.WithField("user_id", user.UserID)
		}

		if err := c.Errors.Last(); err != nil {
			entry.WithError(err.Err).Error("request failed")
			return
		}
		entry.Info("request served")
	}
}

// authenticate resolves the bearer token to a user and stores it in the
// gin context. Requests without a valid token never reach the handlers.
func authenticate(users *usecases.UsersUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			abortWithError(c, usecases.ErrAuthenticationRequired)
			return
		}

		user, err := users.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Set(principalKey, user)
		c.Next()
	}
}

func principal(c *gin.Context) *models.User {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}

func extractBearer(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// limitByIP rejects requests with 429 once the client IP runs out of attempts.
// A limiter backend failure lets the request through.
func limitByIP(limiter ratelimit.Limiter, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.
				WithError(err).
				WithField("client_ip", c.ClientIP()).
				Warn("login rate limit check failed, allowing request")
			c.Next()
			return
		}

		if res.Limit > 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(res.ResetIn.Seconds()), 10))
		}
		if !res.Allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "too many login attempts",
				Code:  "RATE_LIMITED",
			})
			return
		}
		c.Next()
	}
}
