package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const ServiceName = "chat-service"

type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthChecker pings the database and mirrors the result into the gRPC
// health service, both for the whole server and for ServiceName.
type HealthChecker struct {
	db       Pinger
	status   *health.Server
	interval time.Duration
	timeout  time.Duration
	logger   *logrus.Logger
}

func NewHealthChecker(db Pinger, interval time.Duration, logger *logrus.Logger) *HealthChecker {
	return &HealthChecker{
		db:       db,
		status:   health.NewServer(),
		interval: interval,
		timeout:  2 * time.Second,
		logger:   logger,
	}
}

func (h *HealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	err := h.db.PingContext(ctx)
	servingStatus := healthpb.HealthCheckResponse_SERVING
	if err != nil {
		servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.status.SetServingStatus("", servingStatus)
	h.status.SetServingStatus(ServiceName, servingStatus)
	return err
}

// Watch re-checks the database every interval until ctx is done, then marks
// the service as shutting down.
func (h *HealthChecker) Watch(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.check(ctx)
	for {
		select {
		case <-ctx.Done():
			h.status.Shutdown()
			return
		case <-ticker.C:
			h.check(ctx)
		}
	}
}

func (h *HealthChecker) check(ctx context.Context) {
	if err := h.Check(ctx); err != nil && ctx.Err() == nil {
		h.logger.WithError(err).Warn("database health check failed")
	}
}

func (h *HealthChecker) NewGRPCServer() *grpc.Server {
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, h.status)
	reflection.Register(srv)
	return srv
}

func (h *HealthChecker) handle(c *gin.Context) {
	if err := h.Check(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
