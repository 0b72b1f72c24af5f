package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shopify/sarama"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/practice-sem-2/chat-service/internal/auth"
	"github.com/practice-sem-2/chat-service/internal/config"
	"github.com/practice-sem-2/chat-service/internal/ratelimit"
	"github.com/practice-sem-2/chat-service/internal/server"
	storage "github.com/practice-sem-2/chat-service/internal/storages"
	"github.com/practice-sem-2/chat-service/internal/usecases"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

func initLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
		logger.
			WithField("log_level", level).
			Warning("specified invalid log level")
	} else {
		logger.SetLevel(logLevel)
		logger.
			WithField("log_level", level).
			Infof("specified %s log level", logLevel.String())
	}

	return logger
}

func initDB(dsn string, logger *logrus.Logger) *sqlx.DB {
	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		logger.Fatalf("can't connect to database: %s", err.Error())
	}

	err = db.Ping()

	if err != nil {
		logger.Fatalf("database ping failed: %s", err.Error())
	}

	logger.Info("successfully connected to database")
	return db
}

func runMigrations(cfg *config.Config, logger *logrus.Logger) {
	m, err := migrate.New(cfg.MigrationsDir, cfg.MigrationsDSN)
	if err != nil {
		logger.Fatalf("can't open migrations: %s", err.Error())
	}
	defer m.Close()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatalf("migrations failed: %s", err.Error())
	}
	logger.Info("database schema is up to date")
}

func initProducer(brokers []string, logger *logrus.Logger) sarama.SyncProducer {
	config := sarama.NewConfig()
	config.Producer.Partitioner = sarama.NewHashPartitioner
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Timeout = 10 * time.Second
	config.Producer.Return.Successes = true
	producer, err := sarama.NewSyncProducer(brokers, config)

	if err != nil {
		logger.WithError(err).Fatalf("can't create producer")
	}

	return producer
}

func initLoginLimiter(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (ratelimit.Limiter, func()) {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR is not set, login attempts are not limited")
		return ratelimit.Unlimited{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatalf("redis ping failed: %s", err.Error())
	}

	limiter := ratelimit.NewRedisLimiter(client, "login", cfg.LoginRateLimit, cfg.LoginRateWindow)
	return limiter, func() { _ = client.Close() }
}

func serveGRPC(ctx context.Context, address string, health *server.HealthChecker, logger *logrus.Logger) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("can't listen to address: %w", err)
	}
	logger.Infof("grpc health server listening on %s", address)

	srv := health.NewGRPCServer()
	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	if err = srv.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func main() {
	var host string
	var port int
	var logLevel string
	var seed bool

	flag.IntVar(&port, "port", 80, "port on which server will be started")
	flag.StringVar(&host, "host", "0.0.0.0", "host on which server will be started")
	flag.StringVar(&logLevel, "log", "info", "log level")
	flag.BoolVar(&seed, "seed", false, "create SEED_USERS and a shared chat when the database is empty")

	flag.Parse()

	logger := initLogger(logLevel)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("invalid configuration: %s", err.Error())
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer stop()

	if cfg.MigrateOnStart {
		runMigrations(cfg, logger)
	}

	db := initDB(cfg.DatabaseDSN, logger)
	defer func(db *sqlx.DB) {
		err := db.Close()
		if err != nil {
			logger.Errorf("during db connection close an error occurred: %s", err.Error())
		}
	}(db)

	var updates storage.UpdatesStore = storage.DiscardUpdates{}
	if len(cfg.KafkaBrokers) > 0 {
		producer := initProducer(cfg.KafkaBrokers, logger)
		defer func() {
			if err := producer.Close(); err != nil {
				logger.WithError(err).Error("can't close producer")
			}
		}()
		updates = storage.NewUpdatesStore(producer, &storage.UpdatesStoreConfig{
			UpdatesTopic: cfg.UpdatesTopic,
		})
	} else {
		logger.Info("KAFKA_BROKERS is not set, updates are discarded")
	}

	store := storage.NewRegistry(db, updates)

	if seed {
		users, err := usecases.ParseSeedUsers(cfg.SeedUsers)
		if err != nil {
			logger.Fatalf("invalid SEED_USERS: %s", err.Error())
		}
		if err = usecases.Seed(ctx, store, users, cfg.SeedChatTitle, logger); err != nil {
			logger.Fatalf("seeding failed: %s", err.Error())
		}
	}

	limiter, closeLimiter := initLoginLimiter(ctx, cfg, logger)
	defer closeLimiter()

	validate := usecases.NewValidator()
	usersUsecase := usecases.NewUsersUsecase(store, validate, auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL))
	chatsUsecase := usecases.NewChatsUsecase(store, validate)
	health := server.NewHealthChecker(db, 10*time.Second, logger)
	srv := server.New(usersUsecase, chatsUsecase, health, limiter, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		health.Watch(gctx)
		return nil
	})
	g.Go(func() error {
		return serveGRPC(gctx, cfg.GRPCAddress, health, logger)
	})
	g.Go(func() error {
		return srv.Run(gctx, fmt.Sprintf("%s:%d", host, port))
	})

	if err = g.Wait(); err != nil {
		logger.Errorf("server stopped with error: %s", err.Error())
		os.Exit(1)
	}
	logger.Info("gracefully shut down")
}
