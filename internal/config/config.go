package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DatabaseDSN    string
	MigrationsDir  string
	MigrationsDSN  string
	MigrateOnStart bool

	GRPCAddress string
	GinMode     string

	JWTSecret string
	JWTTTL    time.Duration

	KafkaBrokers []string
	UpdatesTopic string

	RedisAddr       string
	RedisPassword   string
	LoginRateLimit  int
	LoginRateWindow time.Duration

	SeedUsers     string
	SeedChatTitle string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("MIGRATIONS_DIR", "file://migrations")
	v.SetDefault("MIGRATE_ON_START", false)
	v.SetDefault("GRPC_ADDRESS", "0.0.0.0:9090")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("JWT_TTL", 24*time.Hour)
	v.SetDefault("UPDATES_TOPIC", "chat-updates")
	v.SetDefault("LOGIN_RATE_LIMIT", 5)
	v.SetDefault("LOGIN_RATE_WINDOW", time.Minute)
	v.SetDefault("SEED_CHAT_TITLE", "Family")
}

// Load reads an optional .env file (envFiles, or ".env" when none given) and
// then the process environment. The environment wins over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		DatabaseDSN:     v.GetString("DB_DSN"),
		MigrationsDir:   v.GetString("MIGRATIONS_DIR"),
		MigrationsDSN:   v.GetString("MIGRATIONS_DSN"),
		MigrateOnStart:  v.GetBool("MIGRATE_ON_START"),
		GRPCAddress:     v.GetString("GRPC_ADDRESS"),
		GinMode:         v.GetString("GIN_MODE"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTTTL:          v.GetDuration("JWT_TTL"),
		KafkaBrokers:    splitList(v.GetString("KAFKA_BROKERS")),
		UpdatesTopic:    v.GetString("UPDATES_TOPIC"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		LoginRateLimit:  v.GetInt("LOGIN_RATE_LIMIT"),
		LoginRateWindow: v.GetDuration("LOGIN_RATE_WINDOW"),
		SeedUsers:       v.GetString("SEED_USERS"),
		SeedChatTitle:   v.GetString("SEED_CHAT_TITLE"),
	}

	if cfg.MigrationsDSN == "" {
		cfg.MigrationsDSN = migrationsDSN(cfg.DatabaseDSN)
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("DB_DSN environment variable must be defined")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable must be defined")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	return nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}

// migrationsDSN turns a postgres:// url into the pgx:// scheme golang-migrate expects.
func migrationsDSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
