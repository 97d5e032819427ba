package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Worker WorkerConfig
	Sentry SentryConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=user_graph"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,        default=0"`
	QueueKey string `env:"REDIS_QUEUE_KEY, default=user-graph:tasks"`
}

type WorkerConfig struct {
	Concurrency int           `env:"WORKER_CONCURRENCY, default=8"`
	PollTimeout time.Duration `env:"WORKER_POLL_TIMEOUT, default=5s"`
	DedupTTL    time.Duration `env:"WORKER_DEDUP_TTL,   default=24h"`

	// CleanupInterval is how often the idle-account sweep is scheduled.
	CleanupInterval time.Duration `env:"WORKER_CLEANUP_INTERVAL, default=24h"`
	// IdleAfter is how long without a login before an account is deactivated.
	IdleAfter time.Duration `env:"WORKER_IDLE_AFTER, default=8760h"`
}

type SentryConfig struct {
	DSN        string  `env:"SENTRY_DSN"`
	SampleRate float64 `env:"SENTRY_TRACES_SAMPLE_RATE, default=0"`
}

// IsDevelopment reports whether the service runs with developer defaults
// such as pretty console logs.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadContext(context.Background())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadContext is Load with the error returned instead of a panic.
func LoadContext(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
