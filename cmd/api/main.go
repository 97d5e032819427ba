// @title                       User Graph API
// @version                     1.0
// @description                 User accounts, friendships and proximity search.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/ryde/user-graph/internal/api"
	"github.com/ryde/user-graph/internal/api/handler"
	"github.com/ryde/user-graph/internal/core/service"
	"github.com/ryde/user-graph/internal/infrastructure/db/mongo"
	"github.com/ryde/user-graph/internal/infrastructure/db/redis"
	"github.com/ryde/user-graph/internal/infrastructure/reporting"
	"github.com/ryde/user-graph/internal/pkg/config"
	"github.com/ryde/user-graph/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "user-graph-api",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("api stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reporter := reporting.NewReporter(reporting.Options{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Env,
		SampleRate:  cfg.Sentry.SampleRate,
	}, logger.Component("sentry"))
	defer reporter.Flush(2 * time.Second)

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()

	users := mongo.NewUserRepository(db)
	friendships := mongo.NewFriendshipRepository(db)
	if err := mongo.EnsureIndexes(ctx, users, friendships); err != nil {
		return err
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	tasks := redis.NewTaskQueue(rdb, cfg.Redis.QueueKey)
	services := api.Services{
		Auth:        service.NewAuthService(users, tasks, cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth")),
		Users:       service.NewUserService(users, tasks, logger.Component("users")),
		Friendships: service.NewFriendshipService(friendships, users, tasks, logger.Component("friendships")),
		Nearby:      service.NewNearbyService(users, friendships, logger.Component("nearby")),
		Stats:       service.NewStatsService(users, friendships),
	}

	e := api.NewRouter(api.RouterConfig{
		JWTSecret: cfg.JWTSecret,
		Services:  services,
		Health: map[string]handler.Pinger{
			"mongodb": handler.PingerFunc(func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }),
			"redis":   handler.PingerFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		},
		Reporter: reporter,
		Logger:   logger.Component("http"),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      e,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Info().Msg("graceful shutdown complete")
	return nil
}
