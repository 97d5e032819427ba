package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/service"
	"github.com/ryde/user-graph/internal/infrastructure/db/mongo"
	"github.com/ryde/user-graph/internal/infrastructure/db/redis"
	"github.com/ryde/user-graph/internal/infrastructure/queue"
	"github.com/ryde/user-graph/internal/infrastructure/reporting"
	"github.com/ryde/user-graph/internal/pkg/config"
	"github.com/ryde/user-graph/pkg/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	retryBackoff    = time.Second
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "user-graph-worker",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("worker stopped")
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

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	users := mongo.NewUserRepository(db)
	friendships := mongo.NewFriendshipRepository(db)
	nearby := service.NewNearbyService(users, friendships, logger.Component("nearby"))
	tasks := service.NewTaskService(users, nearby, redis.NewDedupChecker(rdb, cfg.Worker.DedupTTL), cfg.Worker.IdleAfter, logger.Component("tasks"))

	// Workers run on their own context so buffered tasks drain after a signal.
	workCtx, cancelWork := context.WithCancel(context.Background())
	defer cancelWork()
	dispatcher := queue.NewDispatcher(cfg.Worker.Concurrency, tasks, reporter, logger.Component("dispatcher"))
	dispatcher.Start(workCtx)

	source := redis.NewTaskQueue(rdb, cfg.Redis.QueueKey)
	backlog, err := source.Len(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not read queue backlog")
	}
	log.Info().
		Str("queue", cfg.Redis.QueueKey).
		Int64("backlog", backlog).
		Int("concurrency", cfg.Worker.Concurrency).
		Msg("worker started")

	go scheduleCleanup(ctx, source, cfg.Worker.CleanupInterval, log)
	poll(ctx, source, dispatcher, cfg.Worker.PollTimeout, log)

	log.Info().Msg("draining buffered tasks")
	done := make(chan struct{})
	go func() {
		dispatcher.Close()
		close(done)
	}()
	select {
	case <-done:
		log.Info().Msg("graceful shutdown complete")
	case <-time.After(shutdownTimeout):
		cancelWork()
		log.Warn().Msg("shutdown timed out, abandoning buffered tasks")
	}
	return nil
}

// poll moves tasks from Redis into the dispatcher until ctx is cancelled.
func poll(ctx context.Context, source *redis.TaskQueue, dispatcher *queue.Dispatcher, wait time.Duration, log zerolog.Logger) {
	for ctx.Err() == nil {
		task, ok, err := source.Dequeue(ctx, wait)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			if errors.Is(err, redis.ErrMalformedTask) {
				log.Warn().Err(err).Msg("dropped malformed task")
				continue
			}
			log.Error().Err(err).Msg("dequeue failed")
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryBackoff):
			}
			continue
		}
		if ok {
			dispatcher.Enqueue(task)
		}
	}
}

// scheduleCleanup queues the idle-account sweep at startup and then every
// interval. Sweeps share a per-day ID, so restarts do not repeat one.
func scheduleCleanup(ctx context.Context, source *redis.TaskQueue, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		log.Info().Msg("idle-account cleanup disabled")
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		task := domain.NewCleanupTask(time.Now())
		if err := source.Enqueue(ctx, task); err != nil {
			log.Error().Err(err).Str("task_id", task.ID).Msg("failed to schedule cleanup")
		} else {
			log.Debug().Str("task_id", task.ID).Msg("cleanup scheduled")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
