package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadContext_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadContext(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "user_graph", cfg.Mongo.Database)
	assert.Equal(t, "user-graph:tasks", cfg.Redis.QueueKey)
	assert.Equal(t, 8, cfg.Worker.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.Worker.PollTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Worker.CleanupInterval)
	assert.Equal(t, 365*24*time.Hour, cfg.Worker.IdleAfter)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadContext_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "production")
	t.Setenv("WORKER_CONCURRENCY", "2")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("WORKER_IDLE_AFTER", "720h")

	cfg, err := LoadContext(context.Background())
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 2, cfg.Worker.Concurrency)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.Worker.IdleAfter)
}

func TestLoadContext_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := LoadContext(context.Background())
	assert.Error(t, err)
}
