package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ryde/user-graph/internal/api/metrics"
)

const dedupTTL = 24 * time.Hour

// DedupChecker provides idempotency checks backed by Redis.
// Key format: dedup:task:<task_id>
type DedupChecker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
// A non-positive ttl falls back to dedupTTL.
func NewDedupChecker(client *redis.Client, ttl time.Duration) *DedupChecker {
	if ttl <= 0 {
		ttl = dedupTTL
	}
	return &DedupChecker{client: client, ttl: ttl}
}

// IsDuplicate reports whether this task has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, taskID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(taskID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	if n > 0 {
		metrics.TasksDedupTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	metrics.TasksDedupTotal.WithLabelValues("miss").Inc()
	return false, nil
}

// Mark records that this task has been processed (expires after the ttl).
func (d *DedupChecker) Mark(ctx context.Context, taskID string) error {
	return d.client.SetNX(ctx, d.key(taskID), "1", d.ttl).Err()
}

func (d *DedupChecker) key(taskID string) string {
	return "dedup:task:" + taskID
}
