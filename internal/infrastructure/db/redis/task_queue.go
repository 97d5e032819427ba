package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ryde/user-graph/internal/core/domain"
)

// DefaultQueueKey is the Redis list tasks are pushed to.
const DefaultQueueKey = "user-graph:tasks"

// ErrMalformedTask means a payload on the queue could not be decoded. The
// payload has already been popped; retrying will not bring it back.
var ErrMalformedTask = errors.New("malformed task payload")

// ListClient is the subset of *redis.Client the queue uses.
type ListClient interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
	LLen(ctx context.Context, key string) *redis.IntCmd
}

// TaskQueue is a FIFO of JSON encoded tasks on a Redis list: producers
// LPUSH, the worker BRPOPs.
type TaskQueue struct {
	client ListClient
	key    string
}

func NewTaskQueue(client ListClient, key string) *TaskQueue {
	if key == "" {
		key = DefaultQueueKey
	}
	return &TaskQueue{client: client, key: key}
}

func (q *TaskQueue) Enqueue(ctx context.Context, task domain.Task) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("encode task: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}
	return nil
}

// Dequeue blocks for up to wait for the next task. It returns ok=false when
// the wait elapsed with an empty queue.
func (q *TaskQueue) Dequeue(ctx context.Context, wait time.Duration) (domain.Task, bool, error) {
	res, err := q.client.BRPop(ctx, wait, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Task{}, false, nil
	}
	if err != nil {
		return domain.Task{}, false, fmt.Errorf("dequeue task: %w", err)
	}

	// res is [key, value].
	if len(res) != 2 {
		return domain.Task{}, false, fmt.Errorf("%w: unexpected reply of %d elements", ErrMalformedTask, len(res))
	}
	var task domain.Task
	if err := json.Unmarshal([]byte(res[1]), &task); err != nil {
		return domain.Task{}, false, fmt.Errorf("%w: %v", ErrMalformedTask, err)
	}
	return task, true, nil
}

// Len reports the number of tasks waiting.
func (q *TaskQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
