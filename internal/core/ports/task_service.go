package ports

import (
	"context"

	"github.com/ryde/user-graph/internal/core/domain"
)

// TaskQueue hands deferred work to the background worker. Enqueue only
// guarantees the message was accepted, not that it will be processed.
type TaskQueue interface {
	Enqueue(ctx context.Context, task domain.Task) error
}

// TaskService processes tasks pulled off the queue.
type TaskService interface {
	Process(ctx context.Context, task domain.Task) error
}

// Stats is the admin snapshot of the user graph.
type Stats struct {
	TotalUsers          int64
	ActiveUsers         int64
	UsersWithLocation   int64
	FriendshipsByStatus map[domain.FriendshipStatus]int64
}

type StatsService interface {
	Snapshot(ctx context.Context) (*Stats, error)
}
