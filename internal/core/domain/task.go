package domain

import "time"

// TaskType names a unit of deferred work handed to the background worker.
type TaskType string

const (
	TaskWelcomeUser         TaskType = "user.welcome"
	TaskLocationUpdated     TaskType = "user.location_updated"
	TaskFriendshipRequested TaskType = "friendship.requested"
	TaskFriendshipAccepted  TaskType = "friendship.accepted"
	TaskCleanupInactive     TaskType = "user.cleanup_inactive"
)

// DefaultIdleAfter is how long an account may go without a login before
// the cleanup task deactivates it.
const DefaultIdleAfter = 365 * 24 * time.Hour

// Task is the message enqueued for the background worker.
type Task struct {
	ID            string    `json:"id"`
	Type          TaskType  `json:"type"`
	UserID        string    `json:"user_id"`
	RelatedUserID string    `json:"related_user_id,omitempty"`
	FriendshipID  string    `json:"friendship_id,omitempty"`
	RadiusKm      float64   `json:"radius_km,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewCleanupTask builds the periodic idle-account sweep. The ID is fixed per
// UTC day so repeated scheduling within a day is deduplicated.
func NewCleanupTask(now time.Time) Task {
	now = now.UTC()
	return Task{
		ID:        string(TaskCleanupInactive) + ":" + now.Format("2006-01-02"),
		Type:      TaskCleanupInactive,
		CreatedAt: now,
	}
}
