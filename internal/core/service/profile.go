package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/ports"
)

const minPasswordLength = 8

func utcNow() time.Time { return time.Now().UTC() }

func newProfile(u *domain.User, now time.Time) ports.UserProfile {
	return ports.UserProfile{User: u, Age: u.Age(now), HasLocation: u.HasLocation()}
}

func newUserPage(users []*domain.User, page ports.Pagination, total int64, now time.Time) *ports.UserPage {
	items := make([]ports.UserProfile, 0, len(users))
	for _, u := range users {
		items = append(items, newProfile(u, now))
	}
	return &ports.UserPage{Items: items, Meta: ports.NewPageMeta(page, total)}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// activeUser loads id and hides deactivated accounts behind ErrUserNotFound.
func activeUser(ctx context.Context, users ports.UserRepository, id string) (*domain.User, error) {
	u, err := users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func validateDateOfBirth(dob *time.Time, now time.Time) error {
	if dob != nil && dob.After(now) {
		return fmt.Errorf("%w: date of birth is in the future", domain.ErrInvalidInput)
	}
	return nil
}

// enqueueTask hands t to the queue. Failures are logged and swallowed: the
// operation that produced the task has already been committed.
func enqueueTask(ctx context.Context, q ports.TaskQueue, log zerolog.Logger, t domain.Task, now time.Time) {
	if q == nil {
		return
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if err := q.Enqueue(ctx, t); err != nil {
		log.Warn().Err(err).Str("task_type", string(t.Type)).Str("user_id", t.UserID).Msg("failed to enqueue task")
	}
}
