package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, taskID string) (bool, error)
	Mark(ctx context.Context, taskID string) error
}

type taskService struct {
	users     ports.UserRepository
	nearby    ports.NearbyService
	dedup     DedupChecker
	idleAfter time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

// NewTaskService returns a TaskService implementation. idleAfter is how long
// an account may go without logging in before cleanup deactivates it; zero
// or less means domain.DefaultIdleAfter.
func NewTaskService(
	users ports.UserRepository,
	nearby ports.NearbyService,
	dedup DedupChecker,
	idleAfter time.Duration,
	log zerolog.Logger,
) ports.TaskService {
	if idleAfter <= 0 {
		idleAfter = domain.DefaultIdleAfter
	}
	return &taskService{
		users:     users,
		nearby:    nearby,
		dedup:     dedup,
		idleAfter: idleAfter,
		now:       utcNow,
		log:       log,
	}
}

// Process deduplicates and handles a single background task.
func (s *taskService) Process(ctx context.Context, task domain.Task) error {
	isDup, err := s.dedup.IsDuplicate(ctx, task.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("task_id", task.ID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("task_id", task.ID).Str("task_type", string(task.Type)).Msg("duplicate task skipped")
		return nil
	}

	switch task.Type {
	case domain.TaskWelcomeUser:
		err = s.welcome(ctx, task)
	case domain.TaskLocationUpdated:
		err = s.locationUpdated(ctx, task)
	case domain.TaskFriendshipRequested, domain.TaskFriendshipAccepted:
		err = s.notifyFriendship(ctx, task)
	case domain.TaskCleanupInactive:
		err = s.cleanupInactive(ctx, task)
	default:
		return fmt.Errorf("process task %s: %w: %q", task.ID, domain.ErrUnknownTaskType, task.Type)
	}
	if err != nil {
		return fmt.Errorf("process task %s: %w", task.ID, err)
	}

	if markErr := s.dedup.Mark(ctx, task.ID); markErr != nil {
		s.log.Warn().Err(markErr).Str("task_id", task.ID).Msg("failed to set dedup key")
	}
	return nil
}

func (s *taskService) welcome(ctx context.Context, task domain.Task) error {
	u, err := s.users.FindByID(ctx, task.UserID)
	if err != nil {
		return err
	}
	s.log.Info().Str("user_id", u.ID).Str("email", u.Email).Msg("welcome email handed off")
	return nil
}

// locationUpdated looks up the friends now in range of the user's new
// location. A location cleared since the task was queued is not an error.
func (s *taskService) locationUpdated(ctx context.Context, task domain.Task) error {
	radius := task.RadiusKm
	if radius <= 0 {
		radius = ports.DefaultRadiusKm
	}

	res, err := s.nearby.NearbyFriends(ctx, ports.NearbyInput{
		CallerID: task.UserID,
		RadiusKm: &radius,
		Page:     ports.Pagination{Limit: ports.MaxPageLimit},
	})
	if errors.Is(err, domain.ErrLocationRequired) || errors.Is(err, domain.ErrUserNotFound) {
		s.log.Debug().Str("user_id", task.UserID).Msg("location task skipped, user no longer located")
		return nil
	}
	if err != nil {
		return err
	}

	s.log.Info().
		Str("user_id", task.UserID).
		Float64("radius_km", res.RadiusKm).
		Int64("friends_nearby", res.Meta.Total).
		Msg("nearby friends notified")
	return nil
}

func (s *taskService) notifyFriendship(ctx context.Context, task domain.Task) error {
	users, err := s.users.FindByIDs(ctx, []string{task.UserID, task.RelatedUserID})
	if err != nil {
		return err
	}
	var recipient, other *domain.User
	for _, u := range users {
		switch u.ID {
		case task.UserID:
			recipient = u
		case task.RelatedUserID:
			other = u
		}
	}
	if recipient == nil || other == nil {
		return domain.ErrUserNotFound
	}

	s.log.Info().
		Str("task_type", string(task.Type)).
		Str("friendship_id", task.FriendshipID).
		Str("user_id", recipient.ID).
		Str("related_user_id", other.ID).
		Str("related_user_name", other.Name).
		Msg("friendship notification sent")
	return nil
}

// cleanupInactive deactivates accounts idle for longer than idleAfter,
// measured from when the sweep was scheduled.
func (s *taskService) cleanupInactive(ctx context.Context, task domain.Task) error {
	now := s.now()
	ref := task.CreatedAt
	if ref.IsZero() {
		ref = now
	}
	cutoff := ref.Add(-s.idleAfter)

	n, err := s.users.DeactivateIdleSince(ctx, cutoff, now)
	if err != nil {
		return err
	}
	s.log.Info().
		Time("cutoff", cutoff).
		Int64("deactivated", n).
		Msg("idle accounts deactivated")
	return nil
}
