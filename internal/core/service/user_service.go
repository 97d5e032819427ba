package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/geo"
	"github.com/ryde/user-graph/internal/core/ports"
)

// UserService implements profile reads, search and account management.
type UserService struct {
	users  ports.UserRepository
	tasks  ports.TaskQueue
	logger zerolog.Logger
	now    func() time.Time
}

func NewUserService(users ports.UserRepository, tasks ports.TaskQueue, logger zerolog.Logger) *UserService {
	return &UserService{users: users, tasks: tasks, logger: logger, now: utcNow}
}

func (s *UserService) Get(ctx context.Context, id string) (*ports.UserProfile, error) {
	u, err := activeUser(ctx, s.users, id)
	if err != nil {
		return nil, err
	}
	p := newProfile(u, s.now())
	return &p, nil
}

// List returns active users, newest first.
func (s *UserService) List(ctx context.Context, page ports.Pagination) (*ports.UserPage, error) {
	page = page.Normalize()
	users, total, err := s.users.List(ctx, ports.UserFilter{ActiveOnly: true}, page)
	if err != nil {
		return nil, err
	}
	return newUserPage(users, page, total, s.now()), nil
}

// SearchByName matches active users whose name contains query, ignoring
// case. The caller is never part of the result and a blank query matches
// nobody.
func (s *UserService) SearchByName(ctx context.Context, callerID, query string, page ports.Pagination) (*ports.UserPage, error) {
	page = page.Normalize()
	query = strings.TrimSpace(query)
	if query == "" {
		return newUserPage(nil, page, 0, s.now()), nil
	}

	filter := ports.UserFilter{NameContains: query, ExcludeID: callerID, ActiveOnly: true}
	users, total, err := s.users.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return newUserPage(users, page, total, s.now()), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*ports.UserProfile, error) {
	if err := authorizeSelfOrAdmin(input.ActorID, input.ActorRole, input.UserID); err != nil {
		return nil, err
	}

	u, err := activeUser(ctx, s.users, input.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
		}
		u.Name = name
	}
	switch {
	case input.ClearDateOfBirth:
		u.DateOfBirth = nil
	case input.DateOfBirth != nil:
		if err := validateDateOfBirth(input.DateOfBirth, now); err != nil {
			return nil, err
		}
		u.DateOfBirth = input.DateOfBirth
	}
	if input.Address != nil {
		u.Address = strings.TrimSpace(*input.Address)
	}
	if input.Description != nil {
		u.Description = strings.TrimSpace(*input.Description)
	}

	locationSet := false
	switch {
	case input.ClearLocation:
		if input.Latitude != nil || input.Longitude != nil {
			return nil, fmt.Errorf("%w: cannot set and clear the location at once", domain.ErrInvalidInput)
		}
		u.SetLocation(nil)
	case input.Latitude != nil || input.Longitude != nil:
		if err := domain.ValidateCoordinates(input.Latitude, input.Longitude); err != nil {
			return nil, err
		}
		u.SetLocation(&geo.Point{Lat: *input.Latitude, Lng: *input.Longitude})
		locationSet = true
	}

	u.UpdatedAt = now
	if err := s.users.Update(ctx, u); err != nil {
		s.logger.Error().Err(err).Str("user_id", u.ID).Msg("failed to update profile")
		return nil, err
	}

	s.logger.Info().Str("user_id", u.ID).Str("actor_id", input.ActorID).Msg("profile updated")
	if locationSet {
		enqueueTask(ctx, s.tasks, s.logger, domain.Task{
			Type:     domain.TaskLocationUpdated,
			UserID:   u.ID,
			RadiusKm: ports.DefaultRadiusKm,
		}, now)
	}

	p := newProfile(u, now)
	return &p, nil
}

func (s *UserService) ChangePassword(ctx context.Context, input ports.ChangePasswordInput) error {
	u, err := activeUser(ctx, s.users, input.UserID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}
	if len(input.NewPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.UpdatedAt = s.now()
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", u.ID).Msg("password changed")
	return nil
}

// Deactivate soft-deletes an account. The row and its friendships stay on
// file; the user just stops appearing anywhere.
func (s *UserService) Deactivate(ctx context.Context, actorID, actorRole, userID string) error {
	if err := authorizeSelfOrAdmin(actorID, actorRole, userID); err != nil {
		return err
	}
	u, err := activeUser(ctx, s.users, userID)
	if err != nil {
		return err
	}

	u.IsActive = false
	u.UpdatedAt = s.now()
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Str("actor_id", actorID).Msg("user deactivated")
	return nil
}

func authorizeSelfOrAdmin(actorID, actorRole, userID string) error {
	if actorID == userID || actorRole == domain.RoleAdmin {
		return nil
	}
	return fmt.Errorf("%w: only the account owner or an admin may do this", domain.ErrForbidden)
}
