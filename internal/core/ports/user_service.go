package ports

import (
	"context"
	"time"

	"github.com/ryde/user-graph/internal/core/domain"
)

// UserProfile is a user plus the fields derived at read time.
type UserProfile struct {
	User        *domain.User
	Age         *int
	HasLocation bool
}

// UserPage is one page of user profiles.
type UserPage struct {
	Items []UserProfile
	Meta  PageMeta
}

// UpdateProfileInput is a partial update; nil fields are left unchanged.
type UpdateProfileInput struct {
	ActorID   string
	ActorRole string
	UserID    string

	Name             *string
	DateOfBirth      *time.Time
	ClearDateOfBirth bool
	Address          *string
	Description      *string
	Latitude         *float64
	Longitude        *float64
	ClearLocation    bool
}

// ChangePasswordInput carries a password change for UserID.
type ChangePasswordInput struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
}

// UserService defines use-case operations for user profiles.
type UserService interface {
	Get(ctx context.Context, id string) (*UserProfile, error)
	List(ctx context.Context, page Pagination) (*UserPage, error)
	SearchByName(ctx context.Context, callerID, query string, page Pagination) (*UserPage, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*UserProfile, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	Deactivate(ctx context.Context, actorID, actorRole, userID string) error
}
