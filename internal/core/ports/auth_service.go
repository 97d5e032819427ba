package ports

import (
	"context"
	"time"

	"github.com/ryde/user-graph/internal/core/domain"
)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Email       string
	Name        string
	Password    string
	DateOfBirth *time.Time
	Address     string
	Description string
	Latitude    *float64
	Longitude   *float64
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
