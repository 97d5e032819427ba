package ports

import (
	"context"
	"time"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/geo"
)

// UserFilter narrows a user listing. Zero values mean "no filter".
type UserFilter struct {
	NameContains string   // case-insensitive substring match on name
	ExcludeID    string   // omit this user (usually the caller)
	IDs          []string // restrict to these ids when non-nil
	ActiveOnly   bool
}

// LocationQuery selects active users whose stored coordinate falls inside Box.
type LocationQuery struct {
	Box       geo.BoundingBox
	ExcludeID string
	// IDs restricts the candidates when non-nil. An empty, non-nil slice
	// matches nobody.
	IDs []string
}

// UserStats are aggregate counters over the users collection.
type UserStats struct {
	Total        int64
	Active       int64
	WithLocation int64
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a new user; a taken email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs returns the users that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	// Update atomically replaces every mutable field of an existing user,
	// provided it is still at user.Version. A stale version yields
	// domain.ErrUserModified; on success user.Version is advanced.
	Update(ctx context.Context, user *domain.User) error
	// List returns a page of users ordered by created_at descending and the
	// total number of matches.
	List(ctx context.Context, filter UserFilter, page Pagination) ([]*domain.User, int64, error)
	// FindLocated returns the active users with both coordinates inside q.Box.
	FindLocated(ctx context.Context, q LocationQuery) ([]*domain.User, error)
	Stats(ctx context.Context) (UserStats, error)
	// DeactivateIdleSince deactivates every active user whose last login is
	// before cutoff, stamping updatedAt. Users who never logged in are left
	// alone. It returns the number of users deactivated.
	DeactivateIdleSince(ctx context.Context, cutoff, updatedAt time.Time) (int64, error)
}
