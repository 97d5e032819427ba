package ports

import (
	"context"

	"github.com/ryde/user-graph/internal/core/domain"
)

// Direction selects which side of a friendship the filtered user is on.
type Direction int

const (
	DirectionAny      Direction = iota // user is either party
	DirectionIncoming                  // user is the recipient
	DirectionOutgoing                  // user is the requester
)

// FriendshipFilter carries the parameters for listing friendships.
type FriendshipFilter struct {
	UserID    string
	Direction Direction
	Status    domain.FriendshipStatus // empty = any status
}

// FriendshipRepository handles friendship persistence. Every state change
// goes through CompareAndSwap so concurrent transitions cannot both win.
type FriendshipRepository interface {
	// Create inserts a new friendship. A record for the same unordered pair
	// yields domain.ErrDuplicateRequest.
	Create(ctx context.Context, f *domain.Friendship) error
	FindByID(ctx context.Context, id string) (*domain.Friendship, error)
	// FindBetween returns the record for the unordered pair {a, b}.
	FindBetween(ctx context.Context, a, b string) (*domain.Friendship, error)
	// CompareAndSwap persists f only if the stored status still equals
	// expected; otherwise it returns domain.ErrConcurrentUpdate.
	CompareAndSwap(ctx context.Context, f *domain.Friendship, expected domain.FriendshipStatus) error
	// List returns a page ordered by created_at descending (ties by id) and
	// the total number of matches.
	List(ctx context.Context, filter FriendshipFilter, page Pagination) ([]*domain.Friendship, int64, error)
	// FriendIDs returns the ids of every user with an accepted friendship
	// with userID, in either direction.
	FriendIDs(ctx context.Context, userID string) ([]string, error)
	CountByStatus(ctx context.Context) (map[domain.FriendshipStatus]int64, error)
}
