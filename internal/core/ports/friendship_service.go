package ports

import (
	"context"
	"time"

	"github.com/ryde/user-graph/internal/core/domain"
)

// FriendshipView is a friendship with both participants resolved.
type FriendshipView struct {
	Friendship *domain.Friendship
	FromUser   UserProfile
	ToUser     UserProfile
}

// FriendshipPage is one page of friendships.
type FriendshipPage struct {
	Items []FriendshipView
	Meta  PageMeta
}

// FriendEntry is the counterpart of an accepted friendship.
type FriendEntry struct {
	FriendshipID string
	Friend       UserProfile
	Since        time.Time
}

// FriendPage is one page of friends.
type FriendPage struct {
	Items []FriendEntry
	Meta  PageMeta
}

// FriendshipStatusView describes the relationship between the caller and
// another user.
type FriendshipStatusView struct {
	AreFriends     bool
	Status         domain.FriendshipStatus // empty when no record exists
	FriendshipID   string
	CanSendRequest bool
}

// FriendshipService defines the friendship state machine and its queries.
// Every operation takes the caller's id explicitly.
type FriendshipService interface {
	Request(ctx context.Context, fromUserID, toUserID string) (*FriendshipView, error)
	Act(ctx context.Context, friendshipID, action, actorID string) (*FriendshipView, error)
	ListMine(ctx context.Context, userID, status string, page Pagination) (*FriendshipPage, error)
	ListPending(ctx context.Context, userID string, page Pagination) (*FriendshipPage, error)
	ListSent(ctx context.Context, userID string, page Pagination) (*FriendshipPage, error)
	ListFriends(ctx context.Context, userID string, page Pagination) (*FriendPage, error)
	SearchFriends(ctx context.Context, userID, query string, page Pagination) (*UserPage, error)
	StatusWith(ctx context.Context, callerID, otherUserID string) (*FriendshipStatusView, error)
}
