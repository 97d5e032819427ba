package domain

import (
	"fmt"
	"time"
)

// FriendshipStatus represents the lifecycle state of a friendship.
type FriendshipStatus string

const (
	StatusPending  FriendshipStatus = "pending"
	StatusAccepted FriendshipStatus = "accepted"
	StatusDeclined FriendshipStatus = "declined"
	StatusBlocked  FriendshipStatus = "blocked"
)

// FriendshipAction is an operation a party may invoke on an existing friendship.
type FriendshipAction string

const (
	ActionAccept  FriendshipAction = "accept"
	ActionDecline FriendshipAction = "decline"
	ActionBlock   FriendshipAction = "block"
	ActionUnblock FriendshipAction = "unblock"
)

// Party identifies which side of a friendship a user is on.
type Party int

const (
	PartyNone Party = iota
	PartyRequester
	PartyRecipient
)

type actorRule int

const (
	eitherParty actorRule = iota
	recipientOnly
	blockerOnly
)

type transition struct {
	to    FriendshipStatus
	actor actorRule
}

// friendshipTransitions defines the allowed state machine transitions and
// who may trigger each of them.
var friendshipTransitions = map[FriendshipStatus]map[FriendshipAction]transition{
	StatusPending: {
		ActionAccept:  {to: StatusAccepted, actor: recipientOnly},
		ActionDecline: {to: StatusDeclined, actor: recipientOnly},
		ActionBlock:   {to: StatusBlocked, actor: eitherParty},
	},
	StatusAccepted: {
		ActionBlock: {to: StatusBlocked, actor: eitherParty},
	},
	StatusDeclined: {
		ActionBlock: {to: StatusBlocked, actor: eitherParty},
	},
	// Unblocking leaves the record on file as declined; either side may
	// re-open it later with a new request.
	StatusBlocked: {
		ActionUnblock: {to: StatusDeclined, actor: blockerOnly},
	},
}

// ParseFriendshipAction converts a raw action name into a FriendshipAction.
func ParseFriendshipAction(s string) (FriendshipAction, error) {
	switch a := FriendshipAction(s); a {
	case ActionAccept, ActionDecline, ActionBlock, ActionUnblock:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// ParseFriendshipStatus converts a raw status name into a FriendshipStatus.
func ParseFriendshipStatus(s string) (FriendshipStatus, error) {
	switch st := FriendshipStatus(s); st {
	case StatusPending, StatusAccepted, StatusDeclined, StatusBlocked:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown friendship status %q", ErrBadRequest, s)
}

// Friendship is a directed relationship requested by FromUserID toward ToUserID.
type Friendship struct {
	ID         string           `json:"id"`
	FromUserID string           `json:"from_user_id"`
	ToUserID   string           `json:"to_user_id"`
	Status     FriendshipStatus `json:"status"`
	BlockedBy  string           `json:"blocked_by,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	AcceptedAt *time.Time       `json:"accepted_at,omitempty"`
}

// NewFriendshipRequest builds a pending request from one user to another.
func NewFriendshipRequest(id, fromUserID, toUserID string, now time.Time) (*Friendship, error) {
	if fromUserID == toUserID {
		return nil, ErrSelfFriendship
	}
	return &Friendship{
		ID:         id,
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// PairKey identifies the unordered pair {a, b}; it is the same for both
// directions of a relationship.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ":" + b
}

// PairKey returns the unordered pair key of f's participants.
func (f *Friendship) PairKey() string {
	return PairKey(f.FromUserID, f.ToUserID)
}

// PartyOf reports which side of f userID is on.
func (f *Friendship) PartyOf(userID string) Party {
	switch userID {
	case f.FromUserID:
		return PartyRequester
	case f.ToUserID:
		return PartyRecipient
	}
	return PartyNone
}

// Other returns the participant that is not userID.
func (f *Friendship) Other(userID string) string {
	if userID == f.FromUserID {
		return f.ToUserID
	}
	return f.FromUserID
}

// CanRequest reports whether a fresh request may be sent over this record.
func (f *Friendship) CanRequest() bool {
	return f.Status == StatusDeclined
}

// Apply performs action on behalf of actorID. On success f carries the new
// status; on failure f is left untouched.
func (f *Friendship) Apply(action FriendshipAction, actorID string, now time.Time) error {
	party := f.PartyOf(actorID)
	if party == PartyNone {
		return ErrFriendshipNotFound
	}
	if f.Status == StatusBlocked && f.BlockedBy != actorID {
		return ErrBlocked
	}

	t, ok := friendshipTransitions[f.Status][action]
	if !ok {
		return fmt.Errorf("%w: cannot %s a %s friendship", ErrInvalidTransition, action, f.Status)
	}
	if t.actor == recipientOnly && party != PartyRecipient {
		return fmt.Errorf("%w: only the recipient may %s a request", ErrInvalidTransition, action)
	}

	f.Status = t.to
	f.UpdatedAt = now
	switch action {
	case ActionAccept:
		accepted := now
		f.AcceptedAt = &accepted
	case ActionBlock:
		f.BlockedBy = actorID
	case ActionUnblock:
		f.BlockedBy = ""
	}
	return nil
}

// Reopen turns a declined relationship into a new pending request from
// fromUserID. The direction follows the new requester.
func (f *Friendship) Reopen(fromUserID string, now time.Time) error {
	party := f.PartyOf(fromUserID)
	if party == PartyNone {
		return ErrFriendshipNotFound
	}
	if !f.CanRequest() {
		return fmt.Errorf("%w: cannot re-open a %s friendship", ErrInvalidTransition, f.Status)
	}

	if party == PartyRecipient {
		f.FromUserID, f.ToUserID = f.ToUserID, f.FromUserID
	}
	f.Status = StatusPending
	f.AcceptedAt = nil
	f.CreatedAt = now
	f.UpdatedAt = now
	return nil
}
