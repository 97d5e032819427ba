package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/ports"
)

// FriendshipService drives the friendship state machine and its queries.
type FriendshipService struct {
	friendships ports.FriendshipRepository
	users       ports.UserRepository
	tasks       ports.TaskQueue
	logger      zerolog.Logger
	now         func() time.Time
}

func NewFriendshipService(
	friendships ports.FriendshipRepository,
	users ports.UserRepository,
	tasks ports.TaskQueue,
	logger zerolog.Logger,
) *FriendshipService {
	return &FriendshipService{
		friendships: friendships,
		users:       users,
		tasks:       tasks,
		logger:      logger,
		now:         utcNow,
	}
}

// Request sends a friend request from fromUserID to toUserID. A declined
// relationship is re-opened instead of creating a second record.
func (s *FriendshipService) Request(ctx context.Context, fromUserID, toUserID string) (*ports.FriendshipView, error) {
	if fromUserID == toUserID {
		return nil, domain.ErrSelfFriendship
	}

	from, err := activeUser(ctx, s.users, fromUserID)
	if err != nil {
		return nil, err
	}
	to, err := activeUser(ctx, s.users, toUserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	existing, err := s.friendships.FindBetween(ctx, fromUserID, toUserID)
	switch {
	case err == nil:
		f, err := s.reopen(ctx, existing, fromUserID, now)
		if err != nil {
			return nil, err
		}
		return s.requested(ctx, f, from, to, now)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	f, err := domain.NewFriendshipRequest(uuid.NewString(), fromUserID, toUserID, now)
	if err != nil {
		return nil, err
	}
	if err := s.friendships.Create(ctx, f); err != nil {
		return nil, err
	}
	return s.requested(ctx, f, from, to, now)
}

func (s *FriendshipService) reopen(ctx context.Context, f *domain.Friendship, fromUserID string, now time.Time) (*domain.Friendship, error) {
	switch f.Status {
	case domain.StatusPending, domain.StatusAccepted:
		return nil, domain.ErrDuplicateRequest
	case domain.StatusBlocked:
		return nil, domain.ErrBlocked
	}

	expected := f.Status
	if err := f.Reopen(fromUserID, now); err != nil {
		return nil, err
	}
	if err := s.friendships.CompareAndSwap(ctx, f, expected); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FriendshipService) requested(ctx context.Context, f *domain.Friendship, from, to *domain.User, now time.Time) (*ports.FriendshipView, error) {
	s.logger.Info().
		Str("friendship_id", f.ID).
		Str("from_user_id", f.FromUserID).
		Str("to_user_id", f.ToUserID).
		Msg("friend request sent")

	enqueueTask(ctx, s.tasks, s.logger, domain.Task{
		Type:          domain.TaskFriendshipRequested,
		UserID:        f.ToUserID,
		RelatedUserID: f.FromUserID,
		FriendshipID:  f.ID,
	}, now)

	return &ports.FriendshipView{
		Friendship: f,
		FromUser:   newProfile(from, now),
		ToUser:     newProfile(to, now),
	}, nil
}

// Act applies action to the friendship on behalf of actorID. The write only
// lands if nobody changed the status in between.
func (s *FriendshipService) Act(ctx context.Context, friendshipID, action, actorID string) (*ports.FriendshipView, error) {
	a, err := domain.ParseFriendshipAction(action)
	if err != nil {
		return nil, err
	}

	f, err := s.friendships.FindByID(ctx, friendshipID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	expected := f.Status
	if err := f.Apply(a, actorID, now); err != nil {
		return nil, err
	}
	if err := s.friendships.CompareAndSwap(ctx, f, expected); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("friendship_id", f.ID).
		Str("actor_id", actorID).
		Str("action", string(a)).
		Str("from", string(expected)).
		Str("to", string(f.Status)).
		Msg("friendship updated")

	if a == domain.ActionAccept {
		enqueueTask(ctx, s.tasks, s.logger, domain.Task{
			Type:          domain.TaskFriendshipAccepted,
			UserID:        f.FromUserID,
			RelatedUserID: f.ToUserID,
			FriendshipID:  f.ID,
		}, now)
	}

	views, err := s.resolve(ctx, []*domain.Friendship{f}, now)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// ListMine returns every relationship the user is party to, optionally
// narrowed to one status.
func (s *FriendshipService) ListMine(ctx context.Context, userID, status string, page ports.Pagination) (*ports.FriendshipPage, error) {
	filter := ports.FriendshipFilter{UserID: userID, Direction: ports.DirectionAny}
	if status != "" {
		st, err := domain.ParseFriendshipStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = st
	}
	return s.list(ctx, filter, page)
}

// ListPending returns the requests waiting on the user's answer.
func (s *FriendshipService) ListPending(ctx context.Context, userID string, page ports.Pagination) (*ports.FriendshipPage, error) {
	return s.list(ctx, ports.FriendshipFilter{
		UserID:    userID,
		Direction: ports.DirectionIncoming,
		Status:    domain.StatusPending,
	}, page)
}

// ListSent returns the user's own requests that are still unanswered.
func (s *FriendshipService) ListSent(ctx context.Context, userID string, page ports.Pagination) (*ports.FriendshipPage, error) {
	return s.list(ctx, ports.FriendshipFilter{
		UserID:    userID,
		Direction: ports.DirectionOutgoing,
		Status:    domain.StatusPending,
	}, page)
}

func (s *FriendshipService) list(ctx context.Context, filter ports.FriendshipFilter, page ports.Pagination) (*ports.FriendshipPage, error) {
	page = page.Normalize()
	records, total, err := s.friendships.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	views, err := s.resolve(ctx, records, s.now())
	if err != nil {
		return nil, err
	}
	return &ports.FriendshipPage{Items: views, Meta: ports.NewPageMeta(page, total)}, nil
}

// ListFriends returns the counterpart of every accepted relationship.
func (s *FriendshipService) ListFriends(ctx context.Context, userID string, page ports.Pagination) (*ports.FriendPage, error) {
	page = page.Normalize()
	filter := ports.FriendshipFilter{UserID: userID, Direction: ports.DirectionAny, Status: domain.StatusAccepted}
	records, total, err := s.friendships.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(records))
	for _, f := range records {
		ids = append(ids, f.Other(userID))
	}
	byID, err := s.usersByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := s.now()
	items := make([]ports.FriendEntry, 0, len(records))
	for _, f := range records {
		since := f.UpdatedAt
		if f.AcceptedAt != nil {
			since = *f.AcceptedAt
		}
		items = append(items, ports.FriendEntry{
			FriendshipID: f.ID,
			Friend:       newProfile(byID.get(f.Other(userID)), now),
			Since:        since,
		})
	}
	return &ports.FriendPage{Items: items, Meta: ports.NewPageMeta(page, total)}, nil
}

// SearchFriends matches the user's accepted friends by name, ignoring case.
func (s *FriendshipService) SearchFriends(ctx context.Context, userID, query string, page ports.Pagination) (*ports.UserPage, error) {
	page = page.Normalize()
	query = strings.TrimSpace(query)
	if query == "" {
		return newUserPage(nil, page, 0, s.now()), nil
	}

	ids, err := s.friendships.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return newUserPage(nil, page, 0, s.now()), nil
	}

	filter := ports.UserFilter{NameContains: query, IDs: ids, ActiveOnly: true}
	users, total, err := s.users.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return newUserPage(users, page, total, s.now()), nil
}

// StatusWith describes the caller's relationship with otherUserID.
func (s *FriendshipService) StatusWith(ctx context.Context, callerID, otherUserID string) (*ports.FriendshipStatusView, error) {
	if callerID == otherUserID {
		return nil, domain.ErrSelfFriendship
	}
	if _, err := activeUser(ctx, s.users, otherUserID); err != nil {
		return nil, err
	}

	f, err := s.friendships.FindBetween(ctx, callerID, otherUserID)
	if errors.Is(err, domain.ErrNotFound) {
		return &ports.FriendshipStatusView{CanSendRequest: true}, nil
	}
	if err != nil {
		return nil, err
	}

	return &ports.FriendshipStatusView{
		AreFriends:     f.Status == domain.StatusAccepted,
		Status:         f.Status,
		FriendshipID:   f.ID,
		CanSendRequest: f.CanRequest(),
	}, nil
}

// resolve loads both participants of every record with one repository call.
func (s *FriendshipService) resolve(ctx context.Context, records []*domain.Friendship, now time.Time) ([]ports.FriendshipView, error) {
	ids := make([]string, 0, 2*len(records))
	for _, f := range records {
		ids = append(ids, f.FromUserID, f.ToUserID)
	}
	byID, err := s.usersByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]ports.FriendshipView, 0, len(records))
	for _, f := range records {
		views = append(views, ports.FriendshipView{
			Friendship: f,
			FromUser:   newProfile(byID.get(f.FromUserID), now),
			ToUser:     newProfile(byID.get(f.ToUserID), now),
		})
	}
	return views, nil
}

type userIndex map[string]*domain.User

// get returns the user with id, or a bare placeholder when the row is gone.
func (idx userIndex) get(id string) *domain.User {
	if u, ok := idx[id]; ok {
		return u
	}
	return &domain.User{ID: id}
}

func (s *FriendshipService) usersByID(ctx context.Context, ids []string) (userIndex, error) {
	idx := make(userIndex, len(ids))
	if len(ids) == 0 {
		return idx, nil
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve friendship users: %w", err)
	}
	for _, u := range users {
		idx[u.ID] = u
	}
	return idx, nil
}
