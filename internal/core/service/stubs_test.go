package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/geo"
	"github.com/ryde/user-graph/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories. They mirror the Mongo queries closely enough
// for the services to be exercised end to end.
// ---------------------------------------------------------------------------

var baseTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() func() time.Time {
	return func() time.Time { return baseTime }
}

type stubUserRepo struct {
	users     map[string]*domain.User
	seq       int
	updateErr error
	updates   int

	// ignoreBox makes FindLocated return every located user, like a store
	// without a coordinate index.
	ignoreBox    bool
	// beforeUpdate runs once inside Update, before the version check.
	beforeUpdate func()
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// add seeds an active member; later seeds are newer.
func (r *stubUserRepo) add(id, name string, loc *geo.Point) *domain.User {
	r.seq++
	u := &domain.User{
		ID:        id,
		Email:     strings.ToLower(id) + "@example.com",
		Name:      name,
		Role:      domain.RoleMember,
		IsActive:  true,
		CreatedAt: baseTime.Add(time.Duration(r.seq) * time.Minute),
	}
	u.SetLocation(loc)
	r.users[id] = cloneUser(u)
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	var out []*domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if hook := r.beforeUpdate; hook != nil {
		r.beforeUpdate = nil
		hook()
	}
	stored, ok := r.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if stored.Version != user.Version {
		return domain.ErrUserModified
	}
	r.updates++
	user.Version++
	r.users[user.ID] = cloneUser(user)
	return nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (r *stubUserRepo) List(_ context.Context, f ports.UserFilter, page ports.Pagination) ([]*domain.User, int64, error) {
	var all []*domain.User
	for _, u := range r.users {
		if f.ActiveOnly && !u.IsActive {
			continue
		}
		if f.ExcludeID != "" && u.ID == f.ExcludeID {
			continue
		}
		if f.IDs != nil && !containsID(f.IDs, u.ID) {
			continue
		}
		if f.NameContains != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(f.NameContains)) {
			continue
		}
		all = append(all, cloneUser(u))
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	return ports.Window(all, page), int64(len(all)), nil
}

func (r *stubUserRepo) FindLocated(_ context.Context, q ports.LocationQuery) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		p, ok := u.Location()
		if !ok || !u.IsActive || u.ID == q.ExcludeID {
			continue
		}
		if q.IDs != nil && !containsID(q.IDs, u.ID) {
			continue
		}
		if r.ignoreBox || q.Box.Contains(p) {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) DeactivateIdleSince(_ context.Context, cutoff, updatedAt time.Time) (int64, error) {
	var n int64
	for _, u := range r.users {
		if !u.IsActive || u.LastLoginAt == nil || !u.LastLoginAt.Before(cutoff) {
			continue
		}
		u.IsActive = false
		u.UpdatedAt = updatedAt
		u.Version++
		n++
	}
	return n, nil
}

func (r *stubUserRepo) Stats(_ context.Context) (ports.UserStats, error) {
	var st ports.UserStats
	for _, u := range r.users {
		st.Total++
		if u.IsActive {
			st.Active++
		}
		if u.HasLocation() {
			st.WithLocation++
		}
	}
	return st, nil
}

type stubFriendshipRepo struct {
	byID map[string]*domain.Friendship
	// beforeSwap runs inside CompareAndSwap before the status check, letting
	// a test interleave a competing writer.
	beforeSwap func()
}

func newStubFriendshipRepo() *stubFriendshipRepo {
	return &stubFriendshipRepo{byID: make(map[string]*domain.Friendship)}
}

func cloneFriendship(f *domain.Friendship) *domain.Friendship {
	clone := *f
	return &clone
}

func (r *stubFriendshipRepo) Create(_ context.Context, f *domain.Friendship) error {
	for _, existing := range r.byID {
		if existing.PairKey() == f.PairKey() {
			return domain.ErrDuplicateRequest
		}
	}
	r.byID[f.ID] = cloneFriendship(f)
	return nil
}

func (r *stubFriendshipRepo) FindByID(_ context.Context, id string) (*domain.Friendship, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrFriendshipNotFound
	}
	return cloneFriendship(f), nil
}

func (r *stubFriendshipRepo) FindBetween(_ context.Context, a, b string) (*domain.Friendship, error) {
	key := domain.PairKey(a, b)
	for _, f := range r.byID {
		if f.PairKey() == key {
			return cloneFriendship(f), nil
		}
	}
	return nil, domain.ErrFriendshipNotFound
}

func (r *stubFriendshipRepo) CompareAndSwap(_ context.Context, f *domain.Friendship, expected domain.FriendshipStatus) error {
	if r.beforeSwap != nil {
		r.beforeSwap()
	}
	stored, ok := r.byID[f.ID]
	if !ok || stored.Status != expected {
		return domain.ErrConcurrentUpdate
	}
	r.byID[f.ID] = cloneFriendship(f)
	return nil
}

func (r *stubFriendshipRepo) List(_ context.Context, filter ports.FriendshipFilter, page ports.Pagination) ([]*domain.Friendship, int64, error) {
	var all []*domain.Friendship
	for _, f := range r.byID {
		switch filter.Direction {
		case ports.DirectionIncoming:
			if f.ToUserID != filter.UserID {
				continue
			}
		case ports.DirectionOutgoing:
			if f.FromUserID != filter.UserID {
				continue
			}
		default:
			if f.PartyOf(filter.UserID) == domain.PartyNone {
				continue
			}
		}
		if filter.Status != "" && f.Status != filter.Status {
			continue
		}
		all = append(all, cloneFriendship(f))
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	return ports.Window(all, page), int64(len(all)), nil
}

func (r *stubFriendshipRepo) FriendIDs(_ context.Context, userID string) ([]string, error) {
	var ids []string
	for _, f := range r.byID {
		if f.Status == domain.StatusAccepted && f.PartyOf(userID) != domain.PartyNone {
			ids = append(ids, f.Other(userID))
		}
	}
	return ids, nil
}

func (r *stubFriendshipRepo) CountByStatus(_ context.Context) (map[domain.FriendshipStatus]int64, error) {
	out := make(map[domain.FriendshipStatus]int64)
	for _, f := range r.byID {
		out[f.Status]++
	}
	return out, nil
}

type stubQueue struct {
	tasks []domain.Task
	err   error
}

func (q *stubQueue) Enqueue(_ context.Context, t domain.Task) error {
	if q.err != nil {
		return q.err
	}
	q.tasks = append(q.tasks, t)
	return nil
}

func (q *stubQueue) types() []domain.TaskType {
	out := make([]domain.TaskType, 0, len(q.tasks))
	for _, t := range q.tasks {
		out = append(out, t.Type)
	}
	return out
}
