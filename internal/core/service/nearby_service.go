package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/geo"
	"github.com/ryde/user-graph/internal/core/ports"
)

// NearbyService finds located users within a radius of the caller.
type NearbyService struct {
	users       ports.UserRepository
	friendships ports.FriendshipRepository
	logger      zerolog.Logger
	now         func() time.Time
}

func NewNearbyService(users ports.UserRepository, friendships ports.FriendshipRepository, logger zerolog.Logger) *NearbyService {
	return &NearbyService{users: users, friendships: friendships, logger: logger, now: utcNow}
}

// NearbyUsers returns every active located user within the radius.
func (s *NearbyService) NearbyUsers(ctx context.Context, input ports.NearbyInput) (*ports.NearbyResult, error) {
	return s.search(ctx, input, false)
}

// NearbyFriends is NearbyUsers restricted to the caller's accepted friends.
func (s *NearbyService) NearbyFriends(ctx context.Context, input ports.NearbyInput) (*ports.NearbyResult, error) {
	return s.search(ctx, input, true)
}

type nearbyMatch struct {
	user     *domain.User
	distance float64
}

func (s *NearbyService) search(ctx context.Context, input ports.NearbyInput, friendsOnly bool) (*ports.NearbyResult, error) {
	caller, err := activeUser(ctx, s.users, input.CallerID)
	if err != nil {
		return nil, err
	}
	origin, ok := caller.Location()
	if !ok {
		return nil, domain.ErrLocationRequired
	}
	radius, err := resolveRadius(input.RadiusKm)
	if err != nil {
		return nil, err
	}

	q := ports.LocationQuery{Box: geo.BoxAround(origin, radius), ExcludeID: caller.ID}
	if friendsOnly {
		ids, err := s.friendships.FriendIDs(ctx, caller.ID)
		if err != nil {
			return nil, err
		}
		if ids == nil {
			ids = []string{}
		}
		q.IDs = ids
	}

	candidates, err := s.users.FindLocated(ctx, q)
	if err != nil {
		return nil, err
	}

	// The box only prunes; membership is decided by the exact distance.
	// Stores may return candidates outside it, which are dropped before
	// the haversine.
	matches := make([]nearbyMatch, 0, len(candidates))
	for _, u := range candidates {
		if u.ID == caller.ID || !u.IsActive {
			continue
		}
		p, ok := u.Location()
		if !ok || !q.Box.Contains(p) {
			continue
		}
		if d := geo.Haversine(origin, p); d <= radius {
			matches = append(matches, nearbyMatch{user: u, distance: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].user.ID < matches[j].user.ID
	})

	page := input.Page.Normalize()
	now := s.now()
	window := ports.Window(matches, page)
	items := make([]ports.NearbyUser, 0, len(window))
	for _, m := range window {
		items = append(items, ports.NearbyUser{
			User:       newProfile(m.user, now),
			DistanceKm: geo.RoundKm(m.distance),
		})
	}

	s.logger.Debug().
		Str("user_id", caller.ID).
		Bool("friends_only", friendsOnly).
		Float64("radius_km", radius).
		Int("candidates", len(candidates)).
		Int("matches", len(matches)).
		Msg("nearby search")

	return &ports.NearbyResult{
		Origin:   origin,
		RadiusKm: radius,
		Items:    items,
		Meta:     ports.NewPageMeta(page, int64(len(matches))),
	}, nil
}

// resolveRadius applies the default and clamps to the largest meaningful
// surface distance.
func resolveRadius(r *float64) (float64, error) {
	if r == nil {
		return ports.DefaultRadiusKm, nil
	}
	if math.IsNaN(*r) || math.IsInf(*r, 0) || *r <= 0 {
		return 0, domain.ErrInvalidRadius
	}
	return math.Min(*r, geo.MaxRadiusKm), nil
}
