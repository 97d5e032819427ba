package ports

import (
	"context"

	"github.com/ryde/user-graph/internal/core/geo"
)

// DefaultRadiusKm is used when a nearby search omits the radius.
const DefaultRadiusKm = 10.0

// NearbyInput carries the parameters of a nearby search.
type NearbyInput struct {
	CallerID string
	RadiusKm *float64 // nil = DefaultRadiusKm
	Page     Pagination
}

// NearbyUser is a match and its distance from the origin, rounded to 0.01 km.
type NearbyUser struct {
	User       UserProfile
	DistanceKm float64
}

// NearbyResult is one page of matches ordered by ascending distance.
type NearbyResult struct {
	Origin   geo.Point
	RadiusKm float64
	Items    []NearbyUser
	Meta     PageMeta
}

type NearbyService interface {
	NearbyUsers(ctx context.Context, input NearbyInput) (*NearbyResult, error)
	NearbyFriends(ctx context.Context, input NearbyInput) (*NearbyResult, error)
}
