package geo

import "math"

// boxMarginDeg widens every edge slightly so floating point error at the
// boundary never drops a point that Haversine would keep.
const boxMarginDeg = 1e-6

// BoundingBox is a latitude/longitude rectangle in decimal degrees.
// Longitude ranges never wrap: a box that would cross the antimeridian
// spans the full [-180, 180] instead.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// BoxAround returns a box that contains every point within radiusKm of
// origin. It is a superset of the search circle, so filtering by it first
// and by Haversine second yields exactly the Haversine result.
func BoxAround(origin Point, radiusKm float64) BoundingBox {
	if radiusKm >= MaxRadiusKm {
		return fullBox()
	}

	delta := radiusKm / EarthRadiusKm // angular radius in radians
	lat := toRadians(origin.Lat)

	minLat := lat - delta
	maxLat := lat + delta

	// The circle reaches a pole: every longitude is in range.
	if maxLat >= math.Pi/2 || minLat <= -math.Pi/2 {
		return BoundingBox{
			MinLat: math.Max(-90, toDegrees(minLat)-boxMarginDeg),
			MaxLat: math.Min(90, toDegrees(maxLat)+boxMarginDeg),
			MinLng: -180,
			MaxLng: 180,
		}
	}

	box := BoundingBox{
		MinLat: toDegrees(minLat) - boxMarginDeg,
		MaxLat: toDegrees(maxLat) + boxMarginDeg,
		MinLng: -180,
		MaxLng: 180,
	}

	ratio := math.Sin(delta) / math.Cos(lat)
	if ratio >= 1 {
		return box
	}
	dLng := toDegrees(math.Asin(ratio))
	minLng := origin.Lng - dLng - boxMarginDeg
	maxLng := origin.Lng + dLng + boxMarginDeg
	if minLng < -180 || maxLng > 180 {
		return box
	}

	box.MinLng = minLng
	box.MaxLng = maxLng
	return box
}

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

func fullBox() BoundingBox {
	return BoundingBox{MinLat: -90, MaxLat: 90, MinLng: -180, MaxLng: 180}
}
