package domain

import (
	"time"

	"github.com/ryde/user-graph/internal/core/geo"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User is a registered account and its public profile.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	DateOfBirth  *time.Time `json:"dob,omitempty"`
	Address      string     `json:"address"`
	Description  string     `json:"description"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	// Version counts stored writes. Update only succeeds against the
	// version that was read.
	Version      int64      `json:"-"`
}

// HasLocation reports whether both coordinates are stored.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// Location returns the stored coordinate, if any.
func (u *User) Location() (geo.Point, bool) {
	if !u.HasLocation() {
		return geo.Point{}, false
	}
	return geo.Point{Lat: *u.Latitude, Lng: *u.Longitude}, true
}

// SetLocation stores p, or clears the location when p is nil.
func (u *User) SetLocation(p *geo.Point) {
	if p == nil {
		u.Latitude, u.Longitude = nil, nil
		return
	}
	lat, lng := p.Lat, p.Lng
	u.Latitude, u.Longitude = &lat, &lng
}

// Age returns the user's age in whole years at now, or nil when no date of
// birth is known.
func (u *User) Age(now time.Time) *int {
	if u.DateOfBirth == nil {
		return nil
	}
	age := Age(*u.DateOfBirth, now)
	return &age
}

// Age returns the number of full years between dob and now. The birthday
// itself counts as completed.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// ValidateCoordinates enforces the both-or-neither rule and the valid ranges.
func ValidateCoordinates(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return ErrInvalidCoordinates
	}
	if lat == nil {
		return nil
	}
	if err := (geo.Point{Lat: *lat, Lng: *lng}).Validate(); err != nil {
		return ErrInvalidCoordinates
	}
	return nil
}
