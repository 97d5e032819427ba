package handler

import "time"

const dateLayout = "2006-01-02"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Email           string   `json:"email"            validate:"required,email,max=254"`
	Name            string   `json:"name"             validate:"required,max=150"`
	Password        string   `json:"password"         validate:"required,min=8,max=128"`
	PasswordConfirm string   `json:"password_confirm" validate:"required,eqfield=Password"`
	DateOfBirth     string   `json:"dob"              validate:"omitempty,datetime=2006-01-02"`
	Address         string   `json:"address"          validate:"max=255"`
	Description     string   `json:"description"      validate:"max=2000"`
	Latitude        *float64 `json:"latitude"         validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64 `json:"longitude"        validate:"omitempty,gte=-180,lte=180"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// updateProfileRequest is a partial update: absent fields stay unchanged.
// Optional values are cleared with the explicit clear_* flags.
type updateProfileRequest struct {
	Name          *string  `json:"name"           validate:"omitempty,min=1,max=150"`
	DateOfBirth   *string  `json:"dob"            validate:"omitempty,datetime=2006-01-02"`
	ClearDOB      bool     `json:"clear_dob"`
	Address       *string  `json:"address"        validate:"omitempty,max=255"`
	Description   *string  `json:"description"    validate:"omitempty,max=2000"`
	Latitude      *float64 `json:"latitude"       validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude"      validate:"omitempty,gte=-180,lte=180"`
	ClearLocation bool     `json:"clear_location"`
}

type changePasswordRequest struct {
	CurrentPassword    string `json:"current_password"     validate:"required"`
	NewPassword        string `json:"new_password"         validate:"required,min=8,max=128"`
	NewPasswordConfirm string `json:"new_password_confirm" validate:"required,eqfield=NewPassword"`
}

type friendRequestRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type friendshipActionRequest struct {
	Action string `json:"action" validate:"required,oneof=accept decline block unblock"`
}

// --- Response types ---

type userResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	DateOfBirth *string   `json:"dob"`
	Age         *int      `json:"age"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	HasLocation bool      `json:"has_location"`
	Role        string    `json:"role,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// listResponse is the envelope of every paginated listing.
type listResponse[T any] struct {
	Data       []T                `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type friendshipResponse struct {
	ID         string       `json:"id"`
	FromUser   userResponse `json:"from_user"`
	ToUser     userResponse `json:"to_user"`
	Status     string       `json:"status"`
	BlockedBy  string       `json:"blocked_by,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	AcceptedAt *time.Time   `json:"accepted_at,omitempty"`
}

type friendResponse struct {
	FriendshipID string       `json:"friendship_id"`
	Friend       userResponse `json:"friend"`
	Since        time.Time    `json:"since"`
}

type friendshipStatusResponse struct {
	AreFriends     bool   `json:"are_friends"`
	Status         string `json:"status,omitempty"`
	FriendshipID   string `json:"friendship_id,omitempty"`
	CanSendRequest bool   `json:"can_send_request"`
}

type pointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type nearbyUserResponse struct {
	userResponse
	DistanceKm float64 `json:"distance_km"`
}

type nearbyResponse struct {
	Origin     pointResponse        `json:"origin"`
	RadiusKm   float64              `json:"radius_km"`
	Data       []nearbyUserResponse `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}

type statsResponse struct {
	TotalUsers          int64            `json:"total_users"`
	ActiveUsers         int64            `json:"active_users"`
	UsersWithLocation   int64            `json:"users_with_location"`
	FriendshipsByStatus map[string]int64 `json:"friendships_by_status"`
}
