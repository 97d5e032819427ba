package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error the core returns wraps exactly one of these, so
// the transport layer can map a kind to a status code with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("access forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrBadRequest        = errors.New("bad request")
	ErrConflict          = errors.New("conflict")
	ErrUnauthorized      = errors.New("unauthorized")
)

var (
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrFriendshipNotFound = fmt.Errorf("friendship %w", ErrNotFound)

	ErrUserExists         = fmt.Errorf("%w: user already exists", ErrConflict)
	ErrDuplicateRequest   = fmt.Errorf("%w: a friendship already exists between these users", ErrConflict)
	ErrConcurrentUpdate   = fmt.Errorf("%w: friendship was modified concurrently", ErrConflict)
	ErrUserModified       = fmt.Errorf("%w: user was modified concurrently", ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)

	ErrBlocked = fmt.Errorf("%w: relationship is blocked", ErrForbidden)

	ErrSelfFriendship     = fmt.Errorf("%w: cannot send a friend request to yourself", ErrBadRequest)
	ErrUnknownAction      = fmt.Errorf("%w: unknown friendship action", ErrBadRequest)
	ErrInvalidCoordinates = fmt.Errorf("%w: latitude and longitude must be provided together and within range", ErrBadRequest)
	ErrLocationRequired   = fmt.Errorf("%w: user location not available", ErrBadRequest)
	ErrInvalidRadius      = fmt.Errorf("%w: radius must be a positive number of kilometers", ErrBadRequest)
	ErrInvalidInput       = fmt.Errorf("%w: invalid input", ErrBadRequest)
	ErrUnknownTaskType    = fmt.Errorf("%w: unknown task type", ErrBadRequest)
)
