package usecase

import "errors"

// Sentinels returned by the ranking services. Callers match them with
// errors.Is; the HTTP layer maps each to one status.
var (
	// ErrInvalidInput covers malformed ids, out of range options and unknown
	// position tags.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when the team, user or turf being ranked for
	// does not exist. Missing candidates are never an error.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized is raised by the account layer, not by services.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDependencyUnavailable wraps store and account failures, including
	// per-call deadlines and open circuits.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
