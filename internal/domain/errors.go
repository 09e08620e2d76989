package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation wraps all user-facing validation failures.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials is returned when a login code matches no school.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSchoolInactive is returned when logging into a deactivated school.
	ErrSchoolInactive = errors.New("school is deactivated")
)
