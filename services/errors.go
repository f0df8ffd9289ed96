package services

import "errors"

// Sentinel errors the controllers translate to HTTP statuses. Wrap with
// fmt.Errorf("%w: detail") to attach a human-readable message.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrInvalidPin = errors.New("invalid PIN")
	ErrPinExpired = errors.New("PIN expired")
	ErrConflict   = errors.New("conflict")

	// ErrMailerNotConfigured marks the degraded delivery mode where the
	// PIN is surfaced to the caller instead of mailed.
	ErrMailerNotConfigured = errors.New("email transport not configured")
)
