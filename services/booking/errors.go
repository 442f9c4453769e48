package booking

import "errors"

var (
	// ErrDoctorNotFound is returned when the booking references a doctor id
	// that does not resolve.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrInvalidSlot is returned when the requested slot start is not
	// 15-minute aligned, is in the past, or falls outside the booking window.
	ErrInvalidSlot = errors.New("invalid slot start")
	// ErrInvalidTransition is returned for a status change the booking's
	// current state does not permit.
	ErrInvalidTransition = errors.New("invalid booking status transition")
)
