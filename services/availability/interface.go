package availability

import (
	"errors"
	"time"

	bookingRepo "medibook/database/repository/booking"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
)

// ErrDoctorNotFound is returned when the requested doctor id does not resolve.
var ErrDoctorNotFound = errors.New("doctor not found")

// AvailabilityService computes the bookable 15-minute slots for a doctor on a
// given date, plus a rolling forward overview of the weekly template.
type AvailabilityService interface {
	// Resolve returns the slot candidates for targetDate. A zero targetDate
	// means "now". When blockPending is true (the default for callers),
	// pending bookings block slots in addition to booked ones.
	Resolve(doctorID string, targetDate time.Time, blockPending bool) (*models.DayAvailabilityResult, error)
}

// DefaultAvailabilityService is the production implementation. It is a pure
// read-and-compute service: one read against the doctor record, one read
// against the booking store, no writes and no shared state between calls.
type DefaultAvailabilityService struct {
	Doctors  doctorRepo.DoctorRepository
	Bookings bookingRepo.BookingRepository

	// WindowDays bounds how far ahead a date is bookable (default 15).
	// OverviewDays is the length of the rolling overview (default WindowDays).
	WindowDays   int
	OverviewDays int

	// Now is the clock used for "today" and past-time checks. Defaults to
	// time.Now; tests substitute a fixed clock.
	Now func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAvailabilityService) windowDays() int {
	if s.WindowDays > 0 {
		return s.WindowDays
	}
	return 15
}

func (s *DefaultAvailabilityService) overviewDays() int {
	if s.OverviewDays > 0 {
		return s.OverviewDays
	}
	return s.windowDays()
}
