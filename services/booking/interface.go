package booking

import (
	"time"

	bookingRepo "medibook/database/repository/booking"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
)

// BookingService is the reservation write path. The availability resolver
// never goes through it; double-booking is prevented at the storage layer by
// the bookings collection's partial unique index.
type BookingService interface {
	CreateBooking(input models.BookingInput) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	CancelBooking(id string) (*models.Booking, error)
	UpdateBookingStatus(id, status, reason string) (*models.Booking, error)
	ListPatientBookings(patientID string) ([]models.Booking, error)
	ListDoctorBookings(doctorID string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo    bookingRepo.BookingRepository
	Doctors doctorRepo.DoctorRepository

	// WindowDays bounds how far ahead a slot may be reserved (default 15).
	WindowDays int

	// Now is the clock used for window checks. Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) windowDays() int {
	if s.WindowDays > 0 {
		return s.WindowDays
	}
	return 15
}
