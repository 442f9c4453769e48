package bookingRepo

import (
	"errors"
	"time"

	"medibook/models"
)

var (
	// ErrNotFound is returned when a booking id does not resolve to a document.
	ErrNotFound = errors.New("booking not found")
	// ErrSlotTaken is returned when an active booking already holds the same
	// doctor/slotStart pair. It is backed by a partial unique index so
	// concurrent writers cannot double-book a slot.
	ErrSlotTaken = errors.New("slot already booked")
)

// BookingRepository defines data access for bookings. The availability
// resolver only calls ListByDoctorBetween; all write methods belong to the
// reservation flow.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	// ListByDoctorBetween returns the doctor's bookings with slotStart in
	// [start, end) whose status is in the given set.
	ListByDoctorBetween(doctorID string, start, end time.Time, statuses []string) ([]models.Booking, error)
	ListByPatient(patientID string) ([]models.Booking, error)
	ListByDoctor(doctorID string) ([]models.Booking, error)
	UpdateStatus(id, status, reason string) (*models.Booking, error)
	// MarkCompletedBefore flips booked bookings whose slot has fully elapsed
	// to completed and reports how many were updated.
	MarkCompletedBefore(cutoff time.Time) (int64, error)
}
