package booking

import (
	"errors"
	"fmt"
	"time"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"

	"github.com/google/uuid"
)

const slotDuration = 15 * time.Minute

// allowedTransitions enumerates the legal status changes. pending is the
// entry state; doctors accept or reject, either side may cancel while the
// appointment is still ahead, and the sweeper completes elapsed bookings.
var allowedTransitions = map[string][]string{
	models.BookingStatusPending: {models.BookingStatusBooked, models.BookingStatusRejected, models.BookingStatusCancelled},
	models.BookingStatusBooked:  {models.BookingStatusCancelled, models.BookingStatusCompleted},
}

// CreateBooking reserves one 15-minute slot as a pending booking. Alignment
// and window checks happen here; the race between two patients grabbing the
// same slot is settled by the unique index, surfaced as ErrSlotTaken.
func (s *DefaultBookingService) CreateBooking(input models.BookingInput) (*models.Booking, error) {
	if _, err := s.Doctors.GetByID(input.DoctorID); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to load doctor %s: %w", input.DoctorID, err)
	}

	start := input.SlotStart
	if start.Minute()%15 != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		return nil, fmt.Errorf("%w: %s is not aligned to 15 minutes", ErrInvalidSlot, start.Format(time.RFC3339))
	}

	now := s.now()
	if start.Before(now) {
		return nil, fmt.Errorf("%w: slot is in the past", ErrInvalidSlot)
	}
	windowEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, s.windowDays()+1)
	if !start.Before(windowEnd) {
		return nil, fmt.Errorf("%w: slot is more than %d days ahead", ErrInvalidSlot, s.windowDays())
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		DoctorID:  input.DoctorID,
		PatientID: input.PatientID,
		Date:      start.Format("2006-01-02"),
		SlotStart: start,
		SlotEnd:   start.Add(slotDuration),
		Status:    models.BookingStatusPending,
		Reason:    input.Reason,
	}
	if err := s.Repo.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetBooking fetches a booking by id.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// CancelBooking moves a pending or booked reservation to cancelled.
func (s *DefaultBookingService) CancelBooking(id string) (*models.Booking, error) {
	return s.UpdateBookingStatus(id, models.BookingStatusCancelled, "")
}

// UpdateBookingStatus applies a status change after checking it against the
// transition table.
func (s *DefaultBookingService) UpdateBookingStatus(id, status, reason string) (*models.Booking, error) {
	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(current.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}
	return s.Repo.UpdateStatus(id, status, reason)
}

// ListPatientBookings returns all bookings made by a patient.
func (s *DefaultBookingService) ListPatientBookings(patientID string) ([]models.Booking, error) {
	return s.Repo.ListByPatient(patientID)
}

// ListDoctorBookings returns all bookings held against a doctor.
func (s *DefaultBookingService) ListDoctorBookings(doctorID string) ([]models.Booking, error) {
	return s.Repo.ListByDoctor(doctorID)
}

func transitionAllowed(from, to string) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
