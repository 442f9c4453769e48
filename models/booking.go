package models

import "time"

// Booking statuses. A slot is considered blocked by a booking whose status is
// in the caller-selected blocking set (default: booked and pending).
const (
	BookingStatusPending   = "pending"
	BookingStatusBooked    = "booked"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
	BookingStatusRejected  = "rejected"
)

// Booking represents a patient's reservation of one 15-minute slot.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	PatientID string    `bson:"patientId" json:"patientId"`
	Date      string    `bson:"date" json:"date"`           // "YYYY-MM-DD", denormalized from SlotStart
	SlotStart time.Time `bson:"slotStart" json:"slotStart"` // 15-minute aligned
	SlotEnd   time.Time `bson:"slotEnd" json:"slotEnd"`
	Status    string    `bson:"status" json:"status"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"` // patient's note or rejection reason
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	DoctorID  string    `json:"doctorId" binding:"required"`
	PatientID string    `json:"patientId" binding:"required"`
	SlotStart time.Time `json:"slotStart" binding:"required"`
	Reason    string    `json:"reason"`
}
