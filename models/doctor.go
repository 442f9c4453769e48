package models

import "time"

// TimeRange is a single declared working window within a day. Start and end
// are wall-clock strings in either 12-hour ("9:00 AM") or 24-hour ("09:00")
// form; ranges are stored in chronological order and assumed non-overlapping.
type TimeRange struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// DayAvailability is one weekday's entry in the weekly template. When
// Available is false the TimeSlots list is ignored.
type DayAvailability struct {
	Available bool        `bson:"available" json:"available"`
	TimeSlots []TimeRange `bson:"timeSlots" json:"timeSlots"`
}

// WeeklyAvailability maps lowercase English weekday names ("monday".."sunday")
// to their declared working windows.
type WeeklyAvailability map[string]DayAvailability

// DoctorProfile holds the public directory fields of a doctor.
type DoctorProfile struct {
	Name         string  `bson:"name" json:"name"`
	Specialty    string  `bson:"specialty" json:"specialty"`
	Bio          string  `bson:"bio,omitempty" json:"bio,omitempty"`
	Email        string  `bson:"email" json:"email,omitempty"`
	PhoneNumber  string  `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Address      string  `bson:"address,omitempty" json:"address,omitempty"`
	Status       string  `bson:"status" json:"status,omitempty"` // e.g. "active", "suspended"
	Rating       float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	ConsultFee   float64 `bson:"consultFee,omitempty" json:"consultFee,omitempty"`
	ProfileImage string  `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
}

// Doctor is a directory entry together with its weekly availability template.
// WeeklyAvailability may be nil for legacy records that predate the template
// editor; the availability resolver substitutes a default template in that case.
type Doctor struct {
	ID                 string             `bson:"id" json:"id"`
	Profile            DoctorProfile      `bson:"profile" json:"profile"`
	WeeklyAvailability WeeklyAvailability `bson:"weeklyAvailability,omitempty" json:"weeklyAvailability,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
