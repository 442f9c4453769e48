package models

// SlotCandidate is one bookable 15-minute increment for a specific date,
// produced fresh on every availability request.
type SlotCandidate struct {
	Time      string `json:"time"` // display label, e.g. "9:15 AM"
	Available bool   `json:"available"`
	Booked    bool   `json:"booked"`
}

// WeeklyOverviewEntry summarizes one day of the rolling forward view. It is
// derived from the weekly template alone and never consults booking data.
type WeeklyOverviewEntry struct {
	Date      string `json:"date"` // "YYYY-MM-DD"
	Day       string `json:"day"`  // short label, e.g. "Mon"
	DayNumber int    `json:"dayNumber"`
	Available bool   `json:"available"`
	TimeRange string `json:"timeRange"` // "9:00 AM - 6:00 PM" or "Not available"
}

// DayAvailabilityResult is the resolver's answer for a single target date.
type DayAvailabilityResult struct {
	Available      bool                  `json:"available"`
	Date           string                `json:"date"`
	DayOfWeek      string                `json:"dayOfWeek"`
	Message        string                `json:"message,omitempty"`
	TimeSlots      []SlotCandidate       `json:"timeSlots"`
	WeeklySchedule []WeeklyOverviewEntry `json:"weeklySchedule"`
}
