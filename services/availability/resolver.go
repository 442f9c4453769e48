package availability

import (
	"errors"
	"fmt"
	"strings"
	"time"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
)

// slotInterval is the fixed bookable increment. Bookings are assumed to be
// aligned to it; a booking with a non-aligned start would slip past the
// conflict keys built here (see blockedSlotKeys).
const slotInterval = 15 * time.Minute

// Resolve computes the slot candidates for a doctor on targetDate.
//
// The weekly overview is always populated, even when the date is outside the
// booking window or the day is unavailable, because the portal renders it
// unconditionally. Slot candidates are only generated for bookable dates.
func (s *DefaultAvailabilityService) Resolve(doctorID string, targetDate time.Time, blockPending bool) (*models.DayAvailabilityResult, error) {
	now := s.now()
	if targetDate.IsZero() {
		targetDate = now
	}

	doctor, err := s.Doctors.GetByID(doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to load doctor %s: %w", doctorID, err)
	}

	res := &models.DayAvailabilityResult{
		Date:      targetDate.Format("2006-01-02"),
		DayOfWeek: targetDate.Weekday().String(),
		TimeSlots: []models.SlotCandidate{},
	}

	hasTemplate := len(doctor.WeeklyAvailability) > 0
	if hasTemplate {
		res.WeeklySchedule = s.buildOverview(doctor.WeeklyAvailability, now)
	} else {
		res.WeeklySchedule = s.defaultOverview(now)
	}

	today := startOfDay(now)
	target := startOfDay(targetDate)
	if target.Before(today) || target.After(today.AddDate(0, 0, s.windowDays())) {
		res.Message = fmt.Sprintf("Appointments can only be booked up to %d days in advance", s.windowDays())
		return res, nil
	}

	if !hasTemplate {
		// Legacy doctor record without a template: serve the fixed defaults.
		res.Available = true
		res.TimeSlots = defaultDaySlots()
		return res, nil
	}

	dayName := strings.ToLower(targetDate.Weekday().String())
	day, ok := doctor.WeeklyAvailability[dayName]
	if !ok || !day.Available || len(day.TimeSlots) == 0 {
		res.Message = fmt.Sprintf("Doctor is not available on %s", res.DayOfWeek)
		return res, nil
	}

	statuses := []string{models.BookingStatusBooked}
	if blockPending {
		statuses = append(statuses, models.BookingStatusPending)
	}
	bookings, err := s.Bookings.ListByDoctorBetween(doctorID, target, target.AddDate(0, 0, 1), statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for doctor %s on %s: %w", doctorID, res.Date, err)
	}

	blocked := blockedSlotKeys(bookings)
	isToday := target.Equal(today)

	for _, tr := range day.TimeSlots {
		startHour, startMin := parseClockTime(tr.StartTime)
		endHour, endMin := parseClockTime(tr.EndTime)
		rangeStart := time.Date(target.Year(), target.Month(), target.Day(), startHour, startMin, 0, 0, target.Location())
		rangeEnd := time.Date(target.Year(), target.Month(), target.Day(), endHour, endMin, 0, 0, target.Location())

		for t := rangeStart; t.Before(rangeEnd); t = t.Add(slotInterval) {
			isBooked := blocked[t.Format("15:04")]
			isPast := isToday && t.Before(now)
			res.TimeSlots = append(res.TimeSlots, models.SlotCandidate{
				Time:      t.Format("3:04 PM"),
				Available: !isPast && !isBooked,
				Booked:    isBooked,
			})
		}
	}

	res.Available = true
	return res, nil
}

// buildOverview derives the rolling forward view from the weekly template
// alone. It deliberately ignores booking data: it answers "does this doctor
// ever see patients on this day", not "is anything still free".
func (s *DefaultAvailabilityService) buildOverview(weekly models.WeeklyAvailability, now time.Time) []models.WeeklyOverviewEntry {
	day0 := startOfDay(now)
	entries := make([]models.WeeklyOverviewEntry, 0, s.overviewDays())
	for i := 0; i < s.overviewDays(); i++ {
		d := day0.AddDate(0, 0, i)
		entry := models.WeeklyOverviewEntry{
			Date:      d.Format("2006-01-02"),
			Day:       d.Format("Mon"),
			DayNumber: d.Day(),
			TimeRange: "Not available",
		}
		if cfg, ok := weekly[strings.ToLower(d.Weekday().String())]; ok && cfg.Available && len(cfg.TimeSlots) > 0 {
			entry.Available = true
			entry.TimeRange = fmt.Sprintf("%s - %s", cfg.TimeSlots[0].StartTime, cfg.TimeSlots[len(cfg.TimeSlots)-1].EndTime)
		}
		entries = append(entries, entry)
	}
	return entries
}

// blockedSlotKeys collects every 15-minute-aligned "HH:MM" key covered by a
// blocking booking. A booking spanning multiple windows contributes one key
// per window it overlaps.
func blockedSlotKeys(bookings []models.Booking) map[string]bool {
	keys := make(map[string]bool)
	for _, b := range bookings {
		for t := b.SlotStart; t.Before(b.SlotEnd); t = t.Add(slotInterval) {
			keys[t.Format("15:04")] = true
		}
	}
	return keys
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
