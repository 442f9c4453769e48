package availability

import (
	"strings"
	"time"

	"medibook/models"
)

// Fallback schedule for legacy doctor records that have no weekly template.
// These are the historical clinic hours the portal showed before templates
// existed: half-hour slots through the morning and afternoon sessions.
var defaultSlotTimes = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM",
	"5:00 PM", "5:30 PM",
}

const defaultDayRange = "9:00 AM - 6:00 PM"

func defaultDaySlots() []models.SlotCandidate {
	slots := make([]models.SlotCandidate, 0, len(defaultSlotTimes))
	for _, label := range defaultSlotTimes {
		slots = append(slots, models.SlotCandidate{Time: label, Available: true})
	}
	return slots
}

// defaultOverview assumes every day except Sunday is a working day.
func (s *DefaultAvailabilityService) defaultOverview(now time.Time) []models.WeeklyOverviewEntry {
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
		if d.Weekday() != time.Sunday {
			entry.Available = true
			entry.TimeRange = defaultDayRange
		}
		entries = append(entries, entry)
	}
	return entries
}

// DefaultWeeklyTemplate returns the template equivalent of the legacy
// fallback, used to seed a doctor's editable schedule the first time they
// open the template editor.
func DefaultWeeklyTemplate() models.WeeklyAvailability {
	weekly := make(models.WeeklyAvailability, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		key := strings.ToLower(d.String())
		if d == time.Sunday {
			weekly[key] = models.DayAvailability{Available: false}
			continue
		}
		weekly[key] = models.DayAvailability{
			Available: true,
			TimeSlots: []models.TimeRange{
				{StartTime: "9:00 AM", EndTime: "11:30 AM"},
				{StartTime: "2:00 PM", EndTime: "6:00 PM"},
			},
		}
	}
	return weekly
}
