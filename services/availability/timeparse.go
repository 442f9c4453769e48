package availability

import (
	"strconv"
	"strings"

	"medibook/utils"

	"go.uber.org/zap"
)

// defaultHour is substituted when a stored time string cannot be parsed.
// Doctor templates are free-form legacy data, so a bad entry degrades to
// 09:00 instead of failing the whole availability request.
const defaultHour = 9

// parseClockTime parses a wall-clock string in either 24-hour ("09:00") or
// 12-hour ("9:00 AM", case-insensitive meridiem) form into an hour/minute
// pair. 12 AM maps to hour 0, 12 PM stays 12.
func parseClockTime(raw string) (hour, minute int) {
	s := strings.TrimSpace(raw)

	meridiem := ""
	switch upper := strings.ToUpper(s); {
	case strings.HasSuffix(upper, "AM"):
		meridiem = "AM"
		s = strings.TrimSpace(s[:len(s)-2])
	case strings.HasSuffix(upper, "PM"):
		meridiem = "PM"
		s = strings.TrimSpace(s[:len(s)-2])
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return badClockTime(raw)
	}
	h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errH != nil || errM != nil || m < 0 || m > 59 {
		return badClockTime(raw)
	}

	switch meridiem {
	case "AM":
		if h < 1 || h > 12 {
			return badClockTime(raw)
		}
		if h == 12 {
			h = 0
		}
	case "PM":
		if h < 1 || h > 12 {
			return badClockTime(raw)
		}
		if h != 12 {
			h += 12
		}
	default:
		if h < 0 || h > 23 {
			return badClockTime(raw)
		}
	}
	return h, m
}

func badClockTime(raw string) (int, int) {
	utils.GetLogger().Warn("Unparseable time string in weekly template, falling back to 09:00",
		zap.String("value", raw))
	return defaultHour, 0
}
