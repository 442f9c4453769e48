package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in         string
		wantHour   int
		wantMinute int
	}{
		// 24-hour form.
		{"09:00", 9, 0},
		{"00:00", 0, 0},
		{"17:45", 17, 45},
		{"23:59", 23, 59},
		// 12-hour form.
		{"9:00 AM", 9, 0},
		{"9:00AM", 9, 0},
		{"12:00 AM", 0, 0},
		{"12:00 PM", 12, 0},
		{"12:30 pm", 12, 30},
		{"5:15 pm", 17, 15},
		{" 10:05 PM ", 22, 5},
		// Unparseable input degrades to 09:00.
		{"", 9, 0},
		{"7", 9, 0},
		{"25:00", 9, 0},
		{"aa:bb", 9, 0},
		{"9:75", 9, 0},
		{"13:00 PM", 9, 0},
		{"0:30 AM", 9, 0},
		{"half past nine", 9, 0},
	}
	for _, tt := range tests {
		hour, minute := parseClockTime(tt.in)
		assert.Equal(t, tt.wantHour, hour, "hour for %q", tt.in)
		assert.Equal(t, tt.wantMinute, minute, "minute for %q", tt.in)
	}
}
