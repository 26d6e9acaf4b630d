package domain

import "fmt"

// Allowed values for meeting configuration fields
var (
	AllowedEventDurations     = []int{15, 30, 60, 120, 180}
	AllowedTimeSlotIncrements = []int{15, 30, 60}
	AllowedDateRanges         = []int{3, 7, 30}
)

// Default meeting configuration values
const (
	DefaultLocation          = LocationZoom
	DefaultEventDuration     = 30
	DefaultTimeSlotIncrement = 30
	DefaultDateRange         = 7
	DefaultReminderDays      = 1
)

// Default availability window synthesized for weekdays
const (
	DefaultWindowStart = "09:00"
	DefaultWindowEnd   = "17:00"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CalendarTimezoneOffsetSeconds is the fixed UTC+8 offset applied to
// calendar-event payloads regardless of guest or host locale. This is a
// deliberate product decision, not a bug.
const CalendarTimezoneOffsetSeconds = 8 * 60 * 60

// durationLabel formats a duration in minutes for user-facing text:
// up to an hour as "N min", above that as whole hours.
func durationLabel(minutes int) string {
	if minutes <= 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%d hour(s)", minutes/60)
}
