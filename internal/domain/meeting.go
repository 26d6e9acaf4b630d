package domain

import "time"

// MeetingLocation represents where a meeting takes place
type MeetingLocation string

const (
	LocationZoom       MeetingLocation = "zoom"
	LocationGoogleMeet MeetingLocation = "google_meet"
	LocationPhone      MeetingLocation = "phone"
)

// Meeting represents one meeting-link type owned by a user.
// EventDuration governs slot generation stepping; TimeSlotIncrement only
// governs the granularity of the time-choice widgets.
type Meeting struct {
	ID                int64
	MeetingName       string
	Location          MeetingLocation
	Description       string
	CustomURL         string
	CoverPhoto        string // URL in the external object store, uploaded by the client
	EventDuration     int    // minutes
	TimeSlotIncrement int    // minutes
	DateRange         int    // days into the future guests may book
	ReminderDays      int    // reminder lead time in minutes (historical field name)
	UserUID           string // owner identity in the external auth provider

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidLocation returns true if the location is one of the supported values
func (m *Meeting) IsValidLocation() bool {
	switch m.Location {
	case LocationZoom, LocationGoogleMeet, LocationPhone:
		return true
	}
	return false
}

// IsValidEventDuration returns true if the duration is one of the allowed values
func (m *Meeting) IsValidEventDuration() bool {
	return containsInt(AllowedEventDurations, m.EventDuration)
}

// IsValidTimeSlotIncrement returns true if the increment is one of the allowed values
func (m *Meeting) IsValidTimeSlotIncrement() bool {
	return containsInt(AllowedTimeSlotIncrements, m.TimeSlotIncrement)
}

// IsValidDateRange returns true if the horizon is one of the allowed values
func (m *Meeting) IsValidDateRange() bool {
	return containsInt(AllowedDateRanges, m.DateRange)
}

// DurationLabel renders the event duration the way confirmation emails
// show it ("30 min", "2 hour(s)").
func (m *Meeting) DurationLabel() string {
	return durationLabel(m.EventDuration)
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
