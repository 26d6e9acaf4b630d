package domain

import (
	"time"

	"github.com/chungmangjie200/ZCal-MeetingService/pkg/types"
)

// GuestMeeting represents one confirmed guest booking against a
// meeting link. Bookings are immutable once created; they only serve to
// exclude already-taken start times from the bookable set.
type GuestMeeting struct {
	ID          int64
	Reference   string // public identifier handed to the guest
	MeetingID   int64
	Name        string
	Email       string
	BookedDate  types.DateString
	BookedTime  types.TimeString
	GuestEmails string // comma-and-space joined attendee list

	CreatedAt time.Time
}
