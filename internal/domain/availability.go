package domain

import "github.com/chungmangjie200/ZCal-MeetingService/pkg/types"

// AvailabilitySlot is one persisted availability record: a contiguous
// bookable time range on one date. StartTime/EndTime are nil for blank
// windows, which are dropped before persistence.
type AvailabilitySlot struct {
	ID        *int64 // nil until persisted
	MeetingID int64
	Date      types.DateString
	StartTime *types.TimeString
	EndTime   *types.TimeString
}

// IsBlank returns true if either boundary of the window is missing
func (s *AvailabilitySlot) IsBlank() bool {
	return s.StartTime == nil || s.StartTime.IsZero() ||
		s.EndTime == nil || s.EndTime.IsZero()
}
