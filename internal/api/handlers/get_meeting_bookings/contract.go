package get_meeting_bookings

import (
	"context"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/service/meetings/models"
)

type MeetingsService interface {
	GetBookings(ctx context.Context, meetingID int64, userUID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
