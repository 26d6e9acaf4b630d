package get_user_meetings

import (
	"context"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/service/meetings/models"
)

type MeetingsService interface {
	GetUserMeetings(ctx context.Context, userUID string) (*models.MeetingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
