package get_time_options

import (
	"context"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/service/meetings/models"
)

type MeetingsService interface {
	GetByID(ctx context.Context, meetingID int64) (*models.MeetingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
