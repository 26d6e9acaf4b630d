package update_meeting

import (
	"context"

	updateMeeting "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/update_meeting"
)

type UpdateMeetingUseCase interface {
	Execute(ctx context.Context, req *updateMeeting.Request) (*updateMeeting.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
