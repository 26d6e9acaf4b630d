package book_meeting

import (
	"context"

	bookMeeting "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/book_meeting"
)

type BookMeetingUseCase interface {
	Execute(ctx context.Context, req *bookMeeting.Request) (*bookMeeting.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
