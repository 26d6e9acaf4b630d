package get_booking_options

import (
	"context"

	getBookingOptions "github.com/chungmangjie200/ZCal-MeetingService/internal/usecase/get_booking_options"
)

type GetBookingOptionsUseCase interface {
	Execute(ctx context.Context, req *getBookingOptions.Request) (*getBookingOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
