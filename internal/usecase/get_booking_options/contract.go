package get_booking_options

import (
	"context"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
)

// MeetingRepository интерфейс репозитория встреч
type MeetingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Meeting, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByMeetingID(ctx context.Context, meetingID int64) ([]domain.AvailabilitySlot, error)
}

// BookingRepository интерфейс репозитория броней
type BookingRepository interface {
	GetByMeetingID(ctx context.Context, meetingID int64) ([]domain.GuestMeeting, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
