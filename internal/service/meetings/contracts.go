package meetings

import (
	"context"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/authservice"
)

// MeetingRepository интерфейс репозитория встреч
type MeetingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Meeting, error)
	GetByUserUID(ctx context.Context, userUID string) ([]*domain.Meeting, error)
	Delete(ctx context.Context, id int64) error
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByMeetingID(ctx context.Context, meetingID int64) ([]domain.AvailabilitySlot, error)
	DeleteByMeetingID(ctx context.Context, meetingID int64) error
}

// BookingRepository интерфейс репозитория броней
type BookingRepository interface {
	GetByMeetingID(ctx context.Context, meetingID int64) ([]domain.GuestMeeting, error)
	DeleteByMeetingID(ctx context.Context, meetingID int64) error
}

// AuthServiceClient интерфейс клиента для AuthService
type AuthServiceClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, uid string) (*authservice.UserProfile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
