package book_meeting

import (
	"context"

	"github.com/google/uuid"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/authservice"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/calendarservice"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/mailservice"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/types"
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
	Create(ctx context.Context, booking *domain.GuestMeeting) (*domain.GuestMeeting, error)
	GetByMeetingAndDate(ctx context.Context, meetingID int64, date types.DateString) ([]domain.GuestMeeting, error)
}

// AuthServiceClient интерфейс клиента для AuthService
type AuthServiceClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, uid string) (*authservice.UserProfile, error)
}

// MailServiceClient интерфейс клиента для MailService
type MailServiceClient interface {
	SendEmail(ctx context.Context, request mailservice.SendEmailRequest) error
}

// CalendarServiceClient интерфейс клиента для CalendarService
type CalendarServiceClient interface {
	CreateEvent(ctx context.Context, request calendarservice.CreateEventRequest) (*calendarservice.CreateEventResponse, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReferenceGenerator интерфейс генерации публичного идентификатора брони
type ReferenceGenerator interface {
	NewReference() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UUIDReferenceGenerator генерирует публичный идентификатор брони как UUID v4
type UUIDReferenceGenerator struct{}

// NewReference возвращает новый идентификатор
func (g *UUIDReferenceGenerator) NewReference() string {
	return uuid.NewString()
}
