package book_meeting

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	meetingRepo "github.com/chungmangjie200/ZCal-MeetingService/internal/infra/storage/meeting"
	authClient "github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/authservice"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/slots"
)

// UseCase use case бронирования слота гостем
type UseCase struct {
	meetingRepo      MeetingRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	authClient       AuthServiceClient
	mailClient       MailServiceClient
	calendarClient   CalendarServiceClient
	txManager        TransactionManager
	refGenerator     ReferenceGenerator
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	meetingRepo MeetingRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	authClient AuthServiceClient,
	mailClient MailServiceClient,
	calendarClient CalendarServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		meetingRepo:      meetingRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		authClient:       authClient,
		mailClient:       mailClient,
		calendarClient:   calendarClient,
		txManager:        txManager,
		refGenerator:     &UUIDReferenceGenerator{},
		logger:           logger,
	}
}

// Execute выполняет use case бронирования
// Доступность слота перепроверяется внутри сериализуемой транзакции:
// виджет гостя мог устареть между загрузкой слотов и сабмитом.
// Побочные эффекты после коммита идут строго последовательно
// (письмо, затем календарь); сбой любого из них прерывает остальные и
// возвращает ErrNotificationFailed, при этом запись брони сохраняется —
// компенсирующей транзакции нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookMeeting: meeting=%d, guest=%s, date=%s, time=%s",
		req.MeetingID, req.Email, req.BookedDate, req.BookedTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookMeeting: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем встречу
	meeting, err := uc.meetingRepo.GetByID(ctx, req.MeetingID)
	if err != nil {
		if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
			uc.logger.Warn("BookMeeting: meeting id=%d not found", req.MeetingID)
			return nil, ErrMeetingNotFound
		}
		uc.logger.Error("BookMeeting: failed to get meeting id=%d: %v", req.MeetingID, err)
		return nil, fmt.Errorf("%w: failed to get meeting: %v", ErrInternal, err)
	}

	// Список участников: письмо, календарь и колонка guest_emails
	// используют один и тот же список. Если клиент его не прислал,
	// участником считается сам гость.
	attendees := req.GuestEmails
	if len(attendees) == 0 {
		attendees = []string{req.Email}
	}

	booking := &domain.GuestMeeting{
		Reference:   uc.refGenerator.NewReference(),
		MeetingID:   req.MeetingID,
		Name:        req.Name,
		Email:       req.Email,
		BookedDate:  req.BookedDate,
		BookedTime:  req.BookedTime,
		GuestEmails: strings.Join(attendees, ", "),
	}

	// 3. Перепроверяем доступность и создаем бронь в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Окна доступности встречи
		windows, err := uc.availabilityRepo.GetByMeetingID(txCtx, req.MeetingID)
		if err != nil {
			uc.logger.Error("BookMeeting: failed to get availability: %v", err)
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		// 3.2. Существующие брони выбранной даты с блокировкой (FOR UPDATE)
		booked, err := uc.bookingRepo.GetByMeetingAndDate(txCtx, req.MeetingID, req.BookedDate)
		if err != nil {
			uc.logger.Error("BookMeeting: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.3. Проверяем выбор гостя против актуального множества
		set := slots.ComputeBookableSet(windows, meeting.EventDuration, booked)
		if err := set.ValidateChoice(req.BookedDate, req.BookedTime); err != nil {
			uc.logger.Warn("BookMeeting: slot %s %s is not available for meeting id=%d",
				req.BookedDate, req.BookedTime, req.MeetingID)
			return ErrSlotUnavailable
		}

		// 3.4. Создаем бронь
		if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			uc.logger.Error("BookMeeting: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookMeeting: booking id=%d ref=%s created for meeting id=%d",
		booking.ID, booking.Reference, req.MeetingID)

	// 4. Профиль владельца для подписи письма (graceful degradation)
	ownerName := ""
	profile, err := uc.authClient.GetUserWithGracefulDegradation(ctx, meeting.UserUID)
	if err != nil {
		if !errors.Is(err, authClient.ErrUserNotFound) && !errors.Is(err, authClient.ErrServiceDegraded) {
			uc.logger.Warn("BookMeeting: unexpected auth error for uid=%s: %v", meeting.UserUID, err)
		}
	} else {
		ownerName = profile.Name
	}

	// 5. Письмо-подтверждение всем участникам
	if err := uc.mailClient.SendEmail(ctx, buildConfirmationEmail(meeting, req, attendees, ownerName)); err != nil {
		uc.logger.Error("BookMeeting: booking id=%d recorded, but email failed: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: email: %v", ErrNotificationFailed, err)
	}

	// 6. Календарное событие
	start, err := eventStart(req)
	if err != nil {
		uc.logger.Error("BookMeeting: booking id=%d recorded, but event start is invalid: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: calendar: %v", ErrNotificationFailed, err)
	}
	if _, err := uc.calendarClient.CreateEvent(ctx, buildCalendarEvent(meeting, req, attendees, start)); err != nil {
		uc.logger.Error("BookMeeting: booking id=%d recorded, but calendar event failed: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: calendar: %v", ErrNotificationFailed, err)
	}

	uc.logger.Info("BookMeeting: successfully booked id=%d ref=%s", booking.ID, booking.Reference)

	return &Response{
		ID:          booking.ID,
		Reference:   booking.Reference,
		MeetingID:   booking.MeetingID,
		MeetingName: meeting.MeetingName,
		Name:        booking.Name,
		Email:       booking.Email,
		BookedDate:  booking.BookedDate,
		BookedTime:  booking.BookedTime,
		GuestEmails: attendees,
		CreatedAt:   booking.CreatedAt,
	}, nil
}
