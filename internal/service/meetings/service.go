package meetings

import (
	"context"
	"errors"
	"fmt"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
	meetingRepo "github.com/chungmangjie200/ZCal-MeetingService/internal/infra/storage/meeting"
	authClient "github.com/chungmangjie200/ZCal-MeetingService/internal/integrations/authservice"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/service/meetings/models"
)

// Service сервис для работы со встречами
type Service struct {
	meetingRepo      MeetingRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	authClient       AuthServiceClient
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса встреч
func NewService(
	meetingRepo MeetingRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	authClient AuthServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		meetingRepo:      meetingRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		authClient:       authClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetByID получает встречу с окнами доступности и профилем владельца
// Страница бронирования гостя строится из этого ответа, поэтому
// недоступность AuthService не фатальна: профиль просто остаётся пустым
func (s *Service) GetByID(ctx context.Context, id int64) (*models.MeetingResponse, error) {
	s.logger.Info("GetByID: fetching meeting id=%d", id)

	meeting, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
			s.logger.Warn("GetByID: meeting id=%d not found", id)
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("GetByID: repository error for meeting id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	slots, err := s.availabilityRepo.GetByMeetingID(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to get availability for meeting id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get availability: %v", ErrInternal, err)
	}

	response := models.FromDomainMeeting(meeting)
	response.Availability = availability.ReconstructFromPersisted(slots)

	// Денормализуем профиль владельца с graceful degradation
	profile, err := s.authClient.GetUserWithGracefulDegradation(ctx, meeting.UserUID)
	if err != nil {
		if errors.Is(err, authClient.ErrUserNotFound) {
			s.logger.Warn("GetByID: owner uid=%s not found in AuthService", meeting.UserUID)
		}
		// Деградация уже залогирована клиентом, отдаём встречу без профиля
	} else {
		response.UserName = profile.Name
		response.ProfilePicture = profile.ProfilePicture
	}

	s.logger.Info("GetByID: successfully fetched meeting id=%d", id)
	return &response, nil
}

// GetUserMeetings получает все встречи владельца
func (s *Service) GetUserMeetings(ctx context.Context, userUID string) (*models.MeetingListResponse, error) {
	s.logger.Info("GetUserMeetings: fetching meetings for user=%s", userUID)

	meetings, err := s.meetingRepo.GetByUserUID(ctx, userUID)
	if err != nil {
		s.logger.Error("GetUserMeetings: repository error for user=%s: %v", userUID, err)
		return nil, fmt.Errorf("%w: GetUserMeetings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserMeetings: successfully fetched %d meetings for user=%s", len(meetings), userUID)
	return models.FromDomainMeetingList(meetings), nil
}

// GetBookings получает все брони встречи
// Доступно только владельцу встречи
func (s *Service) GetBookings(ctx context.Context, meetingID int64, userUID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetBookings: fetching bookings for meeting id=%d, user=%s", meetingID, userUID)

	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
			s.logger.Warn("GetBookings: meeting id=%d not found", meetingID)
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("GetBookings: repository error for meeting id=%d: %v", meetingID, err)
		return nil, fmt.Errorf("%w: GetBookings - repository error: %v", ErrInternal, err)
	}

	if meeting.UserUID != userUID {
		s.logger.Warn("GetBookings: access denied for user=%s to meeting id=%d", userUID, meetingID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetByMeetingID(ctx, meetingID)
	if err != nil {
		s.logger.Error("GetBookings: failed to get bookings for meeting id=%d: %v", meetingID, err)
		return nil, fmt.Errorf("%w: GetBookings - failed to get bookings: %v", ErrInternal, err)
	}

	s.logger.Info("GetBookings: successfully fetched %d bookings for meeting id=%d", len(bookings), meetingID)
	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет встречу вместе с окнами доступности и бронями
// Доступно только владельцу; каскад выполняется в одной транзакции
func (s *Service) Delete(ctx context.Context, meetingID int64, userUID string) error {
	s.logger.Info("Delete: deleting meeting id=%d for user=%s", meetingID, userUID)

	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
			s.logger.Warn("Delete: meeting id=%d not found", meetingID)
			return ErrMeetingNotFound
		}
		s.logger.Error("Delete: repository error for meeting id=%d: %v", meetingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if meeting.UserUID != userUID {
		s.logger.Warn("Delete: access denied for user=%s to meeting id=%d", userUID, meetingID)
		return ErrAccessDenied
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.DeleteByMeetingID(txCtx, meetingID); err != nil {
			return fmt.Errorf("%w: Delete - failed to delete bookings: %v", ErrInternal, err)
		}
		if err := s.availabilityRepo.DeleteByMeetingID(txCtx, meetingID); err != nil {
			return fmt.Errorf("%w: Delete - failed to delete availability: %v", ErrInternal, err)
		}
		if err := s.meetingRepo.Delete(txCtx, meetingID); err != nil {
			if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
				return ErrMeetingNotFound
			}
			return fmt.Errorf("%w: Delete - failed to delete meeting: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		s.logger.Error("Delete: failed to delete meeting id=%d: %v", meetingID, err)
		return err
	}

	s.logger.Info("Delete: successfully deleted meeting id=%d", meetingID)
	return nil
}
