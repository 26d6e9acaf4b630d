package update_meeting

import (
	"context"
	"errors"
	"fmt"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	meetingRepo "github.com/chungmangjie200/ZCal-MeetingService/internal/infra/storage/meeting"
)

// UseCase use case для обновления встречи
type UseCase struct {
	meetingRepo      MeetingRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	meetingRepo MeetingRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		meetingRepo:      meetingRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case обновления встречи
// Расписание заменяется целиком (delete+insert) в той же транзакции,
// что и поля встречи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateMeeting: meeting=%d, user=%s, replaceEntries=%t",
		req.MeetingID, req.UserUID, req.ReplaceEntries)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateMeeting: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование и владельца
	existing, err := uc.meetingRepo.GetByID(ctx, req.MeetingID)
	if err != nil {
		if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
			uc.logger.Warn("UpdateMeeting: meeting id=%d not found", req.MeetingID)
			return nil, ErrMeetingNotFound
		}
		uc.logger.Error("UpdateMeeting: failed to get meeting id=%d: %v", req.MeetingID, err)
		return nil, fmt.Errorf("%w: failed to get meeting: %v", ErrInternal, err)
	}

	if existing.UserUID != req.UserUID {
		uc.logger.Warn("UpdateMeeting: access denied for user=%s to meeting id=%d",
			req.UserUID, req.MeetingID)
		return nil, ErrAccessDenied
	}

	// 3. Готовим обновлённую встречу и окна
	meeting := &domain.Meeting{
		ID:                req.MeetingID,
		MeetingName:       req.MeetingName,
		Location:          domain.MeetingLocation(req.Location),
		Description:       req.Description,
		CustomURL:         req.CustomURL,
		CoverPhoto:        req.CoverPhoto,
		EventDuration:     req.EventDuration,
		TimeSlotIncrement: req.TimeSlotIncrement,
		DateRange:         req.DateRange,
		ReminderDays:      req.ReminderDays,
		UserUID:           existing.UserUID,
	}

	var slots []domain.AvailabilitySlot
	if req.ReplaceEntries {
		slots = availability.FlattenForPersistence(req.Entries)
	}

	// 4. Применяем изменения в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.meetingRepo.Update(txCtx, meeting); err != nil {
			if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
				return ErrMeetingNotFound
			}
			uc.logger.Error("UpdateMeeting: failed to update meeting id=%d: %v", req.MeetingID, err)
			return fmt.Errorf("%w: failed to update meeting: %v", ErrInternal, err)
		}

		if req.ReplaceEntries {
			if err := uc.availabilityRepo.ReplaceForMeeting(txCtx, req.MeetingID, slots); err != nil {
				uc.logger.Error("UpdateMeeting: failed to replace availability for meeting id=%d: %v",
					req.MeetingID, err)
				return fmt.Errorf("%w: failed to replace availability: %v", ErrInternal, err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateMeeting: successfully updated meeting id=%d", req.MeetingID)

	return &Response{
		ID:        meeting.ID,
		UpdatedAt: meeting.UpdatedAt,
	}, nil
}
