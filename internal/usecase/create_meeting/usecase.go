package create_meeting

import (
	"context"
	"fmt"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
)

// UseCase use case для создания встречи
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

// Execute выполняет use case создания встречи
// Встреча и её окна доступности сохраняются в одной транзакции:
// встреча без расписания не должна быть видна гостям
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateMeeting: user=%s, name=%q, duration=%d, range=%d",
		req.UserUID, req.MeetingName, req.EventDuration, req.DateRange)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateMeeting: validation failed: %v", err)
		return nil, err
	}

	// 2. Готовим плоский список окон для сохранения
	slots := availability.FlattenForPersistence(req.Entries)

	meeting := &domain.Meeting{
		MeetingName:       req.MeetingName,
		Location:          domain.MeetingLocation(req.Location),
		Description:       req.Description,
		CustomURL:         req.CustomURL,
		CoverPhoto:        req.CoverPhoto,
		EventDuration:     req.EventDuration,
		TimeSlotIncrement: req.TimeSlotIncrement,
		DateRange:         req.DateRange,
		ReminderDays:      req.ReminderDays,
		UserUID:           req.UserUID,
	}

	// 3. Сохраняем встречу и окна в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.meetingRepo.Create(txCtx, meeting)
		if err != nil {
			uc.logger.Error("CreateMeeting: failed to create meeting: %v", err)
			return fmt.Errorf("%w: failed to create meeting: %v", ErrInternal, err)
		}

		if len(slots) > 0 {
			if err := uc.availabilityRepo.ReplaceForMeeting(txCtx, created.ID, slots); err != nil {
				uc.logger.Error("CreateMeeting: failed to store availability: %v", err)
				return fmt.Errorf("%w: failed to store availability: %v", ErrInternal, err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateMeeting: successfully created meeting id=%d with %d windows",
		meeting.ID, len(slots))

	return &Response{
		ID:        meeting.ID,
		CreatedAt: meeting.CreatedAt,
	}, nil
}
