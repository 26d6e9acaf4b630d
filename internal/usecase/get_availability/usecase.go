package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
	meetingRepo "github.com/chungmangjie200/ZCal-MeetingService/internal/infra/storage/meeting"
)

// UseCase use case для получения сессии редактирования доступности
type UseCase struct {
	meetingRepo      MeetingRepository
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	meetingRepo MeetingRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		meetingRepo:      meetingRepo,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступности
// Если у встречи ещё нет сохранённых окон, генерирует дефолтные окна
// на горизонт date_range от переданной точки отсчёта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: meeting=%d, user=%s, reference=%s",
		req.MeetingID, req.UserUID, req.ReferenceDate.Format("2006-01-02"))

	// 1. Получаем встречу
	meeting, err := uc.meetingRepo.GetByID(ctx, req.MeetingID)
	if err != nil {
		if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
			uc.logger.Warn("GetAvailability: meeting id=%d not found", req.MeetingID)
			return nil, ErrMeetingNotFound
		}
		uc.logger.Error("GetAvailability: failed to get meeting id=%d: %v", req.MeetingID, err)
		return nil, fmt.Errorf("%w: failed to get meeting: %v", ErrInternal, err)
	}

	// 2. Проверяем владельца: сессия редактирования доступна только ему
	if meeting.UserUID != req.UserUID {
		uc.logger.Warn("GetAvailability: access denied for user=%s to meeting id=%d",
			req.UserUID, req.MeetingID)
		return nil, ErrAccessDenied
	}

	// 3. Получаем сохранённые окна
	slots, err := uc.availabilityRepo.GetByMeetingID(ctx, req.MeetingID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get availability for meeting id=%d: %v",
			req.MeetingID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 4. Восстанавливаем сессию либо генерируем дефолтные окна
	if len(slots) > 0 {
		uc.logger.Info("GetAvailability: reconstructed %d windows for meeting id=%d",
			len(slots), req.MeetingID)
		return &Response{
			MeetingID: req.MeetingID,
			Entries:   availability.ReconstructFromPersisted(slots),
		}, nil
	}

	entries := availability.SynthesizeDefaultWindows(req.ReferenceDate, meeting.DateRange)
	uc.logger.Info("GetAvailability: synthesized %d default entries for meeting id=%d",
		len(entries), req.MeetingID)

	return &Response{
		MeetingID:   req.MeetingID,
		Entries:     entries,
		Synthesized: true,
	}, nil
}
