package get_booking_options

import (
	"context"
	"errors"
	"fmt"

	meetingRepo "github.com/chungmangjie200/ZCal-MeetingService/internal/infra/storage/meeting"
	"github.com/chungmangjie200/ZCal-MeetingService/internal/slots"
)

// UseCase use case для получения доступных слотов встречи
type UseCase struct {
	meetingRepo      MeetingRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	meetingRepo MeetingRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		meetingRepo:      meetingRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Множество пересчитывается с нуля на каждый запрос: страница
// бронирования гостя всегда видит актуальные брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookingOptions: meeting=%d", req.MeetingID)

	// 1. Получаем встречу (нужна длительность слота)
	meeting, err := uc.meetingRepo.GetByID(ctx, req.MeetingID)
	if err != nil {
		if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
			uc.logger.Warn("GetBookingOptions: meeting id=%d not found", req.MeetingID)
			return nil, ErrMeetingNotFound
		}
		uc.logger.Error("GetBookingOptions: failed to get meeting id=%d: %v", req.MeetingID, err)
		return nil, fmt.Errorf("%w: failed to get meeting: %v", ErrInternal, err)
	}

	// 2. Получаем окна доступности
	windows, err := uc.availabilityRepo.GetByMeetingID(ctx, req.MeetingID)
	if err != nil {
		uc.logger.Error("GetBookingOptions: failed to get availability for meeting id=%d: %v",
			req.MeetingID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 3. Получаем существующие брони
	booked, err := uc.bookingRepo.GetByMeetingID(ctx, req.MeetingID)
	if err != nil {
		uc.logger.Error("GetBookingOptions: failed to get bookings for meeting id=%d: %v",
			req.MeetingID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Вычисляем доступные слоты
	set := slots.ComputeBookableSet(windows, meeting.EventDuration, booked)

	response := &Response{
		MeetingID:        req.MeetingID,
		EventDuration:    meeting.EventDuration,
		Dates:            make([]string, 0, len(set.Dates)),
		CandidatesByDate: make(map[string][]string, len(set.CandidatesByDate)),
	}
	for _, date := range set.Dates {
		response.Dates = append(response.Dates, string(date))
	}
	for date, candidates := range set.CandidatesByDate {
		times := make([]string, 0, len(candidates))
		for _, candidate := range candidates {
			times = append(times, candidate.String())
		}
		response.CandidatesByDate[string(date)] = times
	}

	uc.logger.Info("GetBookingOptions: meeting=%d has %d bookable dates",
		req.MeetingID, len(response.Dates))

	return response, nil
}
