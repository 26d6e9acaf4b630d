package create_meeting

import (
	"fmt"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
)

// validateRequest проверяет входные данные запроса
// Допустимые значения длительности, шага и горизонта фиксированы
// продуктом; произвольные числа отклоняются
func validateRequest(req *Request) error {
	if req.MeetingName == "" {
		return fmt.Errorf("%w: meeting name is required", ErrInvalidInput)
	}
	if req.UserUID == "" {
		return fmt.Errorf("%w: user uid is required", ErrInvalidInput)
	}

	m := domain.Meeting{
		Location:          domain.MeetingLocation(req.Location),
		EventDuration:     req.EventDuration,
		TimeSlotIncrement: req.TimeSlotIncrement,
		DateRange:         req.DateRange,
	}

	if !m.IsValidLocation() {
		return fmt.Errorf("%w: unsupported location %q", ErrInvalidInput, req.Location)
	}
	if !m.IsValidEventDuration() {
		return fmt.Errorf("%w: unsupported event duration %d", ErrInvalidInput, req.EventDuration)
	}
	if !m.IsValidTimeSlotIncrement() {
		return fmt.Errorf("%w: unsupported time slot increment %d", ErrInvalidInput, req.TimeSlotIncrement)
	}
	if !m.IsValidDateRange() {
		return fmt.Errorf("%w: unsupported date range %d", ErrInvalidInput, req.DateRange)
	}
	if req.ReminderDays < 0 {
		return fmt.Errorf("%w: reminder must not be negative", ErrInvalidInput)
	}

	return nil
}
