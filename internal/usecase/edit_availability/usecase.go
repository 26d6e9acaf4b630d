package edit_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/availability"
)

// UseCase use case правки сессии редактирования доступности
// Чистый переход состояния: без хранилища и без чтения часов
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute выполняет одну правку поля окна
//   - start_time: проверяется порядок против конца окна, затем значение
//     применяется; при нарушении порядка возвращается ErrInvalidOrdering
//     и клиент оставляет прежнее состояние;
//   - end_time: применяется без проверки порядка;
//   - repeats: аннотация запоминается на окне, и его времена
//     распространяются на другие даты согласно правилу.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditAvailability: dateIdx=%d, slotIdx=%d, field=%s, value=%q",
		req.DateIdx, req.SlotIdx, req.Field, req.Value)

	// 1. Проверяем индексы
	if req.DateIdx < 0 || req.DateIdx >= len(req.Entries) {
		uc.logger.Warn("EditAvailability: date index %d out of range", req.DateIdx)
		return nil, fmt.Errorf("%w: date index out of range", ErrInvalidInput)
	}
	entry := req.Entries[req.DateIdx]
	if req.SlotIdx < 0 || req.SlotIdx >= len(entry.Slots) {
		uc.logger.Warn("EditAvailability: slot index %d out of range for date %s", req.SlotIdx, entry.Date)
		return nil, fmt.Errorf("%w: slot index out of range", ErrInvalidInput)
	}

	window := entry.Slots[req.SlotIdx]

	// 2. Применяем правку
	switch req.Field {
	case availability.FieldStartTime, availability.FieldEndTime:
		if err := availability.ValidateWindowEdit(window, req.Field, req.Value); err != nil {
			if errors.Is(err, availability.ErrInvalidOrdering) {
				uc.logger.Warn("EditAvailability: ordering violation on %s for date %s: %q >= end %q",
					req.Field, entry.Date, req.Value, window.EndTime)
				return nil, ErrInvalidOrdering
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		result := copyEntries(req.Entries)
		if req.Field == availability.FieldStartTime {
			result[req.DateIdx].Slots[req.SlotIdx].StartTime = req.Value
		} else {
			result[req.DateIdx].Slots[req.SlotIdx].EndTime = req.Value
		}
		return &Response{Entries: result}, nil

	case availability.FieldRepeats:
		// ApplyRepeat работает на глубокой копии; аннотацию ставим на
		// уже скопированном окне
		result := availability.ApplyRepeat(req.Entries, req.DateIdx, req.SlotIdx, req.Value)
		result[req.DateIdx].Slots[req.SlotIdx].Repeats = req.Value
		return &Response{Entries: result}, nil

	default:
		uc.logger.Warn("EditAvailability: unknown field %q", req.Field)
		return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidInput, req.Field)
	}
}

// copyEntries глубокая копия сессии: вход никогда не мутируется
func copyEntries(entries []availability.DateEntry) []availability.DateEntry {
	result := make([]availability.DateEntry, len(entries))
	for i, entry := range entries {
		slots := make([]availability.Window, len(entry.Slots))
		copy(slots, entry.Slots)
		result[i] = availability.DateEntry{Date: entry.Date, Slots: slots}
	}
	return result
}
