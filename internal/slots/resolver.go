package slots

import (
	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/types"
)

// Гранулярность проверки времени: виджет выбора сначала резолвит час,
// потом минуты, поэтому предикат поддерживает оба уровня.
const (
	GranularityHour   = "hour"
	GranularityMinute = "minute"
)

// BookableSet результат вычисления доступных для брони слотов:
// множество дат с открытой ёмкостью и упорядоченные варианты начала
// по каждой дате.
type BookableSet struct {
	// Dates даты, у которых есть хотя бы одно окно доступности
	// (даже если оно не дало ни одного кандидата)
	Dates []types.DateString
	// CandidatesByDate упорядоченные "HH:MM"-кандидаты по датам,
	// уже за вычетом занятых броней времён
	CandidatesByDate map[types.DateString][]types.TimeString
}

// ComputeBookableSet строит множество доступных слотов по сохранённым
// окнам доступности встречи, её длительности и списку существующих
// броней.
//
// По каждому окну курсор идёт от начала с шагом eventDurationMinutes и
// эмитит кандидата, пока время курсора строго раньше конца окна. Конец
// самого слота (курсор + длительность) против конца окна НЕ
// проверяется, поэтому последний слот может выходить за границу окна.
// Кандидаты окон одной даты объединяются в порядке генерации без
// дедупликации. Затем из кандидатов каждой даты удаляются времена,
// занятые бронями этой даты (точное совпадение "HH:MM" после
// усечения секунд).
func ComputeBookableSet(windows []domain.AvailabilitySlot, eventDurationMinutes int, booked []domain.GuestMeeting) BookableSet {
	result := BookableSet{
		Dates:            make([]types.DateString, 0, len(windows)),
		CandidatesByDate: make(map[types.DateString][]types.TimeString, len(windows)),
	}
	if eventDurationMinutes <= 0 {
		return result
	}

	for _, window := range windows {
		if _, seen := result.CandidatesByDate[window.Date]; !seen {
			result.Dates = append(result.Dates, window.Date)
			result.CandidatesByDate[window.Date] = []types.TimeString{}
		}
		if window.StartTime == nil || window.EndTime == nil {
			continue
		}

		cursor := *window.StartTime
		for cursor.IsBefore(*window.EndTime) {
			result.CandidatesByDate[window.Date] = append(result.CandidatesByDate[window.Date], cursor)

			next, err := cursor.AddMinutes(eventDurationMinutes)
			if err != nil {
				break
			}
			cursor = next
		}
	}

	for _, booking := range booked {
		bookedTime, err := types.NewTimeStringFromString(string(booking.BookedTime))
		if err != nil {
			continue
		}

		candidates, ok := result.CandidatesByDate[booking.BookedDate]
		if !ok {
			continue
		}
		filtered := candidates[:0]
		for _, candidate := range candidates {
			if candidate != bookedTime {
				filtered = append(filtered, candidate)
			}
		}
		result.CandidatesByDate[booking.BookedDate] = filtered
	}

	return result
}

// IsDateDisabled сообщает, нужно ли блокировать дату в календаре:
// дата блокируется, если у неё нет ни одного окна доступности.
func (s BookableSet) IsDateDisabled(date types.DateString) bool {
	for _, d := range s.Dates {
		if d == date {
			return false
		}
	}
	return true
}

// IsTimeDisabled сообщает, нужно ли блокировать вариант времени для
// даты. На гранулярности hour вариант открыт, если хоть один кандидат
// даты попадает в тот же час; на minute — только при точном совпадении
// "HH:MM". Для даты без кандидатов любое время заблокировано;
// неизвестная гранулярность ничего не блокирует.
func (s BookableSet) IsTimeDisabled(date types.DateString, t types.TimeString, granularity string) bool {
	candidates, ok := s.CandidatesByDate[date]
	if !ok {
		return true
	}

	switch granularity {
	case GranularityHour:
		hour := t.Hour()
		for _, candidate := range candidates {
			if candidate.Hour() == hour {
				return false
			}
		}
		return true
	case GranularityMinute:
		for _, candidate := range candidates {
			if candidate == t {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ValidateChoice повторно проверяет выбранную гостем пару дата/время
// перед созданием брони. Проверка обязана выполняться на сабмите даже
// после отработавших предикатов виджета: между загрузкой слотов и
// отправкой формы их могла занять другая бронь.
func (s BookableSet) ValidateChoice(date types.DateString, t types.TimeString) error {
	if s.IsTimeDisabled(date, t, GranularityMinute) {
		return ErrSlotUnavailable
	}
	return nil
}
