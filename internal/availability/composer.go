package availability

import (
	"time"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/types"
)

// Имена редактируемых полей окна
const (
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldRepeats   = "repeats"
)

// Window редактируемое окно доступности внутри одной даты.
// Времена хранятся строками "HH:MM"; пустая строка означает,
// что окно не заполнено. Repeats — транзиентная аннотация сессии
// редактирования, никогда не сохраняется.
type Window struct {
	ID        *int64 `json:"id,omitempty"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Repeats   string `json:"repeats"`
}

// DateEntry все окна одной даты в сессии редактирования
type DateEntry struct {
	Date  string   `json:"date"`
	Slots []Window `json:"slots"`
}

// SynthesizeDefaultWindows генерирует дефолтные окна для каждой даты
// из диапазона [referenceDate, referenceDate+horizonDays] включительно:
// будни 09:00-17:00, выходные пустые. Чистая функция — текущую дату
// передаёт вызывающий, внутри часы не читаются.
func SynthesizeDefaultWindows(referenceDate time.Time, horizonDays int) []DateEntry {
	entries := make([]DateEntry, 0, horizonDays+1)

	for i := 0; i <= horizonDays; i++ {
		date := referenceDate.AddDate(0, 0, i)
		ds := types.NewDateString(date)

		w := Window{}
		if !ds.IsWeekend() {
			w.StartTime = domain.DefaultWindowStart
			w.EndTime = domain.DefaultWindowEnd
		}

		entries = append(entries, DateEntry{
			Date:  ds.String(),
			Slots: []Window{w},
		})
	}

	return entries
}

// ReconstructFromPersisted восстанавливает редактируемое состояние из
// сохранённых записей: группировка по точному совпадению строки даты,
// порядок дат — по первому вхождению, порядок окон внутри даты — как
// получены (без пересортировки по времени). Аннотация repeats всегда
// сбрасывается — она не сохраняется и не выводится.
func ReconstructFromPersisted(records []domain.AvailabilitySlot) []DateEntry {
	entries := make([]DateEntry, 0)
	indexByDate := make(map[string]int)

	for _, rec := range records {
		date := rec.Date.String()

		w := Window{ID: rec.ID, Repeats: ""}
		if rec.StartTime != nil {
			w.StartTime = rec.StartTime.String()
		}
		if rec.EndTime != nil {
			w.EndTime = rec.EndTime.String()
		}

		idx, ok := indexByDate[date]
		if !ok {
			indexByDate[date] = len(entries)
			entries = append(entries, DateEntry{Date: date, Slots: []Window{w}})
			continue
		}
		entries[idx].Slots = append(entries[idx].Slots, w)
	}

	return entries
}

// FlattenForPersistence готовит плоский список записей для сохранения:
// окна с незаполненным началом или концом отбрасываются, аннотация
// repeats не переносится. Это ровно та форма, которая уходит в
// хранилище.
func FlattenForPersistence(entries []DateEntry) []domain.AvailabilitySlot {
	records := make([]domain.AvailabilitySlot, 0)

	for _, entry := range entries {
		for _, slot := range entry.Slots {
			if slot.StartTime == "" || slot.EndTime == "" {
				continue
			}

			start := types.TimeString(slot.StartTime)
			end := types.TimeString(slot.EndTime)

			records = append(records, domain.AvailabilitySlot{
				ID:        slot.ID,
				Date:      types.DateString(entry.Date),
				StartTime: &start,
				EndTime:   &end,
			})
		}
	}

	return records
}
