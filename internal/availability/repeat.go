package availability

import "github.com/chungmangjie200/ZCal-MeetingService/pkg/types"

// Правила повторения окна в сессии редактирования
const (
	RepeatOnly     = "only"     // только эта дата
	RepeatDaily    = "daily"    // каждый такой же день недели в диапазоне
	RepeatWeekdays = "weekdays" // каждый будний день в диапазоне
)

// ApplyRepeat распространяет начало/конец редактируемого окна на другие
// даты согласно правилу:
//   - daily: все даты с тем же днём недели, что у редактируемой даты;
//   - weekdays: все даты кроме субботы и воскресенья;
//   - любое другое значение (включая "only" и пустое): без изменений.
//
// У затронутых дат перезаписываются начало/конец ВСЕХ окон, но их
// собственные аннотации repeats не трогаются. Входной список не
// мутируется — возвращается глубокая копия, чтобы прежнее состояние
// оставалось восстановимым.
func ApplyRepeat(entries []DateEntry, dateIdx, slotIdx int, rule string) []DateEntry {
	result := deepCopy(entries)

	if dateIdx < 0 || dateIdx >= len(result) {
		return result
	}
	if slotIdx < 0 || slotIdx >= len(result[dateIdx].Slots) {
		return result
	}

	edited := result[dateIdx].Slots[slotIdx]
	editedWeekday, err := types.DateString(result[dateIdx].Date).Weekday()
	if err != nil {
		return result
	}

	switch rule {
	case RepeatDaily:
		for i := range result {
			weekday, err := types.DateString(result[i].Date).Weekday()
			if err != nil || weekday != editedWeekday {
				continue
			}
			overwriteTimes(result[i].Slots, edited.StartTime, edited.EndTime)
		}
	case RepeatWeekdays:
		for i := range result {
			if types.DateString(result[i].Date).IsWeekend() {
				continue
			}
			overwriteTimes(result[i].Slots, edited.StartTime, edited.EndTime)
		}
	}

	return result
}

// overwriteTimes перезаписывает только начало/конец окон, сохраняя их
// идентификаторы и аннотации repeats
func overwriteTimes(slots []Window, start, end string) {
	for i := range slots {
		slots[i].StartTime = start
		slots[i].EndTime = end
	}
}

func deepCopy(entries []DateEntry) []DateEntry {
	result := make([]DateEntry, len(entries))
	for i, entry := range entries {
		slots := make([]Window, len(entry.Slots))
		copy(slots, entry.Slots)
		result[i] = DateEntry{Date: entry.Date, Slots: slots}
	}
	return result
}
