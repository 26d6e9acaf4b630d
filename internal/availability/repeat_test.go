package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Восемь дней со среды 2023-08-23 по среду 2023-08-30: содержит оба
// выходных и две среды, что удобно для проверки daily.
func weekEntries(t *testing.T) []DateEntry {
	t.Helper()
	reference := time.Date(2023, 8, 23, 0, 0, 0, 0, time.UTC)
	entries := SynthesizeDefaultWindows(reference, 7)
	require.Len(t, entries, 8)
	return entries
}

func TestApplyRepeatDaily(t *testing.T) {
	entries := weekEntries(t)

	// правим среду 2023-08-23 и распространяем на все среды
	entries[0].Slots[0].StartTime = "10:00"
	entries[0].Slots[0].EndTime = "15:00"

	result := ApplyRepeat(entries, 0, 0, RepeatDaily)

	// 2023-08-30 — следующая среда, индекс 7
	assert.Equal(t, "10:00", result[7].Slots[0].StartTime)
	assert.Equal(t, "15:00", result[7].Slots[0].EndTime)

	// четверг 2023-08-24 не затронут
	assert.Equal(t, "09:00", result[1].Slots[0].StartTime)

	// исходный список не мутирован
	assert.Equal(t, "09:00", entries[7].Slots[0].StartTime)
}

func TestApplyRepeatWeekdays(t *testing.T) {
	entries := weekEntries(t)
	entries[2].Slots[0].StartTime = "08:00"
	entries[2].Slots[0].EndTime = "12:00"

	result := ApplyRepeat(entries, 2, 0, RepeatWeekdays)

	for _, entry := range result {
		weekday, err := parseWeekday(entry.Date)
		require.NoError(t, err)
		if weekday == time.Saturday || weekday == time.Sunday {
			// выходные остаются пустыми
			assert.Empty(t, entry.Slots[0].StartTime, entry.Date)
			assert.Empty(t, entry.Slots[0].EndTime, entry.Date)
		} else {
			assert.Equal(t, "08:00", entry.Slots[0].StartTime, entry.Date)
			assert.Equal(t, "12:00", entry.Slots[0].EndTime, entry.Date)
		}
	}
}

func TestApplyRepeatOnlyAndUnknownRuleNoop(t *testing.T) {
	entries := weekEntries(t)
	entries[0].Slots[0].StartTime = "10:00"

	for _, rule := range []string{RepeatOnly, "", "monthly"} {
		result := ApplyRepeat(entries, 0, 0, rule)
		assert.Equal(t, entries, result, "rule %q", rule)
	}
}

func TestApplyRepeatPreservesAnnotationsAndIDs(t *testing.T) {
	entries := weekEntries(t)
	entries[1].Slots[0].Repeats = RepeatWeekdays
	entries[0].Slots[0].StartTime = "10:00"
	entries[0].Slots[0].EndTime = "15:00"

	result := ApplyRepeat(entries, 0, 0, RepeatWeekdays)

	// у четверга перезаписаны времена, но его собственная аннотация цела
	assert.Equal(t, "10:00", result[1].Slots[0].StartTime)
	assert.Equal(t, RepeatWeekdays, result[1].Slots[0].Repeats)
}

func TestApplyRepeatOutOfRangeIndexes(t *testing.T) {
	entries := weekEntries(t)

	for _, tc := range []struct{ dateIdx, slotIdx int }{
		{-1, 0},
		{len(entries), 0},
		{0, -1},
		{0, len(entries[0].Slots)},
	} {
		result := ApplyRepeat(entries, tc.dateIdx, tc.slotIdx, RepeatDaily)
		assert.Equal(t, entries, result, "indexes %d/%d", tc.dateIdx, tc.slotIdx)
	}
}

func parseWeekday(date string) (time.Weekday, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}
