package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/ptr"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/types"
)

func TestSynthesizeDefaultWindows(t *testing.T) {
	// 2023-08-23 is a Wednesday
	reference := time.Date(2023, 8, 23, 0, 0, 0, 0, time.UTC)

	for _, horizon := range []int{3, 7, 30} {
		entries := SynthesizeDefaultWindows(reference, horizon)
		require.Len(t, entries, horizon+1, "horizon %d", horizon)

		for i, entry := range entries {
			expectedDate := reference.AddDate(0, 0, i)
			assert.Equal(t, expectedDate.Format(domain.DateFormat), entry.Date)
			require.Len(t, entry.Slots, 1)

			slot := entry.Slots[0]
			if types.DateString(entry.Date).IsWeekend() {
				assert.Empty(t, slot.StartTime, "weekend %s", entry.Date)
				assert.Empty(t, slot.EndTime, "weekend %s", entry.Date)
			} else {
				assert.Equal(t, "09:00", slot.StartTime, "weekday %s", entry.Date)
				assert.Equal(t, "17:00", slot.EndTime, "weekday %s", entry.Date)
			}
			assert.Empty(t, slot.Repeats)
		}
	}
}

func TestSynthesizeDefaultWindowsConsecutiveDays(t *testing.T) {
	reference := time.Date(2023, 12, 28, 0, 0, 0, 0, time.UTC) // crosses a year boundary

	entries := SynthesizeDefaultWindows(reference, 7)
	require.Len(t, entries, 8)

	for i := 1; i < len(entries); i++ {
		prev, err := types.DateString(entries[i-1].Date).Time()
		require.NoError(t, err)
		cur, err := types.DateString(entries[i].Date).Time()
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, cur.Sub(prev), "entries %d and %d", i-1, i)
	}
}

func TestReconstructFromPersisted(t *testing.T) {
	records := []domain.AvailabilitySlot{
		slotRecord(1, "2023-08-23", "09:00", "12:00"),
		slotRecord(2, "2023-08-24", "10:00", "11:00"),
		slotRecord(3, "2023-08-23", "14:00", "17:00"),
	}

	entries := ReconstructFromPersisted(records)
	require.Len(t, entries, 2)

	// Dates keep first-occurrence order, windows keep arrival order.
	assert.Equal(t, "2023-08-23", entries[0].Date)
	require.Len(t, entries[0].Slots, 2)
	assert.Equal(t, "09:00", entries[0].Slots[0].StartTime)
	assert.Equal(t, "14:00", entries[0].Slots[1].StartTime)
	assert.Equal(t, ptr.Ptr(int64(1)), entries[0].Slots[0].ID)
	assert.Equal(t, ptr.Ptr(int64(3)), entries[0].Slots[1].ID)

	assert.Equal(t, "2023-08-24", entries[1].Date)
	require.Len(t, entries[1].Slots, 1)

	// Repeat annotations are never inferred from persisted data.
	for _, entry := range entries {
		for _, slot := range entry.Slots {
			assert.Empty(t, slot.Repeats)
		}
	}
}

func TestFlattenDropsBlankWindowsAndRepeats(t *testing.T) {
	entries := []DateEntry{
		{Date: "2023-08-23", Slots: []Window{
			{StartTime: "09:00", EndTime: "12:00", Repeats: "daily"},
			{StartTime: "", EndTime: ""},
		}},
		{Date: "2023-08-26", Slots: []Window{
			{StartTime: "10:00", EndTime: ""},
		}},
	}

	records := FlattenForPersistence(entries)
	require.Len(t, records, 1)
	assert.Equal(t, types.DateString("2023-08-23"), records[0].Date)
	assert.Equal(t, types.TimeString("09:00"), *records[0].StartTime)
	assert.Equal(t, types.TimeString("12:00"), *records[0].EndTime)
}

func TestFlattenReconstructRoundTrip(t *testing.T) {
	original := []DateEntry{
		{Date: "2023-08-23", Slots: []Window{
			{StartTime: "09:00", EndTime: "12:00"},
			{StartTime: "14:00", EndTime: "17:00"},
		}},
		{Date: "2023-08-24", Slots: []Window{
			{StartTime: "10:00", EndTime: "11:30"},
		}},
	}

	once := FlattenForPersistence(original)
	twice := FlattenForPersistence(ReconstructFromPersisted(once))

	require.Equal(t, len(once), len(twice))
	for i := range once {
		assert.Equal(t, once[i].Date, twice[i].Date)
		assert.Equal(t, *once[i].StartTime, *twice[i].StartTime)
		assert.Equal(t, *once[i].EndTime, *twice[i].EndTime)
	}
}

func slotRecord(id int64, date, start, end string) domain.AvailabilitySlot {
	s := types.TimeString(start)
	e := types.TimeString(end)
	return domain.AvailabilitySlot{
		ID:        ptr.Ptr(id),
		Date:      types.DateString(date),
		StartTime: &s,
		EndTime:   &e,
	}
}
