package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chungmangjie200/ZCal-MeetingService/internal/domain"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/ptr"
	"github.com/chungmangjie200/ZCal-MeetingService/pkg/types"
)

func window(date, start, end string) domain.AvailabilitySlot {
	s := types.TimeString(start)
	e := types.TimeString(end)
	return domain.AvailabilitySlot{
		ID:        ptr.Ptr(int64(1)),
		Date:      types.DateString(date),
		StartTime: &s,
		EndTime:   &e,
	}
}

func booking(date, bookedTime string) domain.GuestMeeting {
	return domain.GuestMeeting{
		MeetingID:  1,
		Name:       "Guest",
		Email:      "guest@example.com",
		BookedDate: types.DateString(date),
		BookedTime: types.TimeString(bookedTime),
	}
}

func TestComputeBookableSetNoBookings(t *testing.T) {
	set := ComputeBookableSet(
		[]domain.AvailabilitySlot{window("2023-08-23", "09:00", "10:00")},
		30,
		nil,
	)

	require.Equal(t, []types.DateString{"2023-08-23"}, set.Dates)
	assert.Equal(t,
		[]types.TimeString{"09:00", "09:30"},
		set.CandidatesByDate["2023-08-23"],
	)
}

func TestComputeBookableSetExcludesBooked(t *testing.T) {
	set := ComputeBookableSet(
		[]domain.AvailabilitySlot{window("2023-08-23", "09:00", "10:00")},
		30,
		[]domain.GuestMeeting{booking("2023-08-23", "09:00:00")},
	)

	assert.Equal(t,
		[]types.TimeString{"09:30"},
		set.CandidatesByDate["2023-08-23"],
	)
}

// Конец слота не сверяется с концом окна: последний кандидат может
// начинаться впритык к концу.
func TestComputeBookableSetSlotMayRunPastWindowEnd(t *testing.T) {
	set := ComputeBookableSet(
		[]domain.AvailabilitySlot{window("2023-08-23", "09:00", "10:30")},
		60,
		nil,
	)

	// слот 10:00-11:00 выходит за 10:30, но 10:00 < 10:30
	assert.Equal(t,
		[]types.TimeString{"09:00", "10:00"},
		set.CandidatesByDate["2023-08-23"],
	)
}

func TestComputeBookableSetUnionsWindowsOfSameDate(t *testing.T) {
	set := ComputeBookableSet(
		[]domain.AvailabilitySlot{
			window("2023-08-23", "09:00", "10:00"),
			window("2023-08-23", "14:00", "15:00"),
		},
		30,
		nil,
	)

	require.Len(t, set.Dates, 1)
	assert.Equal(t,
		[]types.TimeString{"09:00", "09:30", "14:00", "14:30"},
		set.CandidatesByDate["2023-08-23"],
	)
}

func TestComputeBookableSetKeepsDuplicateCandidates(t *testing.T) {
	set := ComputeBookableSet(
		[]domain.AvailabilitySlot{
			window("2023-08-23", "09:00", "09:30"),
			window("2023-08-23", "09:00", "09:30"),
		},
		30,
		nil,
	)

	assert.Equal(t,
		[]types.TimeString{"09:00", "09:00"},
		set.CandidatesByDate["2023-08-23"],
	)
}

func TestComputeBookableSetDateWithZeroCandidatesStaysBookable(t *testing.T) {
	// окно слишком короткое для часового слота всё равно регистрирует дату
	set := ComputeBookableSet(
		[]domain.AvailabilitySlot{window("2023-08-23", "09:00", "09:00")},
		60,
		nil,
	)

	assert.Equal(t, []types.DateString{"2023-08-23"}, set.Dates)
	assert.Empty(t, set.CandidatesByDate["2023-08-23"])
	assert.False(t, set.IsDateDisabled("2023-08-23"))
}

func TestComputeBookableSetBookingForOtherDateIgnored(t *testing.T) {
	set := ComputeBookableSet(
		[]domain.AvailabilitySlot{window("2023-08-23", "09:00", "10:00")},
		30,
		[]domain.GuestMeeting{booking("2023-08-24", "09:00:00")},
	)

	assert.Equal(t,
		[]types.TimeString{"09:00", "09:30"},
		set.CandidatesByDate["2023-08-23"],
	)
}

func TestIsDateDisabled(t *testing.T) {
	set := ComputeBookableSet(
		[]domain.AvailabilitySlot{window("2023-08-23", "09:00", "10:00")},
		30,
		nil,
	)

	assert.False(t, set.IsDateDisabled("2023-08-23"))
	assert.True(t, set.IsDateDisabled("2023-08-24"))
}

func TestIsTimeDisabled(t *testing.T) {
	set := ComputeBookableSet(
		[]domain.AvailabilitySlot{window("2023-08-23", "09:00", "10:00")},
		30,
		nil,
	)

	t.Run("hour granularity", func(t *testing.T) {
		assert.False(t, set.IsTimeDisabled("2023-08-23", "09:15", GranularityHour))
		assert.True(t, set.IsTimeDisabled("2023-08-23", "10:00", GranularityHour))
	})

	t.Run("minute granularity", func(t *testing.T) {
		assert.False(t, set.IsTimeDisabled("2023-08-23", "09:30", GranularityMinute))
		assert.True(t, set.IsTimeDisabled("2023-08-23", "09:15", GranularityMinute))
	})

	t.Run("unknown date disables everything", func(t *testing.T) {
		assert.True(t, set.IsTimeDisabled("2023-08-24", "09:00", GranularityHour))
		assert.True(t, set.IsTimeDisabled("2023-08-24", "09:00", GranularityMinute))
	})

	t.Run("unknown granularity disables nothing", func(t *testing.T) {
		assert.False(t, set.IsTimeDisabled("2023-08-23", "03:00", "second"))
	})
}

func TestValidateChoice(t *testing.T) {
	set := ComputeBookableSet(
		[]domain.AvailabilitySlot{window("2023-08-23", "09:00", "10:00")},
		30,
		[]domain.GuestMeeting{booking("2023-08-23", "09:00:00")},
	)

	assert.NoError(t, set.ValidateChoice("2023-08-23", "09:30"))
	assert.ErrorIs(t, set.ValidateChoice("2023-08-23", "09:00"), ErrSlotUnavailable)
	assert.ErrorIs(t, set.ValidateChoice("2023-08-24", "09:30"), ErrSlotUnavailable)
}
