package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeString
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "09:00:00", want: "09:00"},
		{in: "23:59", want: "23:59"},
		{in: "00:00", want: "00:00"},
		{in: " 10:30 ", want: "10:30"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "9:00", wantErr: true},
		{in: "not-a-time", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, c := range cases {
		got, err := NewTimeStringFromString(c.in)
		if c.wantErr {
			assert.Error(t, err, "input %q", c.in)
			continue
		}
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got)
	}
}

func TestTimeStringAddMinutes(t *testing.T) {
	cases := []struct {
		in   TimeString
		add  int
		want TimeString
	}{
		{in: "09:00", add: 30, want: "09:30"},
		{in: "09:45", add: 30, want: "10:15"},
		{in: "23:30", add: 60, want: "24:30"},
		{in: "00:00", add: 0, want: "00:00"},
		{in: "10:00", add: -15, want: "09:45"},
	}

	for _, c := range cases {
		got, err := c.in.AddMinutes(c.add)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	_, err := TimeString("00:10").AddMinutes(-30)
	assert.Error(t, err)
}

func TestTimeStringComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))

	// Values past midnight stay comparable.
	assert.True(t, TimeString("24:30").IsAfter("23:45"))

	// Malformed values never compare as before/after.
	assert.False(t, TimeString("bogus").IsBefore("09:00"))
	assert.False(t, TimeString("bogus").IsAfter("09:00"))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:35:00"))
	assert.Equal(t, TimeString("14:35"), ts)

	require.NoError(t, ts.Scan([]byte("09:05:59")))
	assert.Equal(t, TimeString("09:05"), ts)

	require.NoError(t, ts.Scan(time.Date(2023, 8, 23, 10, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("10:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestDateString(t *testing.T) {
	d, err := NewDateStringFromString("2023-08-26")
	require.NoError(t, err)
	assert.True(t, d.IsWeekend()) // Saturday

	d, err = NewDateStringFromString("2023-08-23")
	require.NoError(t, err)
	assert.False(t, d.IsWeekend()) // Wednesday

	wd, err := d.Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, wd)

	_, err = NewDateStringFromString("23-08-2023")
	assert.Error(t, err)
}
