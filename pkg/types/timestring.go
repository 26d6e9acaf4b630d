package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a time of day as an "HH:MM" string.
// It is the wire and storage format for all slot times in the system.
// Values past "23:59" are representable (e.g. "24:30") because slot
// arithmetic may step past midnight; such values never round-trip
// through the database.
type TimeString string

// NewTimeString creates a TimeString from the clock time of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses s as "HH:MM" or "HH:MM:SS".
// A seconds component is truncated.
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 8 {
		s = s[:5]
	}
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" format (hours 00-23, minutes 00-59).
func (t TimeString) Validate() error {
	_, err := t.totalMinutes(false)
	return err
}

// WithSeconds returns the "HH:MM:SS" representation with zero seconds.
func (t TimeString) WithSeconds() string {
	return string(t) + ":00"
}

// Hour returns the hour component, or -1 if the value is malformed.
func (t TimeString) Hour() int {
	m, err := t.totalMinutes(true)
	if err != nil {
		return -1
	}
	return m / 60
}

// Minutes returns the value as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	return t.totalMinutes(true)
}

// IsBefore reports whether t is strictly earlier than other.
// Malformed values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err1 := t.totalMinutes(true)
	b, err2 := other.totalMinutes(true)
	if err1 != nil || err2 != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
// Malformed values compare as not-after.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err1 := t.totalMinutes(true)
	b, err2 := other.totalMinutes(true)
	if err1 != nil || err2 != nil {
		return false
	}
	return a > b
}

// AddMinutes returns a new TimeString shifted forward by m minutes.
// The result may exceed "23:59"; it never wraps around midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.totalMinutes(true)
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 {
		return "", fmt.Errorf("time string %q minus %d minutes is negative", t, -m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as
// "HH:MM:SS"; seconds are truncated.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		ts, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case []byte:
		ts, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t.WithSeconds(), nil
}

// totalMinutes parses the "HH:MM" value into minutes since midnight.
// When extended is true, hours beyond 23 are allowed (slot arithmetic);
// otherwise the value must be a valid clock time.
func (t TimeString) totalMinutes(extended bool) (int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time string format: %q", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %q", t)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %q", t)
	}
	if h < 0 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time string out of range: %q", t)
	}
	if !extended && h > 23 {
		return 0, fmt.Errorf("time string out of range: %q", t)
	}
	return h*60 + m, nil
}
