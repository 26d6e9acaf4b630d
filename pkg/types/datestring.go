package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// DateString represents a calendar date as a "YYYY-MM-DD" string,
// with no time component.
type DateString string

// NewDateString creates a DateString from the calendar date of t.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString parses s as "YYYY-MM-DD".
func NewDateStringFromString(s string) (DateString, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date string format: %q", s)
	}
	return NewDateString(t), nil
}

// String returns the "YYYY-MM-DD" representation.
func (d DateString) String() string {
	return string(d)
}

// IsZero reports whether the value is empty.
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate checks the "YYYY-MM-DD" format.
func (d DateString) Validate() error {
	_, err := d.Time()
	return err
}

// Time parses the date at midnight UTC.
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date string format: %q", d)
	}
	return t, nil
}

// Weekday returns the day of week, or an error for malformed values.
func (d DateString) Weekday() (time.Weekday, error) {
	t, err := d.Time()
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
// Malformed values report false.
func (d DateString) IsWeekend() bool {
	wd, err := d.Weekday()
	if err != nil {
		return false
	}
	return wd == time.Saturday || wd == time.Sunday
}

// Scan implements sql.Scanner. Postgres DATE columns arrive as
// time.Time through lib/pq.
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = NewDateString(v)
		return nil
	case string:
		ds, err := NewDateStringFromString(v)
		if err != nil {
			return err
		}
		*d = ds
		return nil
	case []byte:
		ds, err := NewDateStringFromString(string(v))
		if err != nil {
			return err
		}
		*d = ds
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateString", src)
	}
}

// Value implements driver.Valuer.
func (d DateString) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	t, err := d.Time()
	if err != nil {
		return nil, err
	}
	return t, nil
}
