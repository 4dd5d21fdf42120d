package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the wire and storage format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time component.
//
// It wraps time.Time normalised to midnight UTC and supports JSON
// (de)serialization in "YYYY-MM-DD" form as well as database scanning and
// binding, so the same type can travel from the HTTP boundary down to the
// "date" column of the clients table.
type Date struct {
	time.Time
}

// NewDate constructs a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day (in UTC) and returns it as a Date.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// DaysUntil returns the whole number of calendar days from d until other.
// The result is negative when other lies in the past relative to d.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time) / (24 * time.Hour))
}

// String returns the date in "YYYY-MM-DD" form.
func (d Date) String() string {
	return d.Time.Format(dateLayout)
}

// MarshalJSON serializes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parses a "YYYY-MM-DD" JSON string into the date.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("error parsing date %q: %w", s, err)
	}

	d.Time = t
	return nil
}

// Scan implements [database/sql.Scanner]. It accepts time.Time values as
// produced by date columns, plus string/[]byte fallbacks for drivers that
// return dates textually.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into models.Date", src)
	}
}

func (d *Date) scanString(s string) error {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("error scanning date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Value implements [database/sql/driver.Valuer].
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}
