// Package types implements special types for BudgetPilot.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day. The time of day is always midnight UTC so that
// subtracting two Dates yields a whole number of days.
type Date time.Time

// NewDate returns a new Date. Day values outside the valid range for the
// month are clamped, not rejected: day 31 in April becomes April 30.
func NewDate(year int, month time.Month, day int) Date {
	if day < 1 {
		day = 1
	}

	if last := DaysInMonth(year, month); day > last {
		day = last
	}

	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a string in RFC3339 full-date format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	year, month, day := time.Time(d).Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both full dates ("2006-01-02") and RFC3339 timestamps are accepted,
// everything but the calendar day is ignored.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := "2006-01-02"
	if strings.Contains(value, "T") {
		pattern = time.RFC3339
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// Scan reads the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*d = DateOf(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Year returns the year of the date.
func (d Date) Year() int {
	return time.Time(d).Year()
}

// Month returns the month of the date.
func (d Date) Month() time.Month {
	return time.Time(d).Month()
}

// Day returns the day of the month.
func (d Date) Day() int {
	return time.Time(d).Day()
}

// AddDate adds a specified amount of years, months and days.
func (d Date) AddDate(years, months, days int) Date {
	return Date(time.Time(d).AddDate(years, months, days))
}

// Before reports whether the date d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the date d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// DaysUntil returns the number of whole days from d to e.
// The result is negative when e is before d.
func (d Date) DaysUntil(e Date) int {
	return int(time.Time(e).Sub(time.Time(d)).Hours() / 24)
}
