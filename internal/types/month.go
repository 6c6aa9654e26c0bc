// Package types implements special types for wky-report.
package types

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidMonthRange = errors.New("invalid month range")

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Time returns the first instant of the month.
func (m Month) Time() time.Time {
	return time.Time(m)
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}

// MonthRange is a half-open range of whole months [From, To).
type MonthRange struct {
	From Month
	To   Month
}

// NewMonthRange returns the range from the first day of startMonth up to,
// but not including, the first day of the month after endMonth.
//
// Both months must be between 1 and 12 and startMonth must not be after endMonth.
func NewMonthRange(year, startMonth, endMonth int) (MonthRange, error) {
	if startMonth < 1 || endMonth > 12 || startMonth > endMonth {
		return MonthRange{}, ErrInvalidMonthRange
	}

	from := NewMonth(year, time.Month(startMonth))
	return MonthRange{
		From: from,
		To:   NewMonth(year, time.Month(endMonth)).AddDate(0, 1),
	}, nil
}

// Contains reports whether t falls into the range.
func (r MonthRange) Contains(t time.Time) bool {
	return !t.Before(r.From.Time()) && t.Before(r.To.Time())
}

// String returns the range as "YYYY-MM..YYYY-MM" with an inclusive end month.
func (r MonthRange) String() string {
	return fmt.Sprintf("%s..%s", r.From, r.To.AddDate(0, -1))
}
