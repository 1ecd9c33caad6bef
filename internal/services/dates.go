package services

import (
	"errors"
	"time"
)

const (
	dateKeyLayout  = "2006-01-02"
	monthKeyLayout = "2006-01"
)

var (
	ErrInvalidDateKey  = errors.New("invalid date key")
	ErrInvalidMonthKey = errors.New("invalid month key")
)

// DateKey renders the canonical YYYY-MM-DD key for a calendar day. Two
// moments on the same local calendar day produce the same key.
func DateKey(value time.Time) string {
	return value.Format(dateKeyLayout)
}

// ParseDateKey parses a canonical date key into a midnight UTC date.
func ParseDateKey(key string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dateKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDateKey
	}
	return parsed, nil
}

// MonthKey renders the YYYY-MM key of the month containing the given day.
func MonthKey(value time.Time) string {
	return value.Format(monthKeyLayout)
}

// ParseMonthKey parses a YYYY-MM key into the first day of that month.
func ParseMonthKey(key string) (time.Time, error) {
	parsed, err := time.ParseInLocation(monthKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidMonthKey
	}
	return parsed, nil
}

func AddDays(value time.Time, days int) time.Time {
	return value.AddDate(0, 0, days)
}

func SameDay(a time.Time, b time.Time) bool {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()
	return aYear == bYear && aMonth == bMonth && aDay == bDay
}

// DayBefore reports whether a falls on an earlier calendar day than b,
// ignoring the time component.
func DayBefore(a time.Time, b time.Time) bool {
	return DateKey(a) < DateKey(b)
}

// IsFutureDay reports whether the given day lies strictly after today.
func IsFutureDay(day time.Time, today time.Time) bool {
	return DayBefore(today, day) && !SameDay(day, today)
}

// DateAtLocation truncates a moment to midnight of its calendar day in the
// given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DaysInMonth returns the number of calendar days in the month containing the
// given day.
func DaysInMonth(value time.Time) int {
	firstOfMonth := time.Date(value.Year(), value.Month(), 1, 0, 0, 0, 0, value.Location())
	return firstOfMonth.AddDate(0, 1, -1).Day()
}
