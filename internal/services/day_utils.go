package services

import (
	"math"
	"time"
)

// DateAtLocation collapses a timestamp to midnight of its calendar day in
// the given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [start, end) interval covering the
// calendar day of value.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// WholeDaysBetween counts calendar days from one midnight to another.
// Rounding absorbs the 23h/25h days around DST transitions.
func WholeDaysBetween(from time.Time, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// MonthRange parses a YYYY-MM value into the half-open [start, end)
// interval of that calendar month.
func MonthRange(raw string, location *time.Location) (time.Time, time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation("2006-01", raw, location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, location)
	return start, start.AddDate(0, 1, 0), nil
}
