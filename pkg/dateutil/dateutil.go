package dateutil

import (
	"math"
	"time"
)

const week = 7 * 24 * time.Hour

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// DaysBetween returns the number of calendar days from one date to another,
// ignoring time of day. Wall-clock dates are compared, so DST transitions
// never shorten a day.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Floor(b.Sub(a).Hours() / 24))
}

// DayOfYear returns the day number within the year (January 1 = 1)
func DayOfYear(date time.Time) int {
	// Day 0 of January normalizes to December 31 of the previous year.
	dec31 := time.Date(date.Year(), time.January, 0, 0, 0, 0, 0, date.Location())
	return DaysBetween(dec31, date)
}

// ISOWeek returns the ISO-8601 week number (1..53) for the given date.
// The date is moved to the Thursday of its week; the week number is then
// counted from the week holding January 4 of that Thursday's year.
func ISOWeek(date time.Time) int {
	tmp := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayNum := (int(tmp.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	tmp = tmp.AddDate(0, 0, 3-dayNum)

	firstThursday := time.Date(tmp.Year(), time.January, 4, 0, 0, 0, 0, time.UTC)
	diff := tmp.Sub(firstThursday)
	return 1 + int(math.Round(float64(diff)/float64(week)))
}

// ParseDate parses date string in various formats, in the local timezone
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04",
		"2006-01-02T15:04:05Z07:00",
	}

	var lastErr error
	for _, format := range formats {
		t, err := time.ParseInLocation(format, dateStr, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
