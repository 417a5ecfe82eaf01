package calendar

import "time"

// RuleFunc computes a holiday's date for the given year in loc.
// A zero time means the holiday does not occur in that year.
type RuleFunc func(year int, loc *time.Location) time.Time

// DateRule is either a FixedDate or a ComputedDate
type DateRule interface {
	dateIn(year int, loc *time.Location) time.Time
}

// FixedDate is a holiday on the same calendar day every year
type FixedDate struct {
	Month time.Month
	Day   int
}

func (f FixedDate) dateIn(year int, loc *time.Location) time.Time {
	return time.Date(year, f.Month, f.Day, 0, 0, 0, 0, loc)
}

// ComputedDate is a holiday whose date is derived from the year
type ComputedDate struct {
	Rule RuleFunc
}

func (c ComputedDate) dateIn(year int, loc *time.Location) time.Time {
	return c.Rule(year, loc)
}

// Holiday represents a named holiday entry
type Holiday struct {
	Name     string
	When     DateRule
	Emoji    string
	Greeting string
}

// DateIn resolves the holiday for the given year using local wall-clock dates
func (h Holiday) DateIn(year int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return h.When.dateIn(year, loc)
}

// Result is a holiday resolved to a concrete date
type Result struct {
	Holiday
	Date time.Time
}

// Source provides holidays for the clock
type Source interface {
	// Name identifies the source in logs
	Name() string

	// Holidays returns the holidays of this source in lookup order
	Holidays() []Holiday
}
