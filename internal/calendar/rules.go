package calendar

import "time"

// NthWeekdayOfMonth finds the nth occurrence (1-based) of weekday in month.
// Example: the 4th Thursday of November is NthWeekdayOfMonth(y, time.November, time.Thursday, 4, loc).
// Occurrences past the end of the month roll into the next month.
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int, loc *time.Location) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	delta := (int(weekday) - int(first.Weekday()) + 7) % 7
	return time.Date(year, month, 1+delta+(n-1)*7, 0, 0, 0, 0, loc)
}

// Easter returns Easter Sunday of the Gregorian calendar (Meeus/Jones/Butcher)
func Easter(year int, loc *time.Location) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

// NthWeekday returns a rule for the nth weekday of a month
func NthWeekday(month time.Month, weekday time.Weekday, n int) RuleFunc {
	return func(year int, loc *time.Location) time.Time {
		return NthWeekdayOfMonth(year, month, weekday, n, loc)
	}
}

// Offset shifts the date produced by rule by the given number of calendar days
func Offset(rule RuleFunc, days int) RuleFunc {
	return func(year int, loc *time.Location) time.Time {
		base := rule(year, loc)
		if base.IsZero() {
			return base
		}
		return base.AddDate(0, 0, days)
	}
}
