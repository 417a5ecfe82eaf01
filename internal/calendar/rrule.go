package calendar

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// unanchoredStart is the DTSTART used for rules without an anchor, so that
// COUNT and UNTIL are counted from a fixed point rather than per year.
var unanchoredStart = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// RRuleDate builds a rule from an RFC 5545 recurrence such as
// "FREQ=YEARLY;BYMONTH=5;BYDAY=2SU". The first occurrence inside the
// requested year is used; years with no occurrence resolve to the zero time.
//
// anchor's date is the DTSTART. If anchor is zero the recurrence starts on
// January 1, 1900, so COUNT limits are only meaningful with an anchor.
func RRuleDate(rule string, anchor time.Time) (RuleFunc, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rrule %q: %w", rule, err)
	}

	opt.Dtstart = unanchoredStart
	if !anchor.IsZero() {
		opt.Dtstart = time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	}

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("invalid rrule %q: %w", rule, err)
	}

	return func(year int, loc *time.Location) time.Time {
		yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		yearEnd := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

		occurrences := r.Between(yearStart, yearEnd, true)
		if len(occurrences) == 0 {
			return time.Time{}
		}
		first := occurrences[0]
		return time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, loc)
	}, nil
}

// OnlyIn returns a rule for a one-off date that occurs in a single year
func OnlyIn(date time.Time) RuleFunc {
	return func(year int, loc *time.Location) time.Time {
		if year != date.Year() {
			return time.Time{}
		}
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	}
}
