package calendar

import (
	"time"

	"github.com/username/holiday-clock/pkg/dateutil"
)

// Next returns the holiday that occurs next relative to now, including a
// holiday falling on now's own calendar day. On that day the returned date
// is the holiday's midnight, which is earlier than now. Dates are resolved
// in now's location. Ties keep the earliest entry in holidays. Returns false if no
// entry resolves to a date.
func Next(holidays []Holiday, now time.Time) (*Result, bool) {
	loc := now.Location()
	today := dateutil.StartOfDay(now)
	year := now.Year()

	var closest *Result
	for _, h := range holidays {
		target := h.DateIn(year, loc)
		if target.IsZero() || target.Before(today) {
			target = h.DateIn(year+1, loc)
		}
		if target.IsZero() {
			continue
		}

		if closest == nil || target.Before(closest.Date) {
			closest = &Result{Holiday: h, Date: target}
		}
	}

	return closest, closest != nil
}

// InYear resolves every holiday for the given year, in catalog order.
// Holidays that do not occur in that year are omitted.
func InYear(holidays []Holiday, year int, loc *time.Location) []Result {
	results := make([]Result, 0, len(holidays))
	for _, h := range holidays {
		date := h.DateIn(year, loc)
		if date.IsZero() {
			continue
		}
		results = append(results, Result{Holiday: h, Date: date})
	}
	return results
}
