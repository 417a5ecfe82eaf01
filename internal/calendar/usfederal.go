package calendar

import (
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

var usFederalHolidays = []*cal.Holiday{
	us.NewYear,
	us.MlkDay,
	us.PresidentsDay,
	us.MemorialDay,
	us.Juneteenth,
	us.IndependenceDay,
	us.LaborDay,
	us.ColumbusDay,
	us.VeteransDay,
	us.ThanksgivingDay,
	us.ChristmasDay,
}

// federalNames maps rickar/cal names onto the built-in catalog so the
// composite source treats them as the same holiday. Labor Day is renamed
// because the built-in one is May 1.
var federalNames = map[string]string{
	"New Year's Day":   "New Year",
	"Thanksgiving Day": "Thanksgiving (US)",
	"Christmas Day":    "Christmas",
	"Labor Day":        "Labor Day (US)",
}

// FederalName returns the catalog name used for a rickar/cal holiday
func FederalName(h *cal.Holiday) string {
	if name, ok := federalNames[h.Name]; ok {
		return name
	}
	return h.Name
}

// USFederalSource serves US federal holidays computed by rickar/cal
type USFederalSource struct{}

// Name implements Source
func (USFederalSource) Name() string { return "us-federal" }

// Holidays implements Source
func (USFederalSource) Holidays() []Holiday {
	out := make([]Holiday, 0, len(usFederalHolidays))
	for _, h := range usFederalHolidays {
		name := FederalName(h)
		out = append(out, Holiday{
			Name:     name,
			When:     ComputedDate{calRule(h)},
			Emoji:    "🇺🇸",
			Greeting: defaultGreeting(name),
		})
	}
	return out
}

// calRule uses the actual (not observed) date, re-anchored to loc
func calRule(h *cal.Holiday) RuleFunc {
	return func(year int, loc *time.Location) time.Time {
		actual, _ := h.Calc(year)
		if actual.IsZero() {
			return actual
		}
		return time.Date(actual.Year(), actual.Month(), actual.Day(), 0, 0, 0, 0, loc)
	}
}
