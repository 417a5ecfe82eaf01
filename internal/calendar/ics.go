package calendar

import (
	"fmt"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"go.uber.org/zap"
)

// ICSSource imports holidays from a local iCalendar file. Each VEVENT
// becomes a holiday named after its SUMMARY; events with an RRULE repeat,
// all others occur once.
type ICSSource struct {
	filePath string
	logger   *zap.Logger
	holidays []Holiday
}

// NewICSSource creates a new ICSSource instance
func NewICSSource(filePath string, logger *zap.Logger) *ICSSource {
	return &ICSSource{
		filePath: filePath,
		logger:   logger,
	}
}

// Name implements Source
func (s *ICSSource) Name() string {
	return "ics"
}

// Holidays implements Source
func (s *ICSSource) Holidays() []Holiday {
	return s.holidays
}

// Load parses the ICS file
func (s *ICSSource) Load() error {
	file, err := os.Open(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to open ics file: %w", err)
	}
	defer file.Close()

	cal, err := ical.ParseCalendar(file)
	if err != nil {
		return fmt.Errorf("failed to parse ics file: %w", err)
	}

	var holidays []Holiday
	for _, ev := range cal.Events() {
		h, err := holidayFromEvent(ev)
		if err != nil {
			s.logger.Warn("Skipping ics event", zap.Error(err))
			continue
		}
		holidays = append(holidays, h)
	}

	s.holidays = holidays
	s.logger.Info("ICS file loaded",
		zap.String("file", s.filePath),
		zap.Int("holidays", len(holidays)))

	return nil
}

func holidayFromEvent(ev *ical.VEvent) (Holiday, error) {
	var name string
	if p := ev.GetProperty(ical.ComponentPropertySummary); p != nil {
		name = strings.TrimSpace(p.Value)
	}
	if name == "" {
		return Holiday{}, fmt.Errorf("event without SUMMARY")
	}

	start, err := ev.GetAllDayStartAt()
	if err != nil {
		start, err = ev.GetStartAt()
		if err != nil {
			return Holiday{}, fmt.Errorf("event %q: missing DTSTART: %w", name, err)
		}
	}

	greeting := defaultGreeting(name)
	if p := ev.GetProperty(ical.ComponentPropertyDescription); p != nil && strings.TrimSpace(p.Value) != "" {
		greeting = strings.TrimSpace(p.Value)
	}

	var rule RuleFunc
	if p := ev.GetProperty(ical.ComponentPropertyRrule); p != nil && p.Value != "" {
		rule, err = RRuleDate(p.Value, start)
		if err != nil {
			return Holiday{}, fmt.Errorf("event %q: %w", name, err)
		}
	} else {
		rule = OnlyIn(time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC))
	}

	return Holiday{Name: name, When: ComputedDate{rule}, Greeting: greeting}, nil
}
