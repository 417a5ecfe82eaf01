package calendar

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// fileEntry is one holiday in the YAML file. Exactly one of Date, RRule
// or EasterOffset must be set.
//
//	holidays:
//	  - name: Company Day
//	    date: "06-15"            # every year; "2026-06-15" for a one-off
//	    emoji: "🏢"
//	    greeting: Happy Company Day!
//	  - name: Mothering Sunday
//	    easter_offset: -21
//	  - name: Memorial Day
//	    rrule: FREQ=YEARLY;BYMONTH=5;BYDAY=-1MO
//	  - name: Jubilee Week
//	    rrule: FREQ=YEARLY;COUNT=3;BYMONTH=6;BYDAY=1MO
//	    start: "2025-01-01"    # DTSTART for COUNT and UNTIL
type fileEntry struct {
	Name         string `yaml:"name"`
	Date         string `yaml:"date"`
	RRule        string `yaml:"rrule"`
	Start        string `yaml:"start"`
	EasterOffset *int   `yaml:"easter_offset"`
	Emoji        string `yaml:"emoji"`
	Greeting     string `yaml:"greeting"`
}

type fileDocument struct {
	Holidays []fileEntry `yaml:"holidays"`
}

// FileSource loads user-defined holidays from a YAML file
type FileSource struct {
	filePath string
	logger   *zap.Logger
	holidays []Holiday
}

// NewFileSource creates a new FileSource instance
func NewFileSource(filePath string, logger *zap.Logger) *FileSource {
	return &FileSource{
		filePath: filePath,
		logger:   logger,
	}
}

// Name implements Source
func (fs *FileSource) Name() string {
	return "file"
}

// Holidays implements Source
func (fs *FileSource) Holidays() []Holiday {
	return fs.holidays
}

// Load reads and validates the holiday file.
// Invalid entries are logged and skipped.
func (fs *FileSource) Load() error {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return fmt.Errorf("failed to read holiday file: %w", err)
	}

	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse holiday file: %w", err)
	}

	holidays := make([]Holiday, 0, len(doc.Holidays))
	for i, entry := range doc.Holidays {
		h, err := entry.toHoliday()
		if err != nil {
			fs.logger.Warn("Invalid holiday entry",
				zap.Int("index", i),
				zap.String("name", entry.Name),
				zap.Error(err))
			continue
		}
		holidays = append(holidays, h)
	}

	fs.holidays = holidays
	fs.logger.Info("Holiday file loaded",
		zap.String("file", fs.filePath),
		zap.Int("holidays", len(holidays)))

	return nil
}

func (e fileEntry) toHoliday() (Holiday, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return Holiday{}, fmt.Errorf("name is required")
	}

	set := 0
	if e.Date != "" {
		set++
	}
	if e.RRule != "" {
		set++
	}
	if e.EasterOffset != nil {
		set++
	}
	if set != 1 {
		return Holiday{}, fmt.Errorf("exactly one of date, rrule or easter_offset is required, got %d", set)
	}
	if e.Start != "" && e.RRule == "" {
		return Holiday{}, fmt.Errorf("start is only valid with rrule")
	}

	var when DateRule
	switch {
	case e.Date != "":
		rule, err := parseEntryDate(e.Date)
		if err != nil {
			return Holiday{}, err
		}
		when = rule
	case e.RRule != "":
		var anchor time.Time
		if e.Start != "" {
			t, err := time.Parse("2006-01-02", strings.TrimSpace(e.Start))
			if err != nil {
				return Holiday{}, fmt.Errorf("invalid start %q: expected YYYY-MM-DD", e.Start)
			}
			anchor = t
		}
		rule, err := RRuleDate(e.RRule, anchor)
		if err != nil {
			return Holiday{}, err
		}
		when = ComputedDate{rule}
	default:
		when = ComputedDate{Offset(Easter, *e.EasterOffset)}
	}

	greeting := e.Greeting
	if greeting == "" {
		greeting = defaultGreeting(name)
	}

	return Holiday{Name: name, When: when, Emoji: e.Emoji, Greeting: greeting}, nil
}

// parseEntryDate accepts "MM-DD" for a yearly holiday or "YYYY-MM-DD" for a one-off
func parseEntryDate(s string) (DateRule, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return ComputedDate{OnlyIn(t)}, nil
	}

	t, err := time.Parse("01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected MM-DD or YYYY-MM-DD", s)
	}
	return FixedDate{Month: t.Month(), Day: t.Day()}, nil
}

func defaultGreeting(name string) string {
	return "Happy " + name + "!"
}
