package clock

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/username/holiday-clock/internal/calendar"
	"github.com/username/holiday-clock/pkg/dateutil"
)

// Frame is one rendered reading of the clock. Empty lines are hidden.
type Frame struct {
	Time     string
	Suffix   string
	DateLine string
	WeekLine string
	DayLine  string
	Holiday  string

	SeparatorHidden bool
}

// MetaLines returns the non-empty lines shown under the date
func (f Frame) MetaLines() []string {
	var lines []string
	for _, l := range []string{f.WeekLine, f.DayLine, f.Holiday} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Clock turns the widget state and a holiday catalog into frames
type Clock struct {
	mu               sync.RWMutex
	state            State
	holidays         []calendar.Holiday
	separatorVisible bool
	logger           *zap.Logger
}

// NewClock creates a clock over the given holiday catalog
func NewClock(state State, holidays []calendar.Holiday, logger *zap.Logger) *Clock {
	return &Clock{
		state:            state,
		holidays:         holidays,
		separatorVisible: true,
		logger:           logger,
	}
}

// State returns a copy of the current widget state
func (c *Clock) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Update replaces the widget state
func (c *Clock) Update(state State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !state.BlinkSeparator {
		c.separatorVisible = true
	}
	c.state = state
	c.logger.Debug("Clock state updated",
		zap.Int("time_format", state.TimeFormat),
		zap.Bool("show_holiday", state.ShowHoliday))
}

// Holidays returns the holiday catalog
func (c *Clock) Holidays() []calendar.Holiday {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.holidays
}

// SetHolidays swaps the holiday catalog
func (c *Clock) SetHolidays(holidays []calendar.Holiday) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.holidays = holidays
}

// Tick advances the separator blink phase. Called once per timer tick.
func (c *Clock) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.BlinkSeparator {
		c.separatorVisible = !c.separatorVisible
	} else {
		c.separatorVisible = true
	}
}

// Frame renders the clock at now
func (c *Clock) Frame(now time.Time) Frame {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := c.state
	separator := s.Separator
	if s.BlinkSeparator && !c.separatorVisible {
		separator = " "
	}

	main, suffix := FormatTime(now, s.TimeFormat, s.ShowSeconds, separator)
	frame := Frame{
		Time:            main,
		Suffix:          suffix,
		DateLine:        DateLine(now, s),
		SeparatorHidden: separator != s.Separator,
	}

	if s.ShowWeek {
		frame.WeekLine = fmt.Sprintf("Week %d", dateutil.ISOWeek(now))
		if s.ShowDayNumber {
			frame.WeekLine += fmt.Sprintf(" · Day %d", dateutil.DayOfYear(now))
		}
	} else if s.ShowDayNumber {
		frame.DayLine = fmt.Sprintf("Day %d", dateutil.DayOfYear(now))
	}

	if s.ShowHoliday {
		frame.Holiday = calendar.FormatCountdown(c.holidays, now, s.HolidayFormat, s.DisableIcons)
	}

	return frame
}

// DateLine joins the weekday and the formatted date with " · "
func DateLine(now time.Time, s State) string {
	var parts []string
	if s.ShowDay {
		parts = append(parts, now.Weekday().String())
	}
	if s.ShowDate {
		parts = append(parts, FormatDate(now, s.DateFormat, s.CustomDateFormat))
	}
	return strings.Join(parts, " · ")
}
