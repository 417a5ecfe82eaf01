package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/holiday-clock/pkg/dateutil"
)

// Format selects how the holiday countdown is rendered
type Format string

const (
	FormatDays    Format = "days"
	FormatDHM     Format = "dhm"
	FormatDH      Format = "dh"
	FormatWeeks   Format = "w"
	FormatHours   Format = "h"
	FormatMinutes Format = "m"
	FormatSeconds Format = "s"
	FormatDate    Format = "date"
)

// DateLayout is used by FormatDate and mirrors a short locale date ("Nov 28, 2024")
const DateLayout = "Jan 2, 2006"

var formats = []Format{
	FormatDays, FormatDHM, FormatDH, FormatWeeks,
	FormatHours, FormatMinutes, FormatSeconds, FormatDate,
}

// Formats lists every supported countdown format
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat maps a property value to a Format. Unknown values fall back to FormatDays.
func ParseFormat(s string) Format {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range formats {
		if f == known {
			return f
		}
	}
	return FormatDays
}

// Countdown splits a duration into whole days, hours and minutes.
// Negative durations count as zero.
func Countdown(d time.Duration) (days, hours, minutes int) {
	totalMinutes := floorDiv(d, time.Minute)
	days = totalMinutes / (60 * 24)
	hours = (totalMinutes % (60 * 24)) / 60
	minutes = totalMinutes % 60
	return days, hours, minutes
}

// FormatCountdown renders the next holiday relative to now. On the holiday's
// own calendar day the greeting is returned instead of a countdown.
func FormatCountdown(holidays []Holiday, now time.Time, format Format, disableIcons bool) string {
	holiday, ok := Next(holidays, now)
	if !ok {
		return ""
	}

	emoji := ""
	if !disableIcons && holiday.Emoji != "" {
		emoji = holiday.Emoji + " "
	}

	if dateutil.IsSameDay(holiday.Date, now) {
		return strings.TrimSpace(emoji + holiday.Greeting)
	}

	diff := holiday.Date.Sub(now)

	var line string
	switch format {
	case FormatDHM:
		days, hours, minutes := Countdown(diff)
		line = fmt.Sprintf("%s%dd %dh %dm to %s", emoji, days, hours, minutes, holiday.Name)
	case FormatDH:
		days, hours, _ := Countdown(diff)
		line = fmt.Sprintf("%s%dd %dh to %s", emoji, days, hours, holiday.Name)
	case FormatDate:
		line = fmt.Sprintf("%s%s · %s", emoji, holiday.Name, holiday.Date.Format(DateLayout))
	case FormatHours:
		line = fmt.Sprintf("%s%dh to %s", emoji, floorDiv(diff, time.Hour), holiday.Name)
	case FormatMinutes:
		line = fmt.Sprintf("%s%d min to %s", emoji, floorDiv(diff, time.Minute), holiday.Name)
	case FormatSeconds:
		line = fmt.Sprintf("%s%d sec to %s", emoji, floorDiv(diff, time.Second), holiday.Name)
	case FormatWeeks:
		line = fmt.Sprintf("%s%d weeks to %s", emoji, floorDiv(diff, 7*24*time.Hour), holiday.Name)
	default:
		days := dateutil.DaysBetween(now, holiday.Date)
		if days < 0 {
			days = 0
		}
		line = fmt.Sprintf("%s%d days to %s", emoji, days, holiday.Name)
	}

	return strings.TrimSpace(line)
}

// floorDiv divides d by unit rounding down, clamped at zero
func floorDiv(d, unit time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d / unit)
}
