package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WordsLayout renders the default "words" date, e.g. "Dec 25, 2024"
const WordsLayout = "Jan 2, 2006"

// FormatTime returns the clock reading and the AM/PM suffix (empty in 24h mode)
func FormatTime(t time.Time, hourFormat int, showSeconds bool, separator string) (string, string) {
	minutes := fmt.Sprintf("%02d", t.Minute())
	seconds := ""
	if showSeconds {
		seconds = fmt.Sprintf("%s%02d", separator, t.Second())
	}

	if hourFormat == 12 {
		return fmt.Sprintf("%d%s%s%s", hour12(t.Hour()), separator, minutes, seconds), meridiem(t.Hour(), "AM", "PM")
	}

	return fmt.Sprintf("%02d%s%s%s", t.Hour(), separator, minutes, seconds), ""
}

// FormatDate renders the date portion of the date line
func FormatDate(t time.Time, format DateFormat, custom string) string {
	switch format {
	case DateYMD:
		return t.Format("2006-01-02")
	case DateMDY:
		return t.Format("01/02/2006")
	case DateDMY:
		return t.Format("02/01/2006")
	case DateCustom:
		if custom == "" {
			custom = DefaultState().CustomDateFormat
		}
		return FormatCustomDate(t, custom)
	default:
		return t.Format(WordsLayout)
	}
}

// dateTokens is ordered longest first so "MMMM" wins over "MM" and "M"
var dateTokens = []struct {
	token  string
	render func(t time.Time) string
}{
	{"YYYY", func(t time.Time) string { return strconv.Itoa(t.Year()) }},
	{"MMMM", func(t time.Time) string { return t.Month().String() }},
	{"DDDD", func(t time.Time) string { return t.Weekday().String() }},
	{"MMM", func(t time.Time) string { return t.Format("Jan") }},
	{"DDD", func(t time.Time) string { return t.Format("Mon") }},
	{"YY", func(t time.Time) string { return t.Format("06") }},
	{"MM", func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) }},
	{"DD", func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) }},
	{"HH", func(t time.Time) string { return fmt.Sprintf("%02d", t.Hour()) }},
	{"hh", func(t time.Time) string { return fmt.Sprintf("%02d", hour12(t.Hour())) }},
	{"mm", func(t time.Time) string { return fmt.Sprintf("%02d", t.Minute()) }},
	{"ss", func(t time.Time) string { return fmt.Sprintf("%02d", t.Second()) }},
	{"M", func(t time.Time) string { return strconv.Itoa(int(t.Month())) }},
	{"D", func(t time.Time) string { return strconv.Itoa(t.Day()) }},
	{"H", func(t time.Time) string { return strconv.Itoa(t.Hour()) }},
	{"h", func(t time.Time) string { return strconv.Itoa(hour12(t.Hour())) }},
	{"m", func(t time.Time) string { return strconv.Itoa(t.Minute()) }},
	{"s", func(t time.Time) string { return strconv.Itoa(t.Second()) }},
	{"A", func(t time.Time) string { return meridiem(t.Hour(), "AM", "PM") }},
	{"a", func(t time.Time) string { return meridiem(t.Hour(), "am", "pm") }},
}

// FormatCustomDate expands tokens such as "DDDD, MMMM D YYYY".
// The pattern is scanned once left to right, so text produced by one token
// is never re-read as another token.
func FormatCustomDate(t time.Time, pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(pattern[i:], tok.token) {
				b.WriteString(tok.render(t))
				i += len(tok.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

func hour12(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}

func meridiem(hour int, am, pm string) string {
	if hour >= 12 {
		return pm
	}
	return am
}
