package clock

import (
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/username/holiday-clock/internal/calendar"
)

func TestFormatTime(t *testing.T) {
	afternoon := time.Date(2024, 12, 24, 15, 4, 5, 0, time.UTC)
	midnight := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)
	noon := time.Date(2024, 12, 24, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		t           time.Time
		hourFormat  int
		showSeconds bool
		separator   string
		wantMain    string
		wantSuffix  string
	}{
		{"24h", afternoon, 24, false, ":", "15:04", ""},
		{"24h with seconds", afternoon, 24, true, ":", "15:04:05", ""},
		{"24h pads hour", time.Date(2024, 1, 1, 7, 9, 0, 0, time.UTC), 24, false, ":", "07:09", ""},
		{"12h afternoon", afternoon, 12, true, ":", "3:04:05", "PM"},
		{"12h midnight", midnight, 12, false, ":", "12:00", "AM"},
		{"12h noon", noon, 12, false, ":", "12:30", "PM"},
		{"custom separator", afternoon, 24, true, ".", "15.04.05", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			main, suffix := FormatTime(tt.t, tt.hourFormat, tt.showSeconds, tt.separator)
			if main != tt.wantMain || suffix != tt.wantSuffix {
				t.Errorf("FormatTime() = (%q, %q), want (%q, %q)", main, suffix, tt.wantMain, tt.wantSuffix)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2024, 12, 24, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		format DateFormat
		custom string
		want   string
	}{
		{DateWords, "", "Dec 24, 2024"},
		{DateYMD, "", "2024-12-24"},
		{DateMDY, "", "12/24/2024"},
		{DateDMY, "", "24/12/2024"},
		{DateCustom, "", "December 24, 2024"},
		{DateCustom, "DDD DD.MM.YY", "Tue 24.12.24"},
		{DateFormat("unknown"), "", "Dec 24, 2024"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format)+"/"+tt.custom, func(t *testing.T) {
			if got := FormatDate(date, tt.format, tt.custom); got != tt.want {
				t.Errorf("FormatDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCustomDate(t *testing.T) {
	morning := time.Date(2024, 3, 5, 9, 7, 8, 0, time.UTC)
	evening := time.Date(2024, 12, 24, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name    string
		t       time.Time
		pattern string
		want    string
	}{
		{"long names", evening, "DDDD, MMMM D YYYY", "Tuesday, December 24 2024"},
		{"short names", evening, "DDD MMM D", "Tue Dec 24"},
		{"unpadded", morning, "YY/M/D H:m:s A", "24/3/5 9:7:8 AM"},
		{"padded", morning, "YYYY-MM-DD HH:mm:ss", "2024-03-05 09:07:08"},
		{"12h lowercase", evening, "hh:mm a", "03:04 pm"},
		{"12h unpadded", evening, "h A", "3 PM"},
		{"expanded text is not re-read", evening, "MMMM", "December"},
		{"literals kept", evening, "[YYYY]", "[2024]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCustomDate(tt.t, tt.pattern); got != tt.want {
				t.Errorf("FormatCustomDate(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestDateLine(t *testing.T) {
	now := time.Date(2024, 12, 24, 10, 15, 0, 0, time.UTC)

	s := DefaultState()
	if got := DateLine(now, s); got != "Tuesday · Dec 24, 2024" {
		t.Errorf("DateLine() = %q", got)
	}

	s.ShowDay = false
	if got := DateLine(now, s); got != "Dec 24, 2024" {
		t.Errorf("DateLine() without day = %q", got)
	}

	s.ShowDate = false
	if got := DateLine(now, s); got != "" {
		t.Errorf("DateLine() with nothing enabled = %q", got)
	}
}

func TestClockFrame(t *testing.T) {
	now := time.Date(2024, 12, 24, 10, 15, 0, 0, time.UTC)

	s := DefaultState()
	s.ShowWeek = true
	s.ShowDayNumber = true
	s.ShowHoliday = true

	c := NewClock(s, calendar.Builtin(), zap.NewNop())
	frame := c.Frame(now)

	want := Frame{
		Time:     "10:15",
		DateLine: "Tuesday · Dec 24, 2024",
		WeekLine: "Week 52 · Day 359",
		Holiday:  "🎄 1 days to Christmas",
	}
	if !reflect.DeepEqual(frame, want) {
		t.Errorf("Frame() = %+v, want %+v", frame, want)
	}

	wantMeta := []string{"Week 52 · Day 359", "🎄 1 days to Christmas"}
	if got := frame.MetaLines(); !reflect.DeepEqual(got, wantMeta) {
		t.Errorf("MetaLines() = %q, want %q", got, wantMeta)
	}
}

func TestClockFrame_DayNumberWithoutWeek(t *testing.T) {
	now := time.Date(2024, 12, 24, 10, 15, 0, 0, time.UTC)

	s := DefaultState()
	s.ShowDayNumber = true

	frame := NewClock(s, nil, zap.NewNop()).Frame(now)
	if frame.WeekLine != "" || frame.DayLine != "Day 359" {
		t.Errorf("Frame() week=%q day=%q, want day line only", frame.WeekLine, frame.DayLine)
	}
	if frame.Holiday != "" {
		t.Errorf("Frame() holiday = %q, want hidden", frame.Holiday)
	}
}

func TestClockTick_BlinksSeparator(t *testing.T) {
	now := time.Date(2024, 12, 24, 10, 15, 0, 0, time.UTC)

	s := DefaultState()
	s.BlinkSeparator = true
	c := NewClock(s, nil, zap.NewNop())

	if got := c.Frame(now).Time; got != "10:15" {
		t.Fatalf("initial Time = %q", got)
	}

	c.Tick()
	frame := c.Frame(now)
	if frame.Time != "10 15" || !frame.SeparatorHidden {
		t.Errorf("after one tick Frame() = %+v, want hidden separator", frame)
	}

	c.Tick()
	if got := c.Frame(now).Time; got != "10:15" {
		t.Errorf("after two ticks Time = %q", got)
	}

	c.Tick()
	s.BlinkSeparator = false
	c.Update(s)
	if got := c.Frame(now).Time; got != "10:15" {
		t.Errorf("blink disabled Time = %q, want separator restored", got)
	}
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()

	if s.TimeFormat != 24 || s.Separator != ":" || s.DateFormat != DateWords {
		t.Errorf("unexpected time defaults: %+v", s)
	}
	if s.HolidayFormat != calendar.FormatDays {
		t.Errorf("HolidayFormat = %q, want days", s.HolidayFormat)
	}
	if s.PosX != 0.5 || s.PosY != 0.5 || s.DragEnabled {
		t.Errorf("position defaults = (%v, %v, %v)", s.PosX, s.PosY, s.DragEnabled)
	}
	if s.HasMeta() {
		t.Error("HasMeta() should be false by default")
	}
}
