package calendar

import (
	"testing"
	"time"
)

func TestEaster(t *testing.T) {
	tests := []struct {
		year     int
		expected time.Time
	}{
		{2023, time.Date(2023, 4, 9, 0, 0, 0, 0, time.UTC)},
		{2024, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
		{2025, time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)},
		{2026, time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)},
		{2027, time.Date(2027, 3, 28, 0, 0, 0, 0, time.UTC)},
		{2038, time.Date(2038, 4, 25, 0, 0, 0, 0, time.UTC)},
		{2285, time.Date(2285, 3, 22, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.expected.Format("2006-01-02"), func(t *testing.T) {
			result := Easter(tt.year, time.UTC)
			if !result.Equal(tt.expected) {
				t.Errorf("Easter(%d) = %v, want %v", tt.year, result, tt.expected)
			}
		})
	}
}

func TestEaster_AlwaysSundayInWindow(t *testing.T) {
	for year := 1583; year <= 4099; year++ {
		easter := Easter(year, time.UTC)

		if easter.Weekday() != time.Sunday {
			t.Fatalf("Easter(%d) = %s is a %v", year, easter.Format("2006-01-02"), easter.Weekday())
		}

		earliest := time.Date(year, time.March, 22, 0, 0, 0, 0, time.UTC)
		latest := time.Date(year, time.April, 25, 0, 0, 0, 0, time.UTC)
		if easter.Before(earliest) || easter.After(latest) {
			t.Fatalf("Easter(%d) = %s outside Mar 22..Apr 25", year, easter.Format("2006-01-02"))
		}
	}
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		weekday  time.Weekday
		n        int
		expected time.Time
	}{
		{"US Thanksgiving 2024", 2024, time.November, time.Thursday, 4, time.Date(2024, 11, 28, 0, 0, 0, 0, time.UTC)},
		{"Mother's Day 2025", 2025, time.May, time.Sunday, 2, time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC)},
		{"Father's Day 2024", 2024, time.June, time.Sunday, 3, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)},
		{"First weekday is the 1st", 2024, time.February, time.Thursday, 1, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NthWeekdayOfMonth(tt.year, tt.month, tt.weekday, tt.n, time.UTC)
			if !result.Equal(tt.expected) {
				t.Errorf("NthWeekdayOfMonth() = %v, want %v", result, tt.expected)
			}
			if result.Weekday() != tt.weekday {
				t.Errorf("NthWeekdayOfMonth() weekday = %v, want %v", result.Weekday(), tt.weekday)
			}
		})
	}
}

func TestOffset_BlackFriday(t *testing.T) {
	blackFriday := Offset(NthWeekday(time.November, time.Thursday, 4), 1)

	result := blackFriday(2024, time.UTC)
	expected := time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("Black Friday 2024 = %v, want %v", result, expected)
	}
}

func TestOffset_RollsOverMonthAndYear(t *testing.T) {
	newYearsEve := func(year int, loc *time.Location) time.Time {
		return time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
	}

	result := Offset(newYearsEve, 1)(2024, time.UTC)
	expected := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("Offset(Dec 31, +1) = %v, want %v", result, expected)
	}
}

func TestOffset_ZeroStaysZero(t *testing.T) {
	never := func(int, *time.Location) time.Time { return time.Time{} }

	if result := Offset(never, 3)(2024, time.UTC); !result.IsZero() {
		t.Errorf("Offset(zero) = %v, want zero time", result)
	}
}

func TestHolidayDateIn(t *testing.T) {
	fixed := Holiday{Name: "Halloween", When: FixedDate{time.October, 31}}
	if got := fixed.DateIn(2024, time.UTC); !got.Equal(time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("fixed DateIn = %v", got)
	}

	computed := Holiday{Name: "Easter", When: ComputedDate{Easter}}
	if got := computed.DateIn(2025, time.UTC); !got.Equal(time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("computed DateIn = %v", got)
	}

	if got := fixed.DateIn(2024, nil); got.Location() != time.Local {
		t.Errorf("nil location should default to Local, got %v", got.Location())
	}
}

func TestBuiltin_MonotonicAcrossYears(t *testing.T) {
	for _, h := range Builtin() {
		prev := h.DateIn(1990, time.UTC)
		for year := 1991; year <= 2100; year++ {
			next := h.DateIn(year, time.UTC)
			if !next.After(prev) {
				t.Fatalf("%s: %d resolved to %v, not after %v", h.Name, year, next, prev)
			}
			prev = next
		}
	}
}

func TestBuiltin_IsCopy(t *testing.T) {
	first := Builtin()
	first[0].Name = "Mutated"

	if Builtin()[0].Name != "New Year" {
		t.Error("Builtin() exposed the underlying catalog")
	}
}

func TestBuiltin_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, h := range Builtin() {
		if seen[h.Name] {
			t.Errorf("duplicate holiday name %q", h.Name)
		}
		seen[h.Name] = true
	}
}
