package properties

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/holiday-clock/internal/calendar"
	"github.com/username/holiday-clock/internal/clock"
)

func TestApply(t *testing.T) {
	s := clock.DefaultState()

	editor := Apply(&s, Properties{
		"showclock":          {Value: false},
		"clocktimeformat":    {Value: "12"},
		"clockshowseconds":   {Value: true},
		"clockseparator":     {Value: "."},
		"clockfont":          {Value: 3.0},
		"clockfontsize":      {Value: 72.5},
		"clockcolor":         {Value: "0.2 0.4 0.6"},
		"clockdateformat":    {Value: "ymd"},
		"clockshowholiday":   {Value: "true"},
		"clockholidayformat": {Value: "DHM"},
		"clockdisableicons":  {Value: 1},
	}, nil)

	assert.Nil(t, editor, "editor toggle absent")
	assert.False(t, s.Visible)
	assert.Equal(t, 12, s.TimeFormat)
	assert.True(t, s.ShowSeconds)
	assert.Equal(t, ".", s.Separator)
	assert.Equal(t, 3, s.FontIndex)
	assert.Equal(t, 72.5, s.FontSize)
	assert.Equal(t, "0.2 0.4 0.6", s.Color)
	assert.Equal(t, clock.DateYMD, s.DateFormat)
	assert.True(t, s.ShowHoliday)
	assert.Equal(t, calendar.FormatDHM, s.HolidayFormat)
	assert.True(t, s.DisableIcons)

	// untouched fields keep their defaults
	assert.Equal(t, clock.DefaultState().ShadowBlur, s.ShadowBlur)
	assert.True(t, s.ShowDate)
}

func TestApply_BadNumberKeepsValue(t *testing.T) {
	s := clock.DefaultState()
	Apply(&s, Properties{
		"clockfontsize":   {Value: "huge"},
		"clocktimeformat": {Value: "twelve"},
	}, nil)

	assert.Equal(t, 48.0, s.FontSize)
	assert.Equal(t, 24, s.TimeFormat)
}

func TestApply_EditorVisible(t *testing.T) {
	s := clock.DefaultState()

	editor := Apply(&s, Properties{"showwidgeteditor": {Value: true}}, nil)
	require.NotNil(t, editor)
	assert.True(t, *editor)

	editor = Apply(&s, Properties{"showwidgeteditor": {Value: "false"}}, nil)
	require.NotNil(t, editor)
	assert.False(t, *editor)
}

func TestApply_CustomKeys(t *testing.T) {
	keys := Merge(map[string]string{
		"showHoliday": "myholiday",
		"bogusField":  "ignored",
		"showDate":    "",
		"showweek":    "myweek",
	})

	assert.Equal(t, "myholiday", keys["showHoliday"])
	assert.Equal(t, "clockshowdate", keys["showDate"], "empty override keeps default")
	assert.Equal(t, "myweek", keys["showWeek"], "lowercased field names match")
	assert.NotContains(t, keys, "bogusField")

	s := clock.DefaultState()
	Apply(&s, Properties{
		"clockshowholiday": {Value: true},
	}, keys)
	assert.False(t, s.ShowHoliday, "default key no longer bound")

	Apply(&s, Properties{
		"myholiday": {Value: true},
	}, keys)
	assert.True(t, s.ShowHoliday)
}

func TestDefaultKeys(t *testing.T) {
	keys := DefaultKeys()

	assert.Equal(t, "showclock", keys["show"])
	assert.Equal(t, "showwidgeteditor", keys[EditorVisible])
	assert.Len(t, keys, len(bindings)+1)

	seen := make(map[string]string)
	for field, key := range keys {
		if other, dup := seen[key]; dup {
			t.Errorf("key %q bound to both %s and %s", key, field, other)
		}
		seen[key] = field
	}
}

func TestDecode(t *testing.T) {
	props, err := Decode(strings.NewReader(`{
		"clockcolor": {"type": "color", "value": "1 0 0"},
		"clockscale": {"value": 1.5}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "color", props["clockcolor"].Type)

	s := clock.DefaultState()
	Apply(&s, props, nil)
	assert.Equal(t, "1 0 0", s.Color)
	assert.Equal(t, 1.5, s.Scale)

	_, err = Decode(strings.NewReader(`[1, 2`))
	assert.Error(t, err)
}
