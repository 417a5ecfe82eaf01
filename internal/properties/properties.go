package properties

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"

	"github.com/username/holiday-clock/internal/calendar"
	"github.com/username/holiday-clock/internal/clock"
)

// Property is one user property as delivered by the host, e.g. {"value": true}
type Property struct {
	Value any    `json:"value"`
	Type  string `json:"type,omitempty"`
}

// Properties maps property keys to values
type Properties map[string]Property

// Keys maps state fields to the property keys that drive them
type Keys map[string]string

// EditorVisible is the field name of the widget editor toggle
const EditorVisible = "editorVisible"

// DefaultKeys returns the stock property key names
func DefaultKeys() Keys {
	keys := make(Keys, len(bindings)+1)
	for _, b := range bindings {
		keys[b.field] = b.key
	}
	keys[EditorVisible] = "showwidgeteditor"
	return keys
}

// Merge returns the default keys with overrides applied. Field names match
// case-insensitively since config loaders lowercase map keys. Unknown fields
// are ignored.
func Merge(overrides map[string]string) Keys {
	keys := DefaultKeys()
	fields := make(map[string]string, len(keys))
	for field := range keys {
		fields[strings.ToLower(field)] = field
	}

	for name, key := range overrides {
		field, ok := fields[strings.ToLower(name)]
		if ok && key != "" {
			keys[field] = key
		}
	}
	return keys
}

// Decode reads a JSON object of properties
func Decode(r io.Reader) (Properties, error) {
	var props Properties
	if err := json.NewDecoder(r).Decode(&props); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	return props, nil
}

// Apply copies the properties present in props onto s. Values that cannot be
// coerced to the field type leave the field unchanged. The editor toggle is not
// part of the clock state, so it is returned separately (nil when absent).
func Apply(s *clock.State, props Properties, keys Keys) *bool {
	if keys == nil {
		keys = DefaultKeys()
	}

	for _, b := range bindings {
		prop, ok := props[keys[b.field]]
		if !ok {
			continue
		}
		b.apply(s, prop.Value)
	}

	prop, ok := props[keys[EditorVisible]]
	if !ok {
		return nil
	}
	visible := cast.ToBool(prop.Value)
	return &visible
}

type binding struct {
	field string
	key   string
	apply func(s *clock.State, v any)
}

func boolField(field func(*clock.State) *bool) func(*clock.State, any) {
	return func(s *clock.State, v any) {
		*field(s) = cast.ToBool(v)
	}
}

func numberField(field func(*clock.State) *float64) func(*clock.State, any) {
	return func(s *clock.State, v any) {
		if f, err := cast.ToFloat64E(v); err == nil {
			*field(s) = f
		}
	}
}

func intField(field func(*clock.State) *int) func(*clock.State, any) {
	return func(s *clock.State, v any) {
		if f, err := cast.ToFloat64E(v); err == nil {
			*field(s) = int(f)
		}
	}
}

func stringField(field func(*clock.State) *string) func(*clock.State, any) {
	return func(s *clock.State, v any) {
		if str, err := cast.ToStringE(v); err == nil {
			*field(s) = str
		}
	}
}

var bindings = []binding{
	{"show", "showclock", boolField(func(s *clock.State) *bool { return &s.Visible })},
	{"timeFormat", "clocktimeformat", intField(func(s *clock.State) *int { return &s.TimeFormat })},
	{"showDate", "clockshowdate", boolField(func(s *clock.State) *bool { return &s.ShowDate })},
	{"showDay", "clockshowday", boolField(func(s *clock.State) *bool { return &s.ShowDay })},
	{"showSeconds", "clockshowseconds", boolField(func(s *clock.State) *bool { return &s.ShowSeconds })},
	{"separator", "clockseparator", stringField(func(s *clock.State) *string { return &s.Separator })},
	{"blinkSeparator", "clockblinkseparator", boolField(func(s *clock.State) *bool { return &s.BlinkSeparator })},
	{"ampmPosition", "clockampmposition", stringField(func(s *clock.State) *string { return &s.AMPMPosition })},
	{"font", "clockfont", intField(func(s *clock.State) *int { return &s.FontIndex })},
	{"fontWeight", "clockfontweight", numberField(func(s *clock.State) *float64 { return &s.FontWeight })},
	{"fontSize", "clockfontsize", numberField(func(s *clock.State) *float64 { return &s.FontSize })},
	{"scale", "clockscale", numberField(func(s *clock.State) *float64 { return &s.Scale })},
	{"color", "clockcolor", stringField(func(s *clock.State) *string { return &s.Color })},
	{"letterSpacing", "clockletterspacing", numberField(func(s *clock.State) *float64 { return &s.LetterSpacing })},
	{"opacity", "clockopacity", numberField(func(s *clock.State) *float64 { return &s.Opacity })},
	{"shadow", "clockshadow", boolField(func(s *clock.State) *bool { return &s.Shadow })},
	{"shadowColor", "clockshadowcolor", stringField(func(s *clock.State) *string { return &s.ShadowColor })},
	{"shadowBlur", "clockshadowblur", numberField(func(s *clock.State) *float64 { return &s.ShadowBlur })},
	{"shadowDistance", "clockshadowdistance", numberField(func(s *clock.State) *float64 { return &s.ShadowDistance })},
	{"shadowAngle", "clockshadowangle", numberField(func(s *clock.State) *float64 { return &s.ShadowAngle })},
	{"shadowOpacity", "clockshadowopacity", numberField(func(s *clock.State) *float64 { return &s.ShadowOpacity })},
	{"textOutline", "clocktextoutline", boolField(func(s *clock.State) *bool { return &s.TextOutline })},
	{"textOutlineColor", "clocktextoutlinecolor", stringField(func(s *clock.State) *string { return &s.TextOutlineColor })},
	{"textOutlineWidth", "clocktextoutlinewidth", numberField(func(s *clock.State) *float64 { return &s.TextOutlineWidth })},
	{"textGradient", "clocktextgradient", boolField(func(s *clock.State) *bool { return &s.TextGradient })},
	{"textGradientStart", "clocktextgradientstart", stringField(func(s *clock.State) *string { return &s.TextGradientStart })},
	{"textGradientEnd", "clocktextgradientend", stringField(func(s *clock.State) *string { return &s.TextGradientEnd })},
	{"textGradientAngle", "clocktextgradientangle", numberField(func(s *clock.State) *float64 { return &s.TextGradientAngle })},
	{"infoFont", "clockinfofont", intField(func(s *clock.State) *int { return &s.InfoFontIndex })},
	{"infoFontStyle", "clockinfofontstyle", stringField(func(s *clock.State) *string { return &s.InfoFontStyle })},
	{"infoFontWeight", "clockinfofontweight", numberField(func(s *clock.State) *float64 { return &s.InfoFontWeight })},
	{"infoFontSize", "clockinfofontsize", numberField(func(s *clock.State) *float64 { return &s.InfoFontSize })},
	{"infoScale", "clockinfoscale", numberField(func(s *clock.State) *float64 { return &s.InfoScale })},
	{"infoTextTransform", "clockinfotexttransform", stringField(func(s *clock.State) *string { return &s.InfoTextTransform })},
	{"infoShadow", "clockinfoshadow", boolField(func(s *clock.State) *bool { return &s.InfoShadow })},
	{"infoShadowColor", "clockinfoshadowcolor", stringField(func(s *clock.State) *string { return &s.InfoShadowColor })},
	{"infoShadowBlur", "clockinfoshadowblur", numberField(func(s *clock.State) *float64 { return &s.InfoShadowBlur })},
	{"infoShadowDistance", "clockinfoshadowdistance", numberField(func(s *clock.State) *float64 { return &s.InfoShadowDistance })},
	{"infoShadowAngle", "clockinfoshadowangle", numberField(func(s *clock.State) *float64 { return &s.InfoShadowAngle })},
	{"infoShadowOpacity", "clockinfoshadowopacity", numberField(func(s *clock.State) *float64 { return &s.InfoShadowOpacity })},
	{"dateFormat", "clockdateformat", func(s *clock.State, v any) { s.DateFormat = clock.DateFormat(cast.ToString(v)) }},
	{"customDateFormat", "clockcustomdateformat", stringField(func(s *clock.State) *string { return &s.CustomDateFormat })},
	{"showWeek", "clockshowweek", boolField(func(s *clock.State) *bool { return &s.ShowWeek })},
	{"showDayNumber", "clockshowdaynumber", boolField(func(s *clock.State) *bool { return &s.ShowDayNumber })},
	{"showHoliday", "clockshowholiday", boolField(func(s *clock.State) *bool { return &s.ShowHoliday })},
	{"holidayFormat", "clockholidayformat", func(s *clock.State, v any) { s.HolidayFormat = calendar.ParseFormat(cast.ToString(v)) }},
	{"disableIcons", "clockdisableicons", boolField(func(s *clock.State) *bool { return &s.DisableIcons })},
	{"showBackground", "clockshowbackground", boolField(func(s *clock.State) *bool { return &s.ShowBackground })},
	{"backgroundColor", "clockbackgroundcolor", stringField(func(s *clock.State) *string { return &s.BackgroundColor })},
	{"backgroundOpacity", "clockbackgroundopacity", numberField(func(s *clock.State) *float64 { return &s.BackgroundOpacity })},
	{"backgroundBlur", "clockbackgroundblur", numberField(func(s *clock.State) *float64 { return &s.BackgroundBlur })},
	{"backgroundBorderRadius", "clockbackgroundborderradius", numberField(func(s *clock.State) *float64 { return &s.BackgroundBorderRadius })},
	{"backgroundPadding", "clockbackgroundpadding", numberField(func(s *clock.State) *float64 { return &s.BackgroundPadding })},
	{"animateChanges", "clockanimatechanges", boolField(func(s *clock.State) *bool { return &s.AnimateChanges })},
	{"animationDuration", "clockanimationduration", numberField(func(s *clock.State) *float64 { return &s.AnimationDuration })},
}
