package clock

import "github.com/username/holiday-clock/internal/calendar"

// DateFormat selects how the date line is written
type DateFormat string

const (
	DateWords  DateFormat = "words"
	DateYMD    DateFormat = "ymd"
	DateMDY    DateFormat = "mdy"
	DateDMY    DateFormat = "dmy"
	DateCustom DateFormat = "custom"
)

// State represents the widget settings. Colors are "r g b" strings with
// components in [0,1]; positions are fractions of the screen.
type State struct {
	Visible bool `mapstructure:"visible" json:"visible"`

	// Time settings
	TimeFormat     int    `mapstructure:"time_format" json:"timeFormat"` // 12 or 24
	ShowSeconds    bool   `mapstructure:"show_seconds" json:"showSeconds"`
	Separator      string `mapstructure:"separator" json:"separator"`
	BlinkSeparator bool   `mapstructure:"blink_separator" json:"blinkSeparator"`
	AMPMPosition   string `mapstructure:"ampm_position" json:"ampmPosition"` // inline, above, below

	// Date settings
	ShowDate         bool       `mapstructure:"show_date" json:"showDate"`
	ShowDay          bool       `mapstructure:"show_day" json:"showDay"`
	DateFormat       DateFormat `mapstructure:"date_format" json:"dateFormat"`
	CustomDateFormat string     `mapstructure:"custom_date_format" json:"customDateFormat"`

	// Meta settings
	ShowWeek      bool            `mapstructure:"show_week" json:"showWeek"`
	ShowDayNumber bool            `mapstructure:"show_day_number" json:"showDayNumber"`
	ShowHoliday   bool            `mapstructure:"show_holiday" json:"showHoliday"`
	HolidayFormat calendar.Format `mapstructure:"holiday_format" json:"holidayFormat"`
	DisableIcons  bool            `mapstructure:"disable_icons" json:"disableIcons"`

	// Clock typography
	FontIndex     int     `mapstructure:"font_index" json:"fontIndex"`
	FontWeight    float64 `mapstructure:"font_weight" json:"fontWeight"`
	FontSize      float64 `mapstructure:"font_size" json:"fontSize"`
	Scale         float64 `mapstructure:"scale" json:"scale"`
	Color         string  `mapstructure:"color" json:"color"`
	LetterSpacing float64 `mapstructure:"letter_spacing" json:"letterSpacing"`
	Opacity       float64 `mapstructure:"opacity" json:"opacity"`

	// Clock shadow
	Shadow         bool    `mapstructure:"shadow" json:"shadow"`
	ShadowColor    string  `mapstructure:"shadow_color" json:"shadowColor"`
	ShadowBlur     float64 `mapstructure:"shadow_blur" json:"shadowBlur"`
	ShadowDistance float64 `mapstructure:"shadow_distance" json:"shadowDistance"`
	ShadowAngle    float64 `mapstructure:"shadow_angle" json:"shadowAngle"`
	ShadowOpacity  float64 `mapstructure:"shadow_opacity" json:"shadowOpacity"`

	// Text effects
	TextOutline       bool    `mapstructure:"text_outline" json:"textOutline"`
	TextOutlineColor  string  `mapstructure:"text_outline_color" json:"textOutlineColor"`
	TextOutlineWidth  float64 `mapstructure:"text_outline_width" json:"textOutlineWidth"`
	TextGradient      bool    `mapstructure:"text_gradient" json:"textGradient"`
	TextGradientStart string  `mapstructure:"text_gradient_start" json:"textGradientStart"`
	TextGradientEnd   string  `mapstructure:"text_gradient_end" json:"textGradientEnd"`
	TextGradientAngle float64 `mapstructure:"text_gradient_angle" json:"textGradientAngle"`

	// Info typography
	InfoFontIndex     int     `mapstructure:"info_font_index" json:"infoFontIndex"`
	InfoFontStyle     string  `mapstructure:"info_font_style" json:"infoFontStyle"`
	InfoFontWeight    float64 `mapstructure:"info_font_weight" json:"infoFontWeight"`
	InfoFontSize      float64 `mapstructure:"info_font_size" json:"infoFontSize"`
	InfoScale         float64 `mapstructure:"info_scale" json:"infoScale"`
	InfoTextTransform string  `mapstructure:"info_text_transform" json:"infoTextTransform"`

	// Info shadow
	InfoShadow         bool    `mapstructure:"info_shadow" json:"infoShadow"`
	InfoShadowColor    string  `mapstructure:"info_shadow_color" json:"infoShadowColor"`
	InfoShadowBlur     float64 `mapstructure:"info_shadow_blur" json:"infoShadowBlur"`
	InfoShadowDistance float64 `mapstructure:"info_shadow_distance" json:"infoShadowDistance"`
	InfoShadowAngle    float64 `mapstructure:"info_shadow_angle" json:"infoShadowAngle"`
	InfoShadowOpacity  float64 `mapstructure:"info_shadow_opacity" json:"infoShadowOpacity"`

	// Background
	ShowBackground         bool    `mapstructure:"show_background" json:"showBackground"`
	BackgroundColor        string  `mapstructure:"background_color" json:"backgroundColor"`
	BackgroundOpacity      float64 `mapstructure:"background_opacity" json:"backgroundOpacity"`
	BackgroundBlur         float64 `mapstructure:"background_blur" json:"backgroundBlur"`
	BackgroundBorderRadius float64 `mapstructure:"background_border_radius" json:"backgroundBorderRadius"`
	BackgroundPadding      float64 `mapstructure:"background_padding" json:"backgroundPadding"`

	// Position
	PosX        float64 `mapstructure:"pos_x" json:"posX"`
	PosY        float64 `mapstructure:"pos_y" json:"posY"`
	DragEnabled bool    `mapstructure:"drag_enabled" json:"dragEnabled"`

	// Animation
	AnimateChanges    bool    `mapstructure:"animate_changes" json:"animateChanges"`
	AnimationDuration float64 `mapstructure:"animation_duration" json:"animationDuration"`
}

// DefaultState returns the out-of-the-box widget settings
func DefaultState() State {
	return State{
		Visible:                true,
		TimeFormat:             24,
		Separator:              ":",
		AMPMPosition:           "inline",
		ShowDate:               true,
		ShowDay:                true,
		DateFormat:             DateWords,
		CustomDateFormat:       "MMMM D, YYYY",
		HolidayFormat:          calendar.FormatDays,
		FontWeight:             500,
		FontSize:               48,
		Scale:                  1,
		Color:                  "1 1 1",
		Opacity:                1,
		Shadow:                 true,
		ShadowColor:            "0 0 0",
		ShadowBlur:             12,
		ShadowDistance:         4,
		ShadowAngle:            135,
		ShadowOpacity:          0.7,
		TextOutlineColor:       "0 0 0",
		TextOutlineWidth:       1,
		TextGradientStart:      "1 1 1",
		TextGradientEnd:        "0.7 0.7 1",
		TextGradientAngle:      180,
		InfoFontStyle:          "normal",
		InfoFontWeight:         500,
		InfoFontSize:           16,
		InfoScale:              1,
		InfoTextTransform:      "none",
		InfoShadow:             true,
		InfoShadowColor:        "0 0 0",
		InfoShadowBlur:         8,
		InfoShadowDistance:     2,
		InfoShadowAngle:        135,
		InfoShadowOpacity:      0.7,
		BackgroundColor:        "0 0 0",
		BackgroundOpacity:      0.3,
		BackgroundBlur:         10,
		BackgroundBorderRadius: 16,
		BackgroundPadding:      24,
		PosX:                   0.5,
		PosY:                   0.5,
		AnimateChanges:         true,
		AnimationDuration:      200,
	}
}

// HasMeta reports whether any of the week, day-number or holiday lines is enabled
func (s State) HasMeta() bool {
	return s.ShowWeek || s.ShowDayNumber || s.ShowHoliday
}
