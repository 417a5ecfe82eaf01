package style

import (
	"fmt"
	"strconv"

	"github.com/username/holiday-clock/internal/clock"
)

// Background holds the panel behind the clock
type Background struct {
	Color          string
	BackdropFilter string
	BorderRadius   string
	Padding        string
}

// Computed is the set of CSS values derived from a clock state
type Computed struct {
	FontStack     string
	InfoFontStack string
	Color         string
	Shadow        string
	InfoShadow    string
	Gradient      string // empty when the gradient is off
	Outline       string
	Background    *Background // nil when the background is hidden
	Left          string
	Top           string
}

// Styles computes the CSS values for s
func Styles(s clock.State) Computed {
	c := Computed{
		FontStack:     FontStack(s.FontIndex),
		InfoFontStack: FontStack(s.InfoFontIndex),
		Color:         ColorToCSS(s.Color),
		Shadow:        "none",
		InfoShadow:    "none",
		Outline:       "none",
		Left:          percent(s.PosX),
		Top:           percent(s.PosY),
	}

	if s.Shadow {
		c.Shadow = ShadowCSS(s.ShadowColor, s.ShadowBlur, s.ShadowDistance, s.ShadowAngle, s.ShadowOpacity)
	}
	if s.InfoShadow {
		c.InfoShadow = ShadowCSS(s.InfoShadowColor, s.InfoShadowBlur, s.InfoShadowDistance, s.InfoShadowAngle, s.InfoShadowOpacity)
	}
	if s.TextGradient {
		c.Gradient = GradientCSS(s.TextGradientStart, s.TextGradientEnd, s.TextGradientAngle)
	}
	if s.TextOutline {
		c.Outline = fmt.Sprintf("-webkit-text-stroke: %spx %s", formatNumber(s.TextOutlineWidth), ColorToCSS(s.TextOutlineColor))
	}

	if s.ShowBackground {
		filter := "none"
		if s.BackgroundBlur > 0 {
			filter = fmt.Sprintf("blur(%spx)", formatNumber(s.BackgroundBlur))
		}
		c.Background = &Background{
			Color:          ColorToCSSWithAlpha(s.BackgroundColor, s.BackgroundOpacity),
			BackdropFilter: filter,
			BorderRadius:   formatNumber(s.BackgroundBorderRadius) + "px",
			Padding:        formatNumber(s.BackgroundPadding) + "px",
		}
	}

	return c
}

func percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 3, 64) + "%"
}
