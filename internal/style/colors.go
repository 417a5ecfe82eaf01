package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ParseRGBString splits an "r g b" string into its first three components.
// Components that are not numbers come back as NaN; fewer than three
// components yields white.
func ParseRGBString(rgb string) [3]float64 {
	fields := strings.Fields(rgb)
	if len(fields) < 3 {
		return [3]float64{1, 1, 1}
	}

	var out [3]float64
	for i := range out {
		v, err := cast.ToFloat64E(fields[i])
		if err != nil {
			v = math.NaN()
		}
		out[i] = v
	}
	return out
}

// ColorToCSS converts an "r g b" string with components in [0,1] to rgb(...)
func ColorToCSS(rgb string) string {
	c := ParseRGBString(rgb)
	return fmt.Sprintf("rgb(%d, %d, %d)", to255(c[0]), to255(c[1]), to255(c[2]))
}

// ColorToCSSWithAlpha converts an "r g b" string to rgba(...) with alpha clamped to [0,1]
func ColorToCSSWithAlpha(rgb string, alpha float64) string {
	c := ParseRGBString(rgb)
	if math.IsNaN(alpha) {
		alpha = 0
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", to255(c[0]), to255(c[1]), to255(c[2]), formatNumber(Clamp01(alpha)))
}

// HexToRGBString converts "#rgb" or "#rrggbb" to an "r g b" string with three decimals
func HexToRGBString(hex string) string {
	if !strings.HasPrefix(hex, "#") {
		return "1 1 1"
	}
	if len(hex) == 4 {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	if len(hex) != 7 {
		return "1 1 1"
	}

	parts := make([]string, 0, 3)
	for i := 1; i < 7; i += 2 {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return "1 1 1"
		}
		parts = append(parts, strconv.FormatFloat(float64(v)/255, 'f', 3, 64))
	}
	return strings.Join(parts, " ")
}

// RGBStringToHex converts an "r g b" string to "#rrggbb"
func RGBStringToHex(rgb string) string {
	c := ParseRGBString(rgb)
	return fmt.Sprintf("#%02x%02x%02x", to255(c[0]), to255(c[1]), to255(c[2]))
}

// GradientCSS builds a linear-gradient between two "r g b" colors
func GradientCSS(start, end string, angle float64) string {
	return fmt.Sprintf("linear-gradient(%sdeg, %s, %s)", formatNumber(angle), ColorToCSS(start), ColorToCSS(end))
}

// ShadowCSS builds a text-shadow value. Angle is in degrees, measured clockwise
// from the positive x axis in screen coordinates.
func ShadowCSS(color string, blur, distance, angle, opacity float64) string {
	rad := angle * math.Pi / 180
	offsetX := math.Cos(rad) * distance
	offsetY := math.Sin(rad) * distance
	return fmt.Sprintf("%spx %spx %spx %s",
		strconv.FormatFloat(offsetX, 'f', 1, 64),
		strconv.FormatFloat(offsetY, 'f', 1, 64),
		formatNumber(blur),
		ColorToCSSWithAlpha(color, opacity))
}

// Clamp limits value to [min, max]
func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

// Clamp01 limits value to [0, 1]
func Clamp01(value float64) float64 {
	return Clamp(value, 0, 1)
}

// to255 maps a [0,1] component to a byte; non-finite components count as 1
func to255(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 1
	}
	return int(math.Round(Clamp01(v) * 255))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
