package style

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/username/holiday-clock/internal/clock"
)

// Renderer draws clock frames for a terminal, using the widget colors
type Renderer struct {
	r *lipgloss.Renderer
}

// NewRenderer creates a renderer whose color profile is detected from w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{r: lipgloss.NewRenderer(w)}
}

// Render lays out the time, date and meta lines centered in a block
func (r *Renderer) Render(f clock.Frame, s clock.State) string {
	timeStyle := r.r.NewStyle().
		Foreground(lipgloss.Color(RGBStringToHex(s.Color))).
		Bold(s.FontWeight >= 600)

	infoStyle := r.r.NewStyle().
		Foreground(lipgloss.Color(RGBStringToHex(s.Color))).
		Italic(s.InfoFontStyle == "italic")

	timeLine := f.Time
	if f.Suffix != "" && s.AMPMPosition != "above" && s.AMPMPosition != "below" {
		timeLine += " " + f.Suffix
	}

	var lines []string
	if f.Suffix != "" && s.AMPMPosition == "above" {
		lines = append(lines, infoStyle.Render(f.Suffix))
	}
	lines = append(lines, timeStyle.Render(timeLine))
	if f.Suffix != "" && s.AMPMPosition == "below" {
		lines = append(lines, infoStyle.Render(f.Suffix))
	}

	if f.DateLine != "" {
		lines = append(lines, infoStyle.Render(transform(f.DateLine, s.InfoTextTransform)))
	}
	for _, meta := range f.MetaLines() {
		lines = append(lines, infoStyle.Render(transform(meta, s.InfoTextTransform)))
	}

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if !s.ShowBackground {
		return block
	}

	return r.r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(RGBStringToHex(s.BackgroundColor))).
		Padding(0, 2).
		Render(block)
}

func transform(text, mode string) string {
	switch mode {
	case "uppercase":
		return strings.ToUpper(text)
	case "lowercase":
		return strings.ToLower(text)
	default:
		return text
	}
}
