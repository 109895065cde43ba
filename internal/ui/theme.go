package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme holds the styles the views render with. Only the accent color
// is configurable; everything else derives from it or from a fixed
// gray ramp.
type Theme struct {
	Accent string

	Title    lipgloss.Style
	Hint     lipgloss.Style
	Muted    lipgloss.Style
	Track    lipgloss.Style
	Artist   lipgloss.Style
	Playing  lipgloss.Style
	Selected lipgloss.Style
	Overlay  lipgloss.Style

	BorderActive   lipgloss.Style
	BorderInactive lipgloss.Style

	gaugeRamp []string
}

const gaugeRampSteps = 8

// newTheme builds a theme around the given accent hex color.
func newTheme(accent string) Theme {
	accentColor := lipgloss.Color(accent)
	muted := lipgloss.Color("240")

	t := Theme{
		Accent: accent,
		Title: lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true),
		Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Muted:  lipgloss.NewStyle().Foreground(muted),
		Track:  lipgloss.NewStyle().Bold(true),
		Artist: lipgloss.NewStyle().Foreground(accentColor),
		Playing: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(accentColor).
			Foreground(lipgloss.Color("16")).
			Bold(true),
		Overlay: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		BorderActive:   lipgloss.NewStyle().Foreground(accentColor),
		BorderInactive: lipgloss.NewStyle().Foreground(muted),
	}
	t.gaugeRamp = gaugeRamp(accent)
	return t
}

// gaugeRamp precomputes a brightness gradient for the progress gauge,
// dark at the left edge rising to the full accent at the right.
func gaugeRamp(accent string) []string {
	base, err := colorful.Hex(accent)
	if err != nil {
		base, _ = colorful.Hex("#00b7c3")
	}
	dark := base.BlendLuv(colorful.Color{R: 0.05, G: 0.05, B: 0.08}, 0.6)

	ramp := make([]string, gaugeRampSteps)
	for i := range ramp {
		t := float64(i) / float64(gaugeRampSteps-1)
		ramp[i] = dark.BlendLuv(base, t).Clamped().Hex()
	}
	return ramp
}

// gaugeColor returns the ramp color for position i of width n.
func (t Theme) gaugeColor(i, n int) lipgloss.Color {
	if n <= 0 || len(t.gaugeRamp) == 0 {
		return lipgloss.Color(t.Accent)
	}
	idx := i * len(t.gaugeRamp) / n
	if idx >= len(t.gaugeRamp) {
		idx = len(t.gaugeRamp) - 1
	}
	return lipgloss.Color(t.gaugeRamp[idx])
}
