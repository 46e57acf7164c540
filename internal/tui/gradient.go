package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Gradient returns n colours blending from one hex colour to another. Invalid
// colours are treated as black.
func Gradient(from, to string, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	start, _ := colorful.Hex(from)
	end, _ := colorful.Hex(to)

	colors := make([]lipgloss.Color, n)
	for i := range colors {
		switch {
		case i == 0:
			colors[i] = lipgloss.Color(start.Hex())
		case i == n-1:
			colors[i] = lipgloss.Color(end.Hex())
		default:
			t := float64(i) / float64(n-1)
			colors[i] = lipgloss.Color(start.BlendLab(end, t).Clamped().Hex())
		}
	}
	return colors
}

// VerticalGradient paints the background of each line of s, blending from
// one colour at the top to another at the bottom. Styled views embedded in a
// line reset all attributes when they end, so the background is applied to
// each segment between resets.
func VerticalGradient(s, from, to string) string {
	lines := strings.Split(s, "\n")
	colors := Gradient(from, to, len(lines))
	for i, line := range lines {
		lines[i] = paintBackground(line, lipgloss.NewStyle().Background(colors[i]))
	}
	return strings.Join(lines, "\n")
}

func paintBackground(line string, style lipgloss.Style) string {
	var b strings.Builder
	for _, segment := range strings.SplitAfter(line, resetSequence) {
		if segment == "" {
			continue
		}
		b.WriteString(style.Render(segment))
	}
	return b.String()
}
