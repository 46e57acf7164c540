package tui

import (
	"sort"
	"strings"

	"github.com/leg100/reflow/padding"
	"github.com/leg100/reflow/truncate"
	"github.com/svgedit/svgedit/internal/layout"
)

// Placement is a rendered view positioned within a canvas.
type Placement struct {
	layout.Rect
	View string
}

// Compose renders the placements onto a canvas of exactly width by height
// cells. Each view is cropped or padded to the size of its rect. Where
// placements overlap on a row, the one further right is pushed along to the
// end of the one before it; anything extending past the canvas is cropped.
func Compose(width, height int, placements ...Placement) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	sorted := make([]Placement, len(placements))
	copy(sorted, placements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	split := make([][]string, len(sorted))
	for i, p := range sorted {
		split[i] = strings.Split(p.View, "\n")
	}

	rows := make([]string, height)
	for y := range rows {
		var (
			b      strings.Builder
			cursor int
		)
		for i, p := range sorted {
			if p.Width <= 0 || y < p.Y || y >= p.Y+p.Height {
				continue
			}
			var line string
			if row := y - p.Y; row < len(split[i]) {
				line = split[i][row]
			}
			if p.X > cursor {
				b.WriteString(strings.Repeat(" ", p.X-cursor))
				cursor = p.X
			}
			b.WriteString(fit(line, p.Width))
			cursor += p.Width
		}
		rows[y] = fit(b.String(), width)
	}
	return strings.Join(rows, "\n")
}

// fit crops or pads s to exactly w cells.
func fit(s string, w int) string {
	return padding.String(truncate.String(s, uint(w)), uint(w))
}
