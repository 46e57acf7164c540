package tui

import (
	"math"
	"strings"
)

const (
	ScrollbarWidth = 1

	scrollbarThumb = "█"
	scrollbarTrack = "░"
)

// Scrollbar renders a vertical scrollbar of the given height for content of
// total lines, of which visible lines are shown starting at offset. The thumb
// fills the track when all the content is visible.
func Scrollbar(height, total, visible, offset int) string {
	if height <= 0 {
		return ""
	}
	thumb, start := height, 0
	if total > visible && total > 0 {
		ratio := float64(height) / float64(total)
		thumb = max(1, int(math.Round(float64(visible)*ratio)))
		start = max(0, min(height-thumb, int(math.Round(float64(offset)*ratio))))
	}
	rows := make([]string, height)
	for i := range rows {
		if i >= start && i < start+thumb {
			rows[i] = scrollbarThumb
		} else {
			rows[i] = scrollbarTrack
		}
	}
	return strings.Join(rows, "\n")
}
