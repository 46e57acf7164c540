// Package tabs renders a pane model as a strip of tab titles above the
// content of the currently selected pane.
package tabs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/go-runewidth"
	"github.com/svgedit/svgedit/internal/tui"
)

const (
	tabHeaderHeight = 2
	maxTitleWidth   = 24
)

// SelectionChangedMsg is sent whenever a different pane is selected.
type SelectionChangedMsg struct {
	Index int
}

// Updater is implemented by pane content that handles messages. Content is
// expected to update itself in place.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// Resizer is implemented by pane content that needs to know the size of the
// area it is rendered in.
type Resizer interface {
	SetSize(width, height int)
}

// Title constructs a title widget, truncating long titles.
func Title(name string) *tui.Label {
	return tui.NewLabel(runewidth.Truncate(name, maxTitleWidth, "…"))
}
