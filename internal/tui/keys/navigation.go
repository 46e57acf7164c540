package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type navigation struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	TabNext   key.Binding
	TabLast   key.Binding
	TabSelect key.Binding
}

// Navigation returns key bindings for navigation.
var Navigation = navigation{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	TabNext: key.NewBinding(
		key.WithKeys("tab", "ctrl+pgdown", "]"),
		key.WithHelp("tab/]", "next tab"),
	),
	TabLast: key.NewBinding(
		key.WithKeys("shift+tab", "ctrl+pgup", "["),
		key.WithHelp("shift+tab/[", "previous tab"),
	),
	TabSelect: key.NewBinding(
		key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
		key.WithHelp("alt+1-9", "select tab"),
	),
}
