package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	New     key.Binding
	Open    key.Binding
	Menu    key.Binding
	Welcome key.Binding
	Editor  key.Binding
	Escape  key.Binding
	Enter   key.Binding
	Quit    key.Binding
	Help    key.Binding
}

var Global = global{
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new document"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open document"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m", "f10"),
		key.WithHelp("m", "menu"),
	),
	Welcome: key.NewBinding(
		key.WithKeys("W"),
		key.WithHelp("W", "welcome"),
	),
	Editor: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "editor"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc", "`"),
		key.WithHelp("esc, `", "back"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("^c", "exit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}
