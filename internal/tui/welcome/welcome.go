// Package welcome renders the welcome screen: an icon to create a new
// document and an icon to open an existing one, arranged to suit the shape of
// the terminal.
package welcome

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/svgedit/svgedit/internal/layout"
	"github.com/svgedit/svgedit/internal/logging"
	"github.com/svgedit/svgedit/internal/resources"
	"github.com/svgedit/svgedit/internal/tui"
	"github.com/svgedit/svgedit/internal/tui/keys"
)

const (
	newIcon = iota
	openIcon
)

var actions = [2]tui.Action{
	newIcon:  tui.NewAction,
	openIcon: tui.OpenAction,
}

type Model struct {
	icons   [2]tui.Focusable
	focused int

	width  int
	height int

	logger logging.Interface
}

func New(res resources.Provider, logger logging.Interface) *Model {
	m := &Model{
		icons: [2]tui.Focusable{
			newIcon:  iconField(res, logger, resources.IconNew, resources.MenuNew),
			openIcon: iconField(res, logger, resources.IconOpen, resources.MenuOpen),
		},
		logger: logger,
	}
	m.icons[m.focused].Focus()
	return m
}

// iconField constructs a widget showing the image at path, or, if the image
// cannot be loaded, a button with the given label.
func iconField(res resources.Provider, logger logging.Interface, path string, label resources.ID) tui.Focusable {
	img, err := res.Image(path)
	if err != nil {
		logger.Warn("loading icon; falling back to button", "path", path, "error", err)
		return tui.NewButton(res.String(label))
	}
	return tui.NewIcon(img)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		arr := m.Arrangement()
		m.logger.Debug("arranged welcome icons",
			"orientation", arr.Orientation,
			"width", m.width,
			"height", m.height,
		)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Navigation.Left, keys.Navigation.Up):
			m.focus(newIcon)
		case key.Matches(msg, keys.Navigation.Right, keys.Navigation.Down):
			m.focus(openIcon)
		case key.Matches(msg, keys.Global.Enter):
			return tui.Perform(actions[m.focused])
		}
	}
	return nil
}

func (m *Model) focus(i int) {
	m.icons[m.focused].Blur()
	m.focused = i
	m.icons[m.focused].Focus()
}

// Focused returns the action of the focused icon.
func (m *Model) Focused() tui.Action {
	return actions[m.focused]
}

// Arrangement lays out the icons within the current size of the screen.
func (m *Model) Arrangement() layout.Arrangement {
	return layout.Arrange(
		layout.Size{Width: m.width, Height: m.height},
		m.icons[newIcon],
		m.icons[openIcon],
	)
}

func (m *Model) View() string {
	arr := m.Arrangement()
	canvas := tui.Compose(arr.Extent.Width, arr.Extent.Height,
		tui.Placement{Rect: arr.A, View: m.icons[newIcon].View()},
		tui.Placement{Rect: arr.B, View: m.icons[openIcon].View()},
	)
	if canvas == "" {
		return ""
	}
	return tui.VerticalGradient(canvas, tui.DarkViolet, tui.DimGrey)
}

func (m *Model) Title() string {
	return "Welcome"
}

func (m *Model) HelpBindings() []key.Binding {
	return []key.Binding{
		keys.Navigation.Left,
		keys.Navigation.Right,
		keys.Global.Enter,
	}
}
