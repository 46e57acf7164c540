package top

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/svgedit/svgedit/internal/tui"
	"github.com/svgedit/svgedit/internal/tui/keys"
)

// menuItem is an entry in the main screen's menu. Items are listed in order
// of ordinal; the item with the lowest priority is highlighted when the menu
// opens.
type menuItem struct {
	label    string
	ordinal  int
	priority int
	action   tui.Action
}

type menu struct {
	title  string
	items  []menuItem
	cursor int
}

func newMenu(title string, items ...menuItem) *menu {
	m := &menu{title: title, items: items}
	sort.SliceStable(m.items, func(i, j int) bool {
		return m.items[i].ordinal < m.items[j].ordinal
	})
	m.reset()
	return m
}

// reset highlights the default item.
func (m *menu) reset() {
	m.cursor = 0
	for i, item := range m.items {
		if item.priority < m.items[m.cursor].priority {
			m.cursor = i
		}
	}
}

func (m *menu) up() {
	m.cursor = max(0, m.cursor-1)
}

func (m *menu) down() {
	m.cursor = min(len(m.items)-1, m.cursor+1)
}

func (m *menu) selected() (menuItem, bool) {
	if len(m.items) == 0 {
		return menuItem{}, false
	}
	return m.items[m.cursor], true
}

var (
	menuStyle = tui.Regular.Copy().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tui.FocusedBorder).
			Padding(0, 1)
	menuTitleStyle    = tui.Bold.Copy().Foreground(tui.MenuForeground)
	menuItemStyle     = tui.Regular.Copy().Foreground(tui.MenuForeground).Padding(0, 1)
	menuSelectedStyle = menuItemStyle.Copy().Background(tui.MenuHighlight).Foreground(tui.White)
)

func (m *menu) View() string {
	width := tui.Width(m.title)
	for _, item := range m.items {
		width = max(width, tui.Width(item.label)+2)
	}
	rows := []string{menuTitleStyle.Render(m.title)}
	for i, item := range m.items {
		style := menuItemStyle
		if i == m.cursor {
			style = menuSelectedStyle
		}
		rows = append(rows, style.Copy().Width(width).Render(item.label))
	}
	return menuStyle.Render(strings.Join(rows, "\n"))
}

func (m *menu) HelpBindings() []key.Binding {
	return []key.Binding{
		keys.Navigation.Up,
		keys.Navigation.Down,
		keys.Global.Enter,
		keys.Global.Escape,
	}
}
