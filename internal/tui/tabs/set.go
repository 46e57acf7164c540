package tabs

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/svgedit/svgedit/internal/pane"
	"github.com/svgedit/svgedit/internal/tui"
	"github.com/svgedit/svgedit/internal/tui/keys"
)

// TabSet renders a pane model, one tab per pane, and maps keys onto pane
// navigation.
type TabSet struct {
	model *pane.Model

	// number of selection changes not yet reported
	changes *int

	// Width and height of the whole tab set, including the tab headers.
	width  int
	height int
}

func New(model *pane.Model) TabSet {
	changes := new(int)
	model.OnChange(func() { *changes++ })
	return TabSet{
		model:   model,
		changes: changes,
	}
}

// Model returns the pane model rendered by the tab set.
func (m TabSet) Model() *pane.Model {
	return m.model
}

// AddPane appends a pane and, if selected is true, makes it the current
// pane.
func (m TabSet) AddPane(title, content pane.Widget, selected bool) (tea.Cmd, error) {
	p, err := pane.NewPane(title, content)
	if err != nil {
		return nil, err
	}
	if err := m.model.Add(p); err != nil {
		return nil, err
	}
	if r, ok := content.(Resizer); ok {
		r.SetSize(m.contentWidth(), m.contentHeight())
	}
	if selected {
		if err := m.model.Select(m.model.Len() - 1); err != nil {
			return nil, err
		}
	}
	return m.selectionChanged(), nil
}

func (m TabSet) Init() tea.Cmd {
	return nil
}

func (m TabSet) Update(msg tea.Msg) (TabSet, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var err error
		switch {
		case key.Matches(msg, keys.Navigation.TabNext):
			err = m.model.Next()
		case key.Matches(msg, keys.Navigation.TabLast):
			err = m.model.Previous()
		case key.Matches(msg, keys.Navigation.TabSelect):
			// Numbers beyond the last tab have no tab to select.
			if i, ok := keys.TabIndex(msg); ok && i < m.model.Len() {
				err = m.model.Select(i)
			}
		default:
			// Send other keys to the current pane only.
			cmds = append(cmds, m.updateCurrent(msg))
		}
		if err != nil {
			cmds = append(cmds, tui.ReportError(err, "switching tab"))
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeAll()
	default:
		cmds = append(cmds, m.updateAll(msg))
	}
	cmds = append(cmds, m.selectionChanged())

	return m, tea.Batch(cmds...)
}

// selectionChanged reports any selection changes made since it was last
// called.
func (m TabSet) selectionChanged() tea.Cmd {
	if *m.changes == 0 {
		return nil
	}
	*m.changes = 0
	return tui.CmdHandler(SelectionChangedMsg{Index: m.model.Index()})
}

func (m TabSet) updateCurrent(msg tea.Msg) tea.Cmd {
	current, err := m.model.Current()
	if err != nil {
		return nil
	}
	if u, ok := current.Content().(Updater); ok {
		return u.Update(msg)
	}
	return nil
}

func (m TabSet) updateAll(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.model.Panes() {
		if u, ok := p.Content().(Updater); ok {
			cmds = append(cmds, u.Update(msg))
		}
	}
	return tea.Batch(cmds...)
}

func (m TabSet) resizeAll() {
	for _, p := range m.model.Panes() {
		if r, ok := p.Content().(Resizer); ok {
			r.SetSize(m.contentWidth(), m.contentHeight())
		}
	}
}

// HelpBindings returns the bindings of the current pane, if it has any,
// followed by the tab bindings.
func (m TabSet) HelpBindings() []key.Binding {
	var bindings []key.Binding
	if current, err := m.model.Current(); err == nil {
		if h, ok := current.Content().(tui.ModelHelpBindings); ok {
			bindings = append(bindings, h.HelpBindings()...)
		}
	}
	return append(bindings,
		keys.Navigation.TabNext,
		keys.Navigation.TabLast,
		keys.Navigation.TabSelect,
	)
}

var (
	activeTabStyle   = tui.Bold.Copy().Foreground(tui.ActiveTabColor)
	inactiveTabStyle = tui.Regular.Copy().Foreground(tui.InactiveTabColor).Faint(true)
)

func (m TabSet) View() string {
	var (
		tabHeaders       []string
		tabsHeadersWidth int
	)
	for i, title := range m.model.Titles() {
		var (
			headingStyle  lipgloss.Style
			underlineChar string
		)
		if i == m.model.Index() {
			headingStyle = activeTabStyle
			underlineChar = "━"
		} else {
			headingStyle = inactiveTabStyle
			underlineChar = "─"
		}
		heading := headingStyle.Copy().Padding(0, 1).Render(title.View())
		underline := headingStyle.Render(strings.Repeat(underlineChar, tui.Width(heading)))
		tabHeaders = append(tabHeaders, lipgloss.JoinVertical(lipgloss.Top, heading, underline))
		tabsHeadersWidth += tui.Width(heading)
	}

	// Populate remaining space to the right of the tab headers with a faint
	// underline.
	remainingWidth := max(0, m.width-tabsHeadersWidth)
	tabHeaders = append(tabHeaders, lipgloss.JoinVertical(lipgloss.Top,
		"",
		inactiveTabStyle.Render(strings.Repeat("─", remainingWidth)),
	))
	tabHeadersContainer := lipgloss.JoinHorizontal(lipgloss.Bottom, tabHeaders...)

	var content string
	if current, err := m.model.Current(); err == nil {
		content = current.Content().View()
	}
	return lipgloss.JoinVertical(lipgloss.Top,
		tabHeadersContainer,
		tui.Regular.Copy().
			Width(m.contentWidth()).
			Height(m.contentHeight()).
			MaxHeight(m.contentHeight()).
			Render(content),
	)
}

func (m TabSet) contentWidth() int {
	return max(0, m.width)
}

func (m TabSet) contentHeight() int {
	return max(0, m.height-tabHeaderHeight)
}
