// Package top provides the main screen: a header, the current screen, and a
// footer, along with the menu, prompts and help shown over the current
// screen.
package top

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/svgedit/svgedit/internal/document"
	"github.com/svgedit/svgedit/internal/logging"
	"github.com/svgedit/svgedit/internal/pane"
	"github.com/svgedit/svgedit/internal/resources"
	"github.com/svgedit/svgedit/internal/tui"
	"github.com/svgedit/svgedit/internal/tui/keys"
	"github.com/svgedit/svgedit/internal/tui/logs"
	"github.com/svgedit/svgedit/internal/tui/tabs"
	"github.com/svgedit/svgedit/internal/tui/welcome"
)

const (
	headerHeight         = 2
	horizontalRuleHeight = 1
	messageFooterHeight  = 1

	dumpFile = "messages.log"
)

var ErrMissingLogger = errors.New("missing logger")

type Options struct {
	Resources resources.Provider
	Logger    *logging.Logger
	FirstPage tui.Kind
	// Looping wraps tab navigation around at the first and last tabs.
	Looping bool
	// Debug dumps every message to messages.log.
	Debug bool

	NewAction  Action
	OpenAction Action
}

// Model is the main screen.
type Model struct {
	*navigator

	resources resources.Provider
	logger    *logging.Logger
	title     string

	newAction  Action
	openAction Action
	// number of untitled documents created thus far
	untitled int

	editor *editor
	menu   *menu

	width  int
	height int

	showHelp bool
	showMenu bool

	showQuitPrompt bool
	quitPrompt     textinput.Model

	// openPrompt is non-nil while the user is entering the path of a document
	// to open.
	openPrompt *textinput.Model

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string

	dump *os.File
}

// New constructs the main screen.
func New(opts Options) (*Model, error) {
	if opts.Logger == nil {
		return nil, ErrMissingLogger
	}
	if opts.Resources == nil {
		res, err := resources.New()
		if err != nil {
			return nil, err
		}
		opts.Resources = res
	}

	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile(dumpFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
	}

	editor, err := newEditor(opts)
	if err != nil {
		return nil, err
	}
	navigator, err := newNavigator(opts.FirstPage, map[tui.Kind]tui.ChildModel{
		tui.WelcomeKind: welcome.New(opts.Resources, opts.Logger),
		tui.EditorKind:  editor,
	})
	if err != nil {
		return nil, err
	}

	m := &Model{
		navigator:  navigator,
		resources:  opts.Resources,
		logger:     opts.Logger,
		title:      resources.ScreenTitle(opts.Resources),
		newAction:  opts.NewAction,
		openAction: opts.OpenAction,
		editor:     editor,
		dump:       dump,
	}
	m.menu = newMenu(opts.Resources.String(resources.MenuTitle),
		menuItem{label: opts.Resources.String(resources.MenuNew), ordinal: 0, priority: 0, action: tui.NewAction},
		menuItem{label: opts.Resources.String(resources.MenuOpen), ordinal: 0, priority: 1, action: tui.OpenAction},
	)
	return m, nil
}

// newEditor constructs the editor with its canvas and logs panes.
func newEditor(opts Options) (*editor, error) {
	set := tabs.New(pane.New(pane.WithLooping(opts.Looping)))
	canvas := &placeholder{text: opts.Resources.String(resources.CanvasEmpty)}
	if _, err := set.AddPane(tabs.Title(opts.Resources.String(resources.TabsCanvas)), canvas, false); err != nil {
		return nil, fmt.Errorf("adding canvas pane: %w", err)
	}
	if _, err := set.AddPane(tabs.Title(opts.Resources.String(resources.TabsLogs)), logs.New(opts.Logger), false); err != nil {
		return nil, fmt.Errorf("adding logs pane: %w", err)
	}
	return &editor{tabs: set}, nil
}

// AddDocument adds a pane for the document to the editor and selects it.
func (m *Model) AddDocument(doc *document.Document) (tea.Cmd, error) {
	cmd, err := m.editor.tabs.AddPane(tabs.Title(doc.Name), &documentView{doc: doc, resources: m.resources}, true)
	if err != nil {
		return nil, err
	}
	m.logger.Info("added document", "document", doc)
	return cmd, nil
}

// Panes returns the editor's pane model.
func (m *Model) Panes() *pane.Model {
	return m.editor.tabs.Model()
}

func (m *Model) Init() tea.Cmd {
	return m.currentModel().Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case m.showQuitPrompt:
			switch {
			case key.Matches(keyMsg, keys.Global.Quit):
				// pressing ctrl-c again quits the app
				return m, tea.Quit
			case key.Matches(keyMsg, localKeys.Yes):
				return m, tea.Quit
			default:
				// any other key closes the prompt and returns to the app
				m.showQuitPrompt = false
				m.info = "canceled quitting"
				return m, nil
			}
		case m.openPrompt != nil:
			switch {
			case key.Matches(keyMsg, keys.Global.Enter):
				return m, m.submitOpenPrompt()
			case keyMsg.Type == tea.KeyEsc, key.Matches(keyMsg, keys.Global.Quit):
				m.openPrompt = nil
				m.info = "canceled opening document"
				return m, nil
			default:
				var cmd tea.Cmd
				*m.openPrompt, cmd = m.openPrompt.Update(keyMsg)
				return m, cmd
			}
		case m.showMenu:
			return m, m.updateMenu(keyMsg)
		}
	}

	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height

		// amend msg to account for header etc, and forward below to all
		// screens.
		msg = tea.WindowSizeMsg{
			Width:  m.viewWidth(),
			Height: m.viewHeight(),
		}
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil

		switch {
		case key.Matches(msg, keys.Global.Quit):
			// ctrl-c quits the app, but not before prompting the user for
			// confirmation.
			m.quitPrompt = textinput.New()
			m.quitPrompt.Prompt = ""
			m.quitPrompt.Focus()
			m.showQuitPrompt = true
			return m, textinput.Blink
		case key.Matches(msg, keys.Global.Escape):
			// <esc> closes help or goes back to the last screen
			if m.showHelp {
				m.showHelp = false
			} else if cmd, ok := m.pop(); ok {
				return m, cmd
			}
		case key.Matches(msg, keys.Global.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Global.Menu):
			m.menu.reset()
			m.showMenu = true
		case key.Matches(msg, keys.Global.New):
			return m, m.perform(tui.NewAction)
		case key.Matches(msg, keys.Global.Open):
			return m, m.perform(tui.OpenAction)
		case key.Matches(msg, keys.Global.Welcome):
			return m, tui.PushScreen(tui.WelcomeKind)
		case key.Matches(msg, keys.Global.Editor):
			return m, tui.PushScreen(tui.EditorKind)
		default:
			// Send other keys to the current screen.
			return m, m.updateCurrent(msg)
		}
	case tui.PushScreenMsg:
		cmd, err := m.push(tui.Kind(msg))
		if err != nil {
			return m, tui.ReportError(err, "showing screen")
		}
		m.logger.Debug("showing screen", "screen", tui.Kind(msg))
		cmds = append(cmds, cmd)
	case tui.PopScreenMsg:
		cmd, _ := m.pop()
		cmds = append(cmds, cmd)
	case tui.ActionMsg:
		cmds = append(cmds, m.perform(tui.Action(msg)))
	case tabs.SelectionChangedMsg:
		m.logger.Debug("selected pane", "index", msg.Index)
	case tui.ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			msg := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in footer as well as log it.
			m.err = fmt.Errorf("%s: %w", msg, err)
			m.logger.Error(msg, "error", err)
		}
	case tui.InfoMsg:
		m.info = string(msg)
	default:
		// Remaining messages, such as cursor blinks and log events, go to the
		// prompts and to every screen.
		if m.showQuitPrompt {
			var cmd tea.Cmd
			m.quitPrompt, cmd = m.quitPrompt.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.openPrompt != nil {
			var cmd tea.Cmd
			*m.openPrompt, cmd = m.openPrompt.Update(msg)
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.updateAll(msg)...)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Global.Quit):
		m.showMenu = false
		return tui.ReportInfo("closed menu")
	case key.Matches(msg, keys.Navigation.Up):
		m.menu.up()
	case key.Matches(msg, keys.Navigation.Down):
		m.menu.down()
	case key.Matches(msg, keys.Global.Enter):
		m.showMenu = false
		if item, ok := m.menu.selected(); ok {
			return m.perform(item.action)
		}
	case key.Matches(msg, keys.Global.Escape, keys.Global.Menu):
		m.showMenu = false
	}
	return nil
}

var (
	titleStyle       = tui.Bold.Copy().Foreground(tui.Pink).Margin(0, 1)
	screenTitleStyle = tui.Regular.Copy().Margin(0, 1)
	statusStyle      = tui.Regular.Copy().Foreground(tui.Grey)
)

func (m *Model) View() string {
	var (
		content           string
		shortHelpBindings []key.Binding
	)

	var currentHelpBindings []key.Binding
	if bindings, ok := m.currentModel().(tui.ModelHelpBindings); ok {
		currentHelpBindings = bindings.HelpBindings()
	}

	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().
			Margin(1).
			Render(
				fullHelpView(
					helpSection{heading: "SCREEN", bindings: currentHelpBindings},
					helpSection{heading: "GENERAL", bindings: keys.KeyMapToSlice(keys.Global)},
					helpSection{heading: "NAVIGATION", bindings: keys.KeyMapToSlice(keys.Navigation)},
				),
			)
		shortHelpBindings = []key.Binding{
			key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "close help"),
			),
		}
	case m.showQuitPrompt:
		content = lipgloss.NewStyle().
			Margin(0, 1).
			Render(fmt.Sprintf("Quit %s? (y/N): %s", m.appName(), m.quitPrompt.View()))
	case m.showMenu:
		content = lipgloss.Place(m.viewWidth(), m.viewHeight(), lipgloss.Center, lipgloss.Center, m.menu.View())
		shortHelpBindings = m.menu.HelpBindings()
	default:
		content = m.currentModel().View()
		shortHelpBindings = append(
			currentHelpBindings,
			keys.KeyMapToSlice(keys.Global)...,
		)
	}

	// Render the application title and, beneath it, the title and status of
	// the current screen.
	var screenTitle string
	if titled, ok := m.currentModel().(tui.ModelTitle); ok {
		screenTitle = titled.Title()
	}
	if statusable, ok := m.currentModel().(tui.ModelStatus); ok {
		if status := statusable.Status(); status != "" {
			screenTitle += " " + statusStyle.Render(status)
		}
	}
	titles := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		screenTitleStyle.Render(screenTitle),
	)

	// Render help bindings to the right of the titles, using the remaining
	// width less the width of the help's margins.
	shortHelpWidth := max(0, m.width-tui.Width(titles)-4)
	shortHelp := lipgloss.NewStyle().
		Margin(0, 0, 0, 4).
		Render(shortHelpView(shortHelpBindings, shortHelpWidth))

	// Render the open prompt or any info/error message in the footer.
	var footer string
	switch {
	case m.openPrompt != nil:
		footer = tui.Padded.Render(m.openPrompt.View())
	case m.err != nil:
		footer = tui.Padded.Copy().
			Foreground(tui.Red).
			Render("Error: " + m.err.Error())
	case m.info != "":
		footer = tui.Padded.Copy().
			Foreground(tui.Black).
			Render(m.info)
	}

	return lipgloss.JoinVertical(
		lipgloss.Top,
		// header
		lipgloss.NewStyle().
			Height(headerHeight).
			MaxHeight(headerHeight).
			Render(lipgloss.JoinHorizontal(lipgloss.Top, titles, shortHelp)),
		// horizontal rule
		strings.Repeat("─", max(0, m.width)),
		// content
		lipgloss.NewStyle().
			Height(m.viewHeight()).
			MaxHeight(m.viewHeight()).
			Render(content),
		// horizontal rule
		strings.Repeat("─", max(0, m.width)),
		// footer
		tui.Regular.Copy().
			Inline(true).
			MaxWidth(m.width).
			Width(m.width).
			Render(footer),
	)
}

// appName is the title of the application without its version.
func (m *Model) appName() string {
	if title, err := m.resources.Title(); err == nil {
		return title
	}
	return resources.DefaultTitle
}

// viewHeight retrieves the height available beneath the header and above the
// footer.
func (m *Model) viewHeight() int {
	return max(0, m.height-headerHeight-2*horizontalRuleHeight-messageFooterHeight)
}

// viewWidth retrieves the width available within the main view
func (m *Model) viewWidth() int {
	return m.width
}
