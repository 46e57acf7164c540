// Package logs renders log messages as pane content.
package logs

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/svgedit/svgedit/internal/logging"
	"github.com/svgedit/svgedit/internal/pubsub"
	"github.com/svgedit/svgedit/internal/tui"
)

const timeFormat = "2006-01-02T15:04:05.000"

// Pane shows log messages, oldest first, alongside a scrollbar. The newest
// message is followed unless the user has scrolled up.
type Pane struct {
	viewport viewport.Model
	lines    []string
}

// New constructs a pane populated with the messages logged thus far.
func New(logger *logging.Logger) *Pane {
	p := &Pane{viewport: viewport.New(0, 0)}
	for _, msg := range logger.Messages() {
		p.lines = append(p.lines, render(msg))
	}
	p.refresh()
	return p
}

func (p *Pane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pubsub.Event[logging.Message]:
		if msg.Type == pubsub.CreatedEvent {
			p.lines = append(p.lines, render(msg.Payload))
			p.refresh()
		}
		return nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// SetSize sets the size of the pane, including its scrollbar.
func (p *Pane) SetSize(width, height int) {
	p.viewport.Width = max(0, width-tui.ScrollbarWidth)
	p.viewport.Height = height
	p.refresh()
}

func (p *Pane) View() string {
	scrollbar := tui.Scrollbar(
		p.viewport.Height,
		p.viewport.TotalLineCount(),
		p.viewport.VisibleLineCount(),
		p.viewport.YOffset,
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, p.viewport.View(), scrollbar)
}

// Len returns the number of messages shown.
func (p *Pane) Len() int {
	return len(p.lines)
}

func (p *Pane) HelpBindings() []key.Binding {
	return []key.Binding{
		p.viewport.KeyMap.Up,
		p.viewport.KeyMap.Down,
		p.viewport.KeyMap.PageUp,
		p.viewport.KeyMap.PageDown,
	}
}

func (p *Pane) refresh() {
	following := p.viewport.Height == 0 || p.viewport.AtBottom()
	// Wrap lines to the width of the viewport.
	p.viewport.SetContent(tui.Wrap(strings.Join(p.lines, "\n"), p.viewport.Width))
	if following {
		p.viewport.GotoBottom()
	}
}

func render(msg logging.Message) string {
	var levelColor lipgloss.TerminalColor
	switch msg.Level {
	case "ERROR":
		levelColor = tui.ErrorLogLevel
	case "WARN":
		levelColor = tui.WarnLogLevel
	case "DEBUG":
		levelColor = tui.DebugLogLevel
	case "INFO":
		levelColor = tui.InfoLogLevel
	}

	// combine message and attributes, separated by spaces, with each
	// attribute key/value joined with a '='
	var b strings.Builder
	b.WriteString(msg.Time.Format(timeFormat))
	b.WriteRune(' ')
	b.WriteString(tui.Bold.Copy().Foreground(levelColor).Width(len("ERROR")).Render(msg.Level))
	b.WriteRune(' ')
	b.WriteString(msg.Message)
	for _, attr := range msg.Attributes {
		b.WriteRune(' ')
		b.WriteString(tui.Regular.Copy().Faint(true).Render(attr.Key + "="))
		b.WriteString(attr.Value)
	}
	return b.String()
}
