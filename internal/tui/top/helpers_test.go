package top

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/svgedit/svgedit/internal/logging"
	"github.com/svgedit/svgedit/internal/tui"
	"github.com/svgedit/svgedit/internal/tui/tabs"
)

func setup(t *testing.T, opts Options) *Model {
	t.Helper()

	if opts.Logger == nil {
		opts.Logger = logging.NewLogger(logging.Options{Level: "debug"})
	}
	m, err := New(opts)
	require.NoError(t, err)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// send sends a message to the model, and then feeds back any resulting
// messages that the main screen handles itself, as the event loop would.
func send(m *Model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	drain(m, cmd)
}

func drain(m *Model, cmd tea.Cmd) {
	for _, msg := range messages(cmd) {
		switch msg.(type) {
		case tui.PushScreenMsg, tui.PopScreenMsg, tui.ActionMsg, tui.InfoMsg, tui.ErrorMsg, tabs.SelectionChangedMsg:
			send(m, msg)
		}
	}
}

func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, cmd := range batch {
			msgs = append(msgs, messages(cmd)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// currentTitle returns the title of the editor's current pane.
func currentTitle(t *testing.T, m *Model) string {
	t.Helper()

	current, err := m.Panes().Current()
	require.NoError(t, err)
	return current.Title().View()
}
