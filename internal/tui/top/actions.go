package top

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/svgedit/svgedit/internal/document"
	"github.com/svgedit/svgedit/internal/resources"
	"github.com/svgedit/svgedit/internal/tui"
)

// Action is performed on the main screen when the user chooses New or Open,
// either from the menu or from the welcome screen.
type Action interface {
	Run(m *Model) tea.Cmd
}

// ActionFunc adapts a function into an Action.
type ActionFunc func(m *Model) tea.Cmd

func (f ActionFunc) Run(m *Model) tea.Cmd {
	return f(m)
}

// NewDocumentAction adds a pane for a new untitled document and shows the
// editor.
var NewDocumentAction = ActionFunc(func(m *Model) tea.Cmd {
	m.untitled++
	cmd, err := m.AddDocument(document.New(m.untitled))
	if err != nil {
		return tui.ReportError(err, "creating document")
	}
	return tea.Batch(cmd, tui.PushScreen(tui.EditorKind))
})

// OpenDocumentAction prompts the user for the path of a document. Once
// entered, a pane is added for the document and the editor is shown.
var OpenDocumentAction = ActionFunc(func(m *Model) tea.Cmd {
	input := textinput.New()
	input.Prompt = m.resources.String(resources.PromptOpen)
	input.Focus()
	m.openPrompt = &input
	return textinput.Blink
})

// submitOpenPrompt opens the document at the path entered into the open
// prompt.
func (m *Model) submitOpenPrompt() tea.Cmd {
	path := m.openPrompt.Value()
	m.openPrompt = nil

	doc, err := document.Open(path)
	if err != nil {
		return tui.ReportError(err, "opening document")
	}
	cmd, err := m.AddDocument(doc)
	if err != nil {
		return tui.ReportError(err, "opening document")
	}
	return tea.Batch(cmd, tui.PushScreen(tui.EditorKind))
}

// SetNewAction sets the action performed when the user chooses New. A nil
// action disables it.
func (m *Model) SetNewAction(a Action) {
	m.newAction = a
}

// SetOpenAction sets the action performed when the user chooses Open. A nil
// action disables it.
func (m *Model) SetOpenAction(a Action) {
	m.openAction = a
}

func (m *Model) NewAction() Action {
	return m.newAction
}

func (m *Model) OpenAction() Action {
	return m.openAction
}

// DoNewAction performs the New action, returning false if there is no such
// action.
func (m *Model) DoNewAction() (bool, tea.Cmd) {
	return m.do(tui.NewAction, m.newAction)
}

// DoOpenAction performs the Open action, returning false if there is no such
// action.
func (m *Model) DoOpenAction() (bool, tea.Cmd) {
	return m.do(tui.OpenAction, m.openAction)
}

func (m *Model) do(kind tui.Action, a Action) (bool, tea.Cmd) {
	if a == nil {
		m.logger.Debug("no action set", "action", kind)
		return false, nil
	}
	m.logger.Debug("performing action", "action", kind)
	return true, a.Run(m)
}

// perform performs the action identified by kind, informing the user if
// there is no such action.
func (m *Model) perform(kind tui.Action) tea.Cmd {
	var (
		invoked bool
		cmd     tea.Cmd
	)
	switch kind {
	case tui.NewAction:
		invoked, cmd = m.DoNewAction()
	case tui.OpenAction:
		invoked, cmd = m.DoOpenAction()
	}
	if !invoked {
		return tui.ReportInfo("%s is not available", kind)
	}
	return cmd
}
