package top

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hokaccha/go-prettyjson"
	"github.com/svgedit/svgedit/internal/document"
	"github.com/svgedit/svgedit/internal/resources"
	"github.com/svgedit/svgedit/internal/tui"
	"github.com/svgedit/svgedit/internal/tui/tabs"
)

// editor shows a tab for each pane: the canvas, the logs, and every
// document created or opened.
type editor struct {
	tabs tabs.TabSet
}

func (e *editor) Init() tea.Cmd {
	return nil
}

func (e *editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.tabs, cmd = e.tabs.Update(msg)
	return cmd
}

func (e *editor) View() string {
	return e.tabs.View()
}

func (e *editor) Title() string {
	return "Editor"
}

func (e *editor) Status() string {
	model := e.tabs.Model()
	if model.Len() == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", model.Index()+1, model.Len())
}

func (e *editor) HelpBindings() []key.Binding {
	return e.tabs.HelpBindings()
}

// placeholder is the content of the canvas pane.
type placeholder struct {
	text   string
	width  int
	height int
}

func (p *placeholder) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *placeholder) View() string {
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center,
		tui.Regular.Copy().Foreground(tui.Grey).Render(p.text),
	)
}

var documentNameStyle = tui.Bold.Copy().Foreground(tui.Pink)

// documentView describes a document. Documents are not rendered.
type documentView struct {
	doc       *document.Document
	resources resources.Provider
}

func (v *documentView) View() string {
	status := v.resources.String(resources.DocumentUnsaved)
	if v.doc.Saved() {
		status = v.doc.Path
	}
	details, err := prettyjson.Marshal(v.doc)
	if err != nil {
		details = []byte(err.Error())
	}
	return tui.Padded.Render(lipgloss.JoinVertical(lipgloss.Left,
		documentNameStyle.Render(v.doc.Name)+" "+tui.Regular.Copy().Foreground(tui.Grey).Render(status),
		"",
		string(details),
		"",
		v.resources.String(resources.DocumentUnrendered),
	))
}
