package top

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svgedit/svgedit/internal/document"
	"github.com/svgedit/svgedit/internal/tui"
)

func TestModel_NoActions(t *testing.T) {
	m := setup(t, Options{})

	assert.Nil(t, m.NewAction())
	assert.Nil(t, m.OpenAction())

	invoked, cmd := m.DoNewAction()
	assert.False(t, invoked)
	assert.Nil(t, cmd)

	invoked, cmd = m.DoOpenAction()
	assert.False(t, invoked)
	assert.Nil(t, cmd)

	send(m, keyPress("n"))
	assert.Equal(t, "new is not available", m.info)
}

func TestModel_SetActions(t *testing.T) {
	m := setup(t, Options{})

	var ran []string
	m.SetNewAction(ActionFunc(func(*Model) tea.Cmd {
		ran = append(ran, "new")
		return nil
	}))
	m.SetOpenAction(ActionFunc(func(*Model) tea.Cmd {
		ran = append(ran, "open")
		return nil
	}))
	require.NotNil(t, m.NewAction())
	require.NotNil(t, m.OpenAction())

	invoked, _ := m.DoNewAction()
	assert.True(t, invoked)
	invoked, _ = m.DoOpenAction()
	assert.True(t, invoked)
	assert.Equal(t, []string{"new", "open"}, ran)

	m.SetNewAction(nil)
	invoked, _ = m.DoNewAction()
	assert.False(t, invoked)
}

func TestNewDocumentAction(t *testing.T) {
	m := setup(t, Options{
		FirstPage: tui.WelcomeKind,
		NewAction: NewDocumentAction,
	})

	send(m, keyPress("n"))

	assert.Equal(t, tui.EditorKind, m.currentKind())
	assert.Equal(t, 3, m.Panes().Len())
	assert.Equal(t, 2, m.Panes().Index())
	assert.Equal(t, "Untitled-1", currentTitle(t, m))
	assert.Contains(t, m.View(), "not saved")

	send(m, keyPress("n"))
	assert.Equal(t, "Untitled-2", currentTitle(t, m))
}

func TestOpenDocumentAction(t *testing.T) {
	m := setup(t, Options{
		FirstPage:  tui.WelcomeKind,
		OpenAction: OpenDocumentAction,
	})

	send(m, keyPress("o"))
	require.NotNil(t, m.openPrompt)
	assert.Contains(t, m.View(), "Open file: ")

	// keys are entered into the prompt rather than acted upon
	send(m, keyPress("/tmp/new/drawing.svg"))
	assert.Equal(t, tui.WelcomeKind, m.currentKind())

	send(m, keyPress("enter"))
	assert.Nil(t, m.openPrompt)
	assert.Equal(t, tui.EditorKind, m.currentKind())
	assert.Equal(t, "drawing.svg", currentTitle(t, m))
}

func TestOpenDocumentAction_EmptyPath(t *testing.T) {
	m := setup(t, Options{OpenAction: OpenDocumentAction})

	send(m, keyPress("o"))
	send(m, keyPress("enter"))

	assert.ErrorIs(t, m.err, document.ErrEmptyPath)
	assert.Equal(t, 2, m.Panes().Len())
}

func TestOpenDocumentAction_Cancel(t *testing.T) {
	m := setup(t, Options{OpenAction: OpenDocumentAction})

	send(m, keyPress("o"))
	send(m, keyPress("esc"))

	assert.Nil(t, m.openPrompt)
	assert.Equal(t, "canceled opening document", m.info)
	assert.Equal(t, 2, m.Panes().Len())
}

func TestWelcomeActions(t *testing.T) {
	m := setup(t, Options{
		FirstPage:  tui.WelcomeKind,
		NewAction:  NewDocumentAction,
		OpenAction: OpenDocumentAction,
	})

	// move focus to the open icon and choose it
	send(m, keyPress("right"))
	send(m, keyPress("enter"))

	assert.NotNil(t, m.openPrompt)
}
