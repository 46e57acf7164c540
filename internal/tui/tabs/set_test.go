package tabs

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svgedit/svgedit/internal/pane"
	"github.com/svgedit/svgedit/internal/tui"
)

// content is pane content that records the messages and sizes it receives.
type content struct {
	text          string
	msgs          []tea.Msg
	width, height int
}

func (c *content) View() string { return c.text }

func (c *content) Update(msg tea.Msg) tea.Cmd {
	c.msgs = append(c.msgs, msg)
	return nil
}

func (c *content) SetSize(width, height int) {
	c.width, c.height = width, height
}

func setup(t *testing.T, n int, looping bool) (TabSet, []*content) {
	t.Helper()

	set := New(pane.New(pane.WithLooping(looping)))
	contents := make([]*content, n)
	for i := range n {
		contents[i] = &content{text: fmt.Sprintf("content %d", i)}
		_, err := set.AddPane(Title(fmt.Sprintf("title %d", i)), contents[i], false)
		require.NoError(t, err)
	}
	set, _ = set.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	return set, contents
}

// messages runs the command and any commands it batches, returning the
// messages they produce.
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
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func selectionChanges(cmd tea.Cmd) []SelectionChangedMsg {
	var changes []SelectionChangedMsg
	for _, msg := range messages(cmd) {
		if change, ok := msg.(SelectionChangedMsg); ok {
			changes = append(changes, change)
		}
	}
	return changes
}

var (
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
)

func TestTabSet_Looping(t *testing.T) {
	set, _ := setup(t, 3, true)

	set, cmd := set.Update(tabKey)
	assert.Equal(t, 1, set.Model().Index())
	assert.Equal(t, []SelectionChangedMsg{{Index: 1}}, selectionChanges(cmd))

	set, cmd = set.Update(shiftTabKey)
	set, cmd = set.Update(shiftTabKey)
	assert.Equal(t, 2, set.Model().Index())
	assert.Equal(t, []SelectionChangedMsg{{Index: 2}}, selectionChanges(cmd))
}

func TestTabSet_Clamped(t *testing.T) {
	set, _ := setup(t, 3, false)

	set, cmd := set.Update(shiftTabKey)
	assert.Equal(t, 0, set.Model().Index())
	assert.Empty(t, selectionChanges(cmd))

	set, _ = set.Update(tabKey)
	set, _ = set.Update(tabKey)
	set, cmd = set.Update(tabKey)
	assert.Equal(t, 2, set.Model().Index())
	assert.Empty(t, selectionChanges(cmd))
}

func TestTabSet_SelectByNumber(t *testing.T) {
	set, _ := setup(t, 3, true)

	set, cmd := set.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}, Alt: true})
	assert.Equal(t, 2, set.Model().Index())
	assert.Equal(t, []SelectionChangedMsg{{Index: 2}}, selectionChanges(cmd))

	// there is no ninth tab
	set, cmd = set.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}, Alt: true})
	assert.Equal(t, 2, set.Model().Index())
	assert.Empty(t, messages(cmd))
}

func TestTabSet_EmptyReportsError(t *testing.T) {
	set := New(pane.New())

	_, cmd := set.Update(tabKey)

	msgs := messages(cmd)
	require.Len(t, msgs, 1)
	assert.ErrorIs(t, msgs[0].(tui.ErrorMsg).Error, pane.ErrEmptyCollection)
}

func TestTabSet_ForwardsMessages(t *testing.T) {
	set, contents := setup(t, 2, true)

	// keys go to the current pane only
	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	set, _ = set.Update(key)
	assert.Equal(t, []tea.Msg{key}, contents[0].msgs)
	assert.Empty(t, contents[1].msgs)

	// other messages go to every pane
	set, _ = set.Update(tui.InfoMsg("hello"))
	assert.Contains(t, contents[0].msgs, tea.Msg(tui.InfoMsg("hello")))
	assert.Contains(t, contents[1].msgs, tea.Msg(tui.InfoMsg("hello")))
}

func TestTabSet_Resize(t *testing.T) {
	set, contents := setup(t, 2, true)

	for _, c := range contents {
		assert.Equal(t, 80, c.width)
		assert.Equal(t, 18, c.height)
	}

	// panes added later are given the current size
	late := &content{text: "late"}
	cmd, err := set.AddPane(Title("late"), late, true)
	require.NoError(t, err)
	assert.Equal(t, 80, late.width)
	assert.Equal(t, 18, late.height)
	assert.Equal(t, 2, set.Model().Index())
	assert.Equal(t, []SelectionChangedMsg{{Index: 2}}, selectionChanges(cmd))
}

func TestTabSet_AddPaneInvalid(t *testing.T) {
	set := New(pane.New())

	_, err := set.AddPane(nil, &content{}, false)
	assert.ErrorIs(t, err, pane.ErrInvalidArgument)
	assert.Equal(t, 0, set.Model().Len())
}

func TestTabSet_View(t *testing.T) {
	set, _ := setup(t, 3, true)
	set, _ = set.Update(tabKey)

	got := set.View()
	assert.Contains(t, got, "title 0")
	assert.Contains(t, got, "title 1")
	assert.Contains(t, got, "title 2")
	assert.Contains(t, got, "content 1")
	assert.NotContains(t, got, "content 0")
	assert.Equal(t, 20, tui.Height(got))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "short", Title("short").Text)

	long := Title("a-very-long-document-name-indeed.svg")
	assert.Equal(t, maxTitleWidth, tui.Width(long.Text))
	assert.Contains(t, long.Text, "…")
}
