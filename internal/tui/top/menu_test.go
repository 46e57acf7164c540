package top

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/svgedit/svgedit/internal/tui"
)

func TestMenu_Order(t *testing.T) {
	m := newMenu("Menu",
		menuItem{label: "c", ordinal: 2, priority: 0},
		menuItem{label: "a", ordinal: 0, priority: 5},
		menuItem{label: "b", ordinal: 0, priority: 3},
	)

	var labels []string
	for _, item := range m.items {
		labels = append(labels, item.label)
	}
	assert.Equal(t, []string{"a", "b", "c"}, labels)

	// lowest priority is highlighted by default
	got, ok := m.selected()
	assert.True(t, ok)
	assert.Equal(t, "c", got.label)
}

func TestMenu_Cursor(t *testing.T) {
	m := newMenu("Menu",
		menuItem{label: "a", priority: 0},
		menuItem{label: "b", priority: 1},
	)

	m.up()
	assert.Equal(t, 0, m.cursor)
	m.down()
	m.down()
	assert.Equal(t, 1, m.cursor)

	m.reset()
	assert.Equal(t, 0, m.cursor)

	_, ok := newMenu("Empty").selected()
	assert.False(t, ok)
}

func TestModel_Menu(t *testing.T) {
	m := setup(t, Options{
		NewAction:  NewDocumentAction,
		OpenAction: OpenDocumentAction,
	})

	send(m, keyPress("m"))
	assert.True(t, m.showMenu)
	got := m.View()
	assert.Contains(t, got, "Menu")
	assert.Contains(t, got, "New")
	assert.Contains(t, got, "Open")

	// new is highlighted by default
	item, _ := m.menu.selected()
	assert.Equal(t, tui.NewAction, item.action)

	send(m, keyPress("down"))
	send(m, keyPress("enter"))
	assert.False(t, m.showMenu)
	assert.NotNil(t, m.openPrompt)

	// reopening the menu highlights the default again
	send(m, keyPress("esc"))
	send(m, keyPress("m"))
	item, _ = m.menu.selected()
	assert.Equal(t, tui.NewAction, item.action)

	send(m, keyPress("esc"))
	assert.False(t, m.showMenu)
}
