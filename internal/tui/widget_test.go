package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/svgedit/svgedit/internal/resources"
)

func TestLabel(t *testing.T) {
	l := NewLabel("hello\nworld!")

	assert.Equal(t, 6, l.PreferredWidth())
	assert.Equal(t, 2, l.PreferredHeight())
}

func TestIcon(t *testing.T) {
	icon := NewIcon(resources.Image{"abc", "de"})

	// border and padding surround the image
	assert.Equal(t, 7, icon.PreferredWidth())
	assert.Equal(t, 4, icon.PreferredHeight())

	icon.Focus()
	assert.True(t, icon.Focused())
	assert.Equal(t, 7, icon.PreferredWidth(), "focus should not change size")
	assert.Equal(t, 4, icon.PreferredHeight())

	icon.Blur()
	assert.False(t, icon.Focused())
}

func TestButton(t *testing.T) {
	button := NewButton("Open")

	assert.Equal(t, 12, button.PreferredWidth())
	assert.Equal(t, 3, button.PreferredHeight())
	assert.Contains(t, button.View(), "Open")

	button.Focus()
	assert.True(t, button.Focused())
	assert.Equal(t, 12, button.PreferredWidth())
}
