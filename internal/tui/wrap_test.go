package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCarryColors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"colour is reset at the end of each line and restored on the next",
			"\x1b[31mmary \nhad a little \nlamb\x1b[0m",
			"\x1b[31mmary \x1b[0m\n\x1b[31mhad a little \x1b[0m\n\x1b[31mlamb\x1b[0m",
		},
		{
			"only the most recent colour is restored",
			"\x1b[32m\x1b[31mmary \nhad a little \nlamb\x1b[0m",
			"\x1b[32m\x1b[31mmary \x1b[0m\n\x1b[31mhad a little \x1b[0m\n\x1b[31mlamb\x1b[0m",
		},
		{
			"nothing is carried over after a reset",
			"\x1b[31mmary\x1b[0m \nlamb",
			"\x1b[31mmary\x1b[0m \nlamb",
		},
		{
			"plain text",
			"mary\nlamb",
			"mary\nlamb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, carryColors(tt.input))
		})
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("abcdefgh", 3)
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 3)
	}
	assert.Equal(t, "abcdefgh", strings.Join(lines, ""))

	// zero width leaves the string alone
	assert.Equal(t, "abc def", Wrap("abc def", 0))
}
