package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetSequence = "\x1b[0m"

// Wrap wraps s to width cells, breaking on words where possible, without
// splitting escape sequences. Any colour active at the end of a line is
// carried over to the next.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return carryColors(ansi.Wrap(ansi.Wordwrap(s, width, ""), width, ""))
}

// carryColors resets the active colour sequence at the end of each line and
// restores it at the start of the next line.
func carryColors(s string) string {
	var (
		b      strings.Builder
		seq    strings.Builder
		inSeq  bool
		active string
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\x1b':
			inSeq = true
			seq.Reset()
			seq.WriteByte(c)
		case inSeq:
			seq.WriteByte(c)
			if isFinal(c) {
				inSeq = false
				switch code := seq.String(); {
				case code == "\x1b[m", strings.HasSuffix(code, "[0m"):
					active = ""
				case c == 'm':
					active = code
				}
			}
		case c == '\n' && active != "":
			b.WriteString(resetSequence)
			b.WriteByte(c)
			b.WriteString(active)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// isFinal reports whether c ends an escape sequence.
func isFinal(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
