package top

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpKeyColor = lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}
	helpDescColor = lipgloss.AdaptiveColor{
		Light: "#B2B2B2",
		Dark:  "#4A4A4A",
	}

	shortHelpKeyStyle  = lipgloss.NewStyle().Foreground(helpKeyColor).Bold(true).Margin(0, 1, 0, 0)
	shortHelpDescStyle = lipgloss.NewStyle().Foreground(helpDescColor)

	longHelpHeadingStyle = lipgloss.NewStyle().Foreground(helpKeyColor).Bold(true).Margin(0, 3, 0, 0)
	longHelpKeyStyle     = lipgloss.NewStyle().Foreground(helpKeyColor).Bold(true).Margin(0, 1, 0, 0)
	longHelpDescStyle    = lipgloss.NewStyle().Foreground(helpDescColor).Margin(0, 3, 0, 0)
)

// shortHelpRows is the number of bindings stacked in each column of the
// short help. It matches the height of the header.
const shortHelpRows = headerHeight

// shortHelpView renders help for key bindings within the header, as many
// columns as fit within maxWidth.
func shortHelpView(bindings []key.Binding, maxWidth int) string {
	var (
		columns []string
		width   int
	)
	for i := 0; i < len(bindings); i += shortHelpRows {
		var (
			keys  []string
			descs []string
		)
		for _, kb := range bindings[i:min(i+shortHelpRows, len(bindings))] {
			keys = append(keys, kb.Help().Key)
			descs = append(descs, kb.Help().Desc)
		}
		var cols []string
		if len(columns) > 0 {
			cols = []string{"   "}
		}
		cols = append(cols,
			shortHelpKeyStyle.Render(strings.Join(keys, "\n")),
			shortHelpDescStyle.Render(strings.Join(descs, "\n")),
		)
		column := lipgloss.JoinHorizontal(lipgloss.Left, cols...)
		width += lipgloss.Width(column)
		if width > maxWidth {
			break
		}
		columns = append(columns, column)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

type helpSection struct {
	heading  string
	bindings []key.Binding
}

// fullHelpView renders each section as a column headed by its name, listing
// keys alongside their descriptions.
func fullHelpView(sections ...helpSection) string {
	columns := make([]string, len(sections))
	for i, section := range sections {
		keys := make([]string, len(section.bindings))
		descs := make([]string, len(section.bindings))
		for j, kb := range section.bindings {
			keys[j] = longHelpKeyStyle.Render(kb.Help().Key)
			descs[j] = longHelpDescStyle.Render(kb.Help().Desc)
		}
		columns[i] = lipgloss.JoinVertical(lipgloss.Top,
			longHelpHeadingStyle.Render(section.heading),
			lipgloss.JoinHorizontal(lipgloss.Left,
				strings.Join(keys, "\n"),
				strings.Join(descs, "\n"),
			),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, columns...)
}
