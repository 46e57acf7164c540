package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/svgedit/svgedit/internal/resources"
)

// Widget is a renderable element with an intrinsic size.
type Widget interface {
	View() string
	PreferredWidth() int
	PreferredHeight() int
}

// Focusable is a widget that can be focused.
type Focusable interface {
	Widget
	Focus()
	Blur()
	Focused() bool
}

// Label is a styled line, or lines, of text.
type Label struct {
	Text  string
	Style lipgloss.Style
}

func NewLabel(text string) *Label {
	return &Label{Text: text, Style: Regular}
}

func (l *Label) View() string         { return l.Style.Render(l.Text) }
func (l *Label) PreferredWidth() int  { return Width(l.View()) }
func (l *Label) PreferredHeight() int { return Height(l.View()) }

var (
	iconStyle = Regular.Copy().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(BlurredBorder).
			Padding(0, 1)
	focusedIconStyle = iconStyle.Copy().
				BorderForeground(FocusedBorder).
				Foreground(FocusedBorder).
				Bold(true)

	buttonStyle = Regular.Copy().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(BlurredBorder).
			Padding(0, 3)
	focusedButtonStyle = buttonStyle.Copy().
				BorderForeground(FocusedBorder).
				Background(FocusedBorder).
				Foreground(Black).
				Bold(true)
)

// Icon renders an image. Its size is the same whether or not it is focused.
type Icon struct {
	Image   resources.Image
	focused bool
}

func NewIcon(img resources.Image) *Icon {
	return &Icon{Image: img}
}

func (i *Icon) View() string {
	style := iconStyle
	if i.focused {
		style = focusedIconStyle
	}
	return style.Render(i.Image.String())
}

func (i *Icon) PreferredWidth() int  { return Width(i.View()) }
func (i *Icon) PreferredHeight() int { return Height(i.View()) }
func (i *Icon) Focus()               { i.focused = true }
func (i *Icon) Blur()                { i.focused = false }
func (i *Icon) Focused() bool        { return i.focused }

// Button is a bordered text label.
type Button struct {
	Label   string
	focused bool
}

func NewButton(label string) *Button {
	return &Button{Label: label}
}

func (b *Button) View() string {
	style := buttonStyle
	if b.focused {
		style = focusedButtonStyle
	}
	return style.Render(b.Label)
}

func (b *Button) PreferredWidth() int  { return Width(b.View()) }
func (b *Button) PreferredHeight() int { return Height(b.View()) }
func (b *Button) Focus()               { b.focused = true }
func (b *Button) Blur()                { b.focused = false }
func (b *Button) Focused() bool        { return b.focused }
