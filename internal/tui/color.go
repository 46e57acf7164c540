package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black     = lipgloss.Color("#000000")
	Red       = lipgloss.Color("#FF5353")
	Pink      = lipgloss.Color("205")
	Yellow    = lipgloss.Color("#DBBD70")
	Green     = lipgloss.Color("34")
	LightGrey = lipgloss.Color("245")
	Grey      = lipgloss.Color("#737373")
	White     = lipgloss.Color("#ffffff")
	Blue      = lipgloss.Color("63")

	DarkViolet = "#9400D3"
	DimGrey    = "#696969"
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = lipgloss.AdaptiveColor{Dark: "86", Light: string(Green)}
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow

	ActiveTabColor   = lipgloss.AdaptiveColor{Dark: string(White), Light: string(Black)}
	InactiveTabColor = lipgloss.AdaptiveColor{Dark: string(LightGrey), Light: string(Grey)}

	FocusedBorder  = Pink
	BlurredBorder  = lipgloss.AdaptiveColor{Dark: "244", Light: "250"}
	MenuHighlight  = lipgloss.Color("110")
	MenuForeground = ActiveTabColor
)
