package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// PushScreenMsg is an instruction to push a screen onto the screen stack.
type PushScreenMsg Kind

// PopScreenMsg is an instruction to return to the previous screen.
type PopScreenMsg struct{}

// ActionMsg is an instruction to perform an action on the main screen.
type ActionMsg Action

type InfoMsg string

type ErrorMsg struct {
	Error   error
	Message string
	Args    []any
}

func NewErrorMsg(err error, msg string, args ...any) ErrorMsg {
	return ErrorMsg{
		Error:   err,
		Message: msg,
		Args:    args,
	}
}

// ReportError returns a command that reports an error in the footer.
func ReportError(err error, msg string, args ...any) tea.Cmd {
	return CmdHandler(NewErrorMsg(err, msg, args...))
}

// ReportInfo returns a command that reports an informational message in the
// footer.
func ReportInfo(msg string, args ...any) tea.Cmd {
	return CmdHandler(InfoMsg(fmt.Sprintf(msg, args...)))
}

// PushScreen returns a command that pushes a screen. The push happens on the
// event loop once the command's message is delivered.
func PushScreen(kind Kind) tea.Cmd {
	return CmdHandler(PushScreenMsg(kind))
}

// Perform returns a command that performs an action.
func Perform(action Action) tea.Cmd {
	return CmdHandler(ActionMsg(action))
}

// CmdHandler wraps a message in a command.
func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
