package top

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/svgedit/svgedit/internal/tui"
)

// navigator maintains the stack of screens the user has pushed.
type navigator struct {
	// history tracks the screens pushed, in LIFO order.
	history []tui.Kind
	screens map[tui.Kind]tui.ChildModel
}

func newNavigator(first tui.Kind, screens map[tui.Kind]tui.ChildModel) (*navigator, error) {
	if _, ok := screens[first]; !ok {
		return nil, fmt.Errorf("%s: %w", first, tui.ErrUnknownKind)
	}
	return &navigator{
		history: []tui.Kind{first},
		screens: screens,
	}, nil
}

func (n *navigator) currentKind() tui.Kind {
	return n.history[len(n.history)-1]
}

func (n *navigator) currentModel() tui.ChildModel {
	return n.screens[n.currentKind()]
}

// push makes the screen the current screen. Pushing the current screen does
// nothing.
func (n *navigator) push(kind tui.Kind) (tea.Cmd, error) {
	model, ok := n.screens[kind]
	if !ok {
		return nil, fmt.Errorf("%s: %w", kind, tui.ErrUnknownKind)
	}
	if kind == n.currentKind() {
		return nil, nil
	}
	n.history = append(n.history, kind)
	return model.Init(), nil
}

// pop returns to the previous screen. The first screen is never popped.
func (n *navigator) pop() (tea.Cmd, bool) {
	if len(n.history) == 1 {
		return nil, false
	}
	n.history = n.history[:len(n.history)-1]
	return n.currentModel().Init(), true
}

func (n *navigator) updateCurrent(msg tea.Msg) tea.Cmd {
	return n.currentModel().Update(msg)
}

// updateAll sends the message to every screen, in order of kind.
func (n *navigator) updateAll(msg tea.Msg) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(n.screens))
	for _, kind := range []tui.Kind{tui.WelcomeKind, tui.EditorKind} {
		if model, ok := n.screens[kind]; ok {
			cmds = append(cmds, model.Update(msg))
		}
	}
	return cmds
}
