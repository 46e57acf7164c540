package tui

import (
	"errors"
	"fmt"
)

// Kind identifies a screen.
type Kind int

const (
	WelcomeKind Kind = iota
	EditorKind
)

var ErrUnknownKind = errors.New("unknown screen")

var kindNames = map[Kind]string{
	WelcomeKind: "welcome",
	EditorKind:  "editor",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindNames returns the names of the screens, the first screen first.
func KindNames() []string {
	return []string{WelcomeKind.String(), EditorKind.String()}
}

// ParseKind returns the screen with the given name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// Action identifies an action on the main screen.
type Action int

const (
	NewAction Action = iota
	OpenAction
)

func (a Action) String() string {
	switch a {
	case NewAction:
		return "new"
	case OpenAction:
		return "open"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}
