package pane

import "errors"

var (
	// ErrInvalidArgument is returned when a required pane or widget is nil.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned when selecting an index outside of the
	// collection.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyCollection is returned when navigating or querying a model
	// without any panes.
	ErrEmptyCollection = errors.New("no panes")
)
