// Package pane maintains an ordered collection of panes, each a title and
// content pair, and which one of them is currently selected.
package pane

import (
	"fmt"
	"reflect"
)

// Widget is anything that can be rendered.
type Widget interface {
	View() string
}

// Pane pairs a title, rendered in a tab strip, with the content shown when
// the pane is selected. A pane cannot be changed once constructed.
type Pane struct {
	title   Widget
	content Widget
}

func NewPane(title, content Widget) (*Pane, error) {
	if isNil(title) {
		return nil, fmt.Errorf("constructing pane: title: %w", ErrInvalidArgument)
	}
	if isNil(content) {
		return nil, fmt.Errorf("constructing pane: content: %w", ErrInvalidArgument)
	}
	return &Pane{title: title, content: content}, nil
}

func (p *Pane) Title() Widget   { return p.title }
func (p *Pane) Content() Widget { return p.content }

// isNil reports whether w is absent, including a nil pointer wrapped in the
// interface.
func isNil(w Widget) bool {
	if w == nil {
		return true
	}
	switch v := reflect.ValueOf(w); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
