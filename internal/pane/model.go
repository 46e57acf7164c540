package pane

import (
	"fmt"
	"slices"
)

// Model is an ordered collection of panes and the index of the currently
// selected pane. Insertion order is the display and navigation order.
//
// A Model is not safe for concurrent use; it is expected to be owned by the
// UI event loop.
type Model struct {
	panes   []*Pane
	current int
	looping bool

	// observers are notified in registration order.
	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func()
}

type Option func(*Model)

// WithLooping sets whether navigating past either end of the collection
// wraps around to the other end.
func WithLooping(enabled bool) Option {
	return func(m *Model) {
		m.looping = enabled
	}
}

// New constructs an empty model. Looping is enabled by default.
func New(opts ...Option) *Model {
	m := &Model{
		looping: true,
	}
	for _, fn := range opts {
		fn(m)
	}
	return m
}

// Add appends a pane to the end of the collection.
func (m *Model) Add(p *Pane) error {
	if p == nil {
		return fmt.Errorf("adding pane: %w", ErrInvalidArgument)
	}
	m.panes = append(m.panes, p)
	return nil
}

// SetLooping toggles wrap-around navigation. The current index is unaffected.
func (m *Model) SetLooping(enabled bool) {
	m.looping = enabled
}

func (m *Model) Looping() bool {
	return m.looping
}

func (m *Model) Len() int {
	return len(m.panes)
}

// Index returns the index of the currently selected pane. It is zero if
// there are no panes.
func (m *Model) Index() int {
	return m.current
}

// Current returns the currently selected pane.
func (m *Model) Current() (*Pane, error) {
	if len(m.panes) == 0 {
		return nil, fmt.Errorf("retrieving current pane: %w", ErrEmptyCollection)
	}
	return m.panes[m.current], nil
}

// Panes returns the panes in collection order.
func (m *Model) Panes() []*Pane {
	panes := make([]*Pane, len(m.panes))
	copy(panes, m.panes)
	return panes
}

// Titles returns the title widgets of the panes in collection order.
func (m *Model) Titles() []Widget {
	titles := make([]Widget, len(m.panes))
	for i, p := range m.panes {
		titles[i] = p.title
	}
	return titles
}

// Select makes the pane at index i the current pane.
func (m *Model) Select(i int) error {
	if i < 0 || i >= len(m.panes) {
		return fmt.Errorf("selecting pane %d of %d: %w", i, len(m.panes), ErrIndexOutOfRange)
	}
	m.setCurrent(i)
	return nil
}

// Next selects the pane after the current pane. At the last pane it wraps to
// the first pane if looping is enabled, otherwise it does nothing.
func (m *Model) Next() error {
	if len(m.panes) == 0 {
		return fmt.Errorf("selecting next pane: %w", ErrEmptyCollection)
	}
	next := m.current + 1
	if next >= len(m.panes) {
		if !m.looping {
			return nil
		}
		next = 0
	}
	m.setCurrent(next)
	return nil
}

// Previous selects the pane before the current pane. At the first pane it
// wraps to the last pane if looping is enabled, otherwise it does nothing.
func (m *Model) Previous() error {
	if len(m.panes) == 0 {
		return fmt.Errorf("selecting previous pane: %w", ErrEmptyCollection)
	}
	prev := m.current - 1
	if prev < 0 {
		if !m.looping {
			return nil
		}
		prev = len(m.panes) - 1
	}
	m.setCurrent(prev)
	return nil
}

// OnChange registers fn to be called whenever the selected index changes.
// Observers are called in the order they were registered. The returned func
// removes the registration.
func (m *Model) OnChange(fn func()) (remove func()) {
	id := m.nextID
	m.nextID++
	m.observers = append(m.observers, observer{id: id, fn: fn})
	return func() {
		m.observers = slices.DeleteFunc(m.observers, func(o observer) bool {
			return o.id == id
		})
	}
}

// setCurrent updates the index, notifying observers only if it differs.
func (m *Model) setCurrent(i int) {
	if i == m.current {
		return
	}
	m.current = i
	for _, o := range slices.Clone(m.observers) {
		o.fn()
	}
}
