// Package layout arranges two widgets within a box, side by side when the box
// is wider than it is tall and stacked otherwise, centering them as a unit.
package layout

import "reflect"

// Gap is the space between the two widgets.
const Gap = 10

// Sizer reports the intrinsic size a widget would like to occupy.
type Sizer interface {
	PreferredWidth() int
	PreferredHeight() int
}

type Size struct {
	Width, Height int
}

// Rect is the position and size of a widget within a box.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	if r.Width <= 0 || r.Height <= 0 || o.Width <= 0 || o.Height <= 0 {
		return false
	}
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Contains reports whether the cell at x,y lies within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	default:
		return "portrait"
	}
}

// OrientationFor returns landscape if the box is wider than it is tall;
// otherwise portrait.
func OrientationFor(box Size) Orientation {
	if box.Width > box.Height {
		return Landscape
	}
	return Portrait
}

// Arrangement is the result of laying out two widgets.
type Arrangement struct {
	Orientation Orientation
	// A and B are the geometries of the first and second widget.
	A, B Rect
	// Extent is the size of the container, which is always the box it was
	// given regardless of the size of its contents.
	Extent Size
}

// Arrange lays out a and b within box. It never fails: negative sizes are
// clamped to zero and positions are clamped to the box's origin. When the
// widgets do not fit they are not shrunk, and so may overflow the box or
// overlap one another. A nil sizer is treated as a widget of zero size.
func Arrange(box Size, a, b Sizer) Arrangement {
	sa, sb := preferred(a), preferred(b)

	var ra, rb Rect
	orientation := OrientationFor(box)
	switch orientation {
	case Landscape:
		start := (box.Width - (sa.Width + sb.Width + Gap)) / 2
		ra = Rect{
			X: max(0, start),
			Y: max(0, (box.Height-sa.Height)/2),
		}
		rb = Rect{
			X: max(0, start+sa.Width+Gap),
			Y: max(0, (box.Height-sb.Height)/2),
		}
	default:
		start := (box.Height - (sa.Height + sb.Height + Gap)) / 2
		ra = Rect{
			X: max(0, (box.Width-sa.Width)/2),
			Y: max(0, start),
		}
		rb = Rect{
			X: max(0, (box.Width-sb.Width)/2),
			Y: max(0, start+sa.Height+Gap),
		}
	}
	ra.Width, ra.Height = sa.Width, sa.Height
	rb.Width, rb.Height = sb.Width, sb.Height

	return Arrangement{
		Orientation: orientation,
		A:           ra,
		B:           rb,
		Extent:      box,
	}
}

func preferred(s Sizer) Size {
	if isNil(s) {
		return Size{}
	}
	return Size{
		Width:  max(0, s.PreferredWidth()),
		Height: max(0, s.PreferredHeight()),
	}
}

// isNil reports whether s is nil or holds a nil pointer, map, slice, func or
// channel.
func isNil(s Sizer) bool {
	if s == nil {
		return true
	}
	switch v := reflect.ValueOf(s); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
