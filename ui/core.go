package ui

// Element is the basic building block of the gui tree.
// The set of implementations is closed: Rectangle, Vertical, Horizontal and Anchor.
//
// An Anchor is only valid as a root, handed to NewGui or driven through
// HandlePointer. Its Resize takes the window size rather than a position, so
// nesting it inside a Vertical or Horizontal places its subtree wrongly.
//
// E identifies an element, P and R are the payloads an element emits when it is
// pressed or released.
type Element[E, P, R comparable] interface {
	// Width and Height return the outer size, border included.
	Width() uint32
	Height() uint32
	// Resize places the element at an absolute position and appends one
	// PositionChange per leaf to changes.
	Resize(absX, absY uint32, changes []PositionChange[E]) []PositionChange[E]
	// MouseEvent hit tests one pointer sample and accumulates into res.
	MouseEvent(x, y uint32, pressed bool, res *MouseEventResult[E, P, R])
	Bounds() Bounds

	element()
}

// Bounds is an axis aligned rectangle in gui space, origin at the bottom left.
type Bounds struct {
	X, Y          uint32
	Width, Height uint32
}

// contains reports whether the point lies in the half open rectangle
// [X, X+Width) x [Y, Y+Height). Containers gate on this.
func (b Bounds) contains(x, y uint32) bool {
	return x >= b.X && x < b.X+b.Width &&
		y >= b.Y && y < b.Y+b.Height
}

// containsInclusive reports whether the point lies in [X, X+Width] x [Y, Y+Height].
// Adjacent leaves share their edge pixel.
func (b Bounds) containsInclusive(x, y uint32) bool {
	return x >= b.X && x <= b.X+b.Width &&
		y >= b.Y && y <= b.Y+b.Height
}

// sub subtracts without wrapping below zero.
func sub(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}

// center returns the offset that centers inner inside outer.
func center(outer, inner uint32) uint32 {
	return sub(outer/2, inner/2)
}
