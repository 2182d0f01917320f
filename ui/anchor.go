package ui

import "fmt"

// Alignment selects the window corner an Anchor measures its offset from.
type Alignment int

const (
	TopLeft Alignment = iota
	TopRight
	BottomLeft
	BottomRight
	Center
)

func (a Alignment) String() string {
	switch a {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case Center:
		return "center"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

var _ Element[int, int, int] = (*Anchor[int, int, int])(nil)

// Anchor fixes a subtree to a corner (or the center) of the window.
//
// Anchor is a root: its Resize receives the window size, not a position.
type Anchor[E, P, R comparable] struct {
	container[E, P, R]

	alignment Alignment
	x, y      uint32

	mouse pointer
}

// NewAnchor places child at offset (x, y) from the corner given by alignment.
// For Center the offset moves the subtree left and down from the window center.
func NewAnchor[E, P, R comparable](alignment Alignment, x, y uint32, child Element[E, P, R]) *Anchor[E, P, R] {
	a := &Anchor[E, P, R]{
		container: container[E, P, R]{children: []Element[E, P, R]{child}},
		alignment: alignment,
		x:         x,
		y:         y,
	}
	a.calculateSize()
	return a
}

func (a *Anchor[E, P, R]) Alignment() Alignment {
	return a.alignment
}

// Offset returns the distance from the aligned corner.
func (a *Anchor[E, P, R]) Offset() (x, y uint32) {
	return a.x, a.y
}

// Child returns the subtree the anchor positions.
func (a *Anchor[E, P, R]) Child() Element[E, P, R] {
	return a.children[0]
}

func (a *Anchor[E, P, R]) calculateSize() {
	a.bounds.Width = a.Child().Width()
	a.bounds.Height = a.Child().Height()
}

// calculateAbsolutePosition resolves the top level position. Offsets larger
// than the window saturate at zero instead of wrapping around.
func (a *Anchor[E, P, R]) calculateAbsolutePosition(guiWidth, guiHeight uint32) {
	w, h := a.bounds.Width, a.bounds.Height

	switch a.alignment {
	case TopLeft:
		a.bounds.X = a.x
		a.bounds.Y = sub(sub(guiHeight, a.y), h)
	case TopRight:
		a.bounds.X = sub(sub(guiWidth, a.x), w)
		a.bounds.Y = sub(sub(guiHeight, a.y), h)
	case BottomLeft:
		a.bounds.X = a.x
		a.bounds.Y = a.y
	case BottomRight:
		a.bounds.X = sub(sub(guiWidth, a.x), w)
		a.bounds.Y = a.y
	case Center:
		a.bounds.X = sub(sub(guiWidth/2, a.x), w/2)
		a.bounds.Y = sub(sub(guiHeight/2, a.y), h/2)
	}
}

// Resize lays out the subtree for a window of guiWidth x guiHeight.
func (a *Anchor[E, P, R]) Resize(guiWidth, guiHeight uint32, changes []PositionChange[E]) []PositionChange[E] {
	a.calculateSize()
	a.calculateAbsolutePosition(guiWidth, guiHeight)

	return a.Child().Resize(a.bounds.X, a.bounds.Y, changes)
}

// HandlePointer is the entry point when the anchor is used without a Gui.
func (a *Anchor[E, P, R]) HandlePointer(ev PointerEvent) MouseEventResult[E, P, R] {
	var res MouseEventResult[E, P, R]
	if !a.mouse.apply(ev) {
		return res
	}

	a.MouseEvent(a.mouse.x, a.mouse.y, a.mouse.pressed, &res)
	return res
}
