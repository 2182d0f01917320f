package ui

var _ Element[int, int, int] = (*Vertical[int, int, int])(nil)

// Vertical stacks its children top down. The widest child sets the width and
// every child is centered horizontally.
type Vertical[E, P, R comparable] struct {
	container[E, P, R]
}

// NewVertical stacks children in the given order. Children must not be anchors.
func NewVertical[E, P, R comparable](children ...Element[E, P, R]) *Vertical[E, P, R] {
	v := &Vertical[E, P, R]{container[E, P, R]{children: children}}
	v.calculateSize()
	return v
}

func (v *Vertical[E, P, R]) calculateSize() {
	var width, height uint32
	for _, child := range v.children {
		width = max(width, child.Width())
		height += child.Height()
	}
	v.bounds.Width = width
	v.bounds.Height = height
}

func (v *Vertical[E, P, R]) Resize(absX, absY uint32, changes []PositionChange[E]) []PositionChange[E] {
	v.bounds.X = absX
	v.bounds.Y = absY

	// The first child sits at the top, y grows upward.
	deltaHeight := v.bounds.Height
	for _, child := range v.children {
		deltaHeight -= child.Height()

		childX := absX + center(v.bounds.Width, child.Width())
		childY := absY + deltaHeight
		changes = child.Resize(childX, childY, changes)
	}
	return changes
}
