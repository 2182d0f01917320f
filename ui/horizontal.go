package ui

var _ Element[int, int, int] = (*Horizontal[int, int, int])(nil)

// Horizontal lines its children up left to right, centered vertically.
type Horizontal[E, P, R comparable] struct {
	container[E, P, R]
}

// NewHorizontal lines up children in the given order. Children must not be anchors.
func NewHorizontal[E, P, R comparable](children ...Element[E, P, R]) *Horizontal[E, P, R] {
	h := &Horizontal[E, P, R]{container[E, P, R]{children: children}}
	h.calculateSize()
	return h
}

func (h *Horizontal[E, P, R]) calculateSize() {
	var width, height uint32
	for _, child := range h.children {
		width += child.Width()
		height = max(height, child.Height())
	}
	h.bounds.Width = width
	h.bounds.Height = height
}

func (h *Horizontal[E, P, R]) Resize(absX, absY uint32, changes []PositionChange[E]) []PositionChange[E] {
	h.bounds.X = absX
	h.bounds.Y = absY

	var deltaWidth uint32
	for _, child := range h.children {
		childX := absX + deltaWidth
		childY := absY + center(h.bounds.Height, child.Height())
		changes = child.Resize(childX, childY, changes)

		deltaWidth += child.Width()
	}
	return changes
}
