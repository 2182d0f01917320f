package ui

var _ Element[int, int, int] = (*Rectangle[int, int, int])(nil)

// Rectangle is a leaf with a fixed content size and a uniform border.
// It latches between a press over its content and the matching release.
type Rectangle[E, P, R comparable] struct {
	id            E
	width, height uint32
	border        uint32

	pressedID  *P
	releasedID *R

	// State
	absX, absY uint32
	pressed    bool
}

// NewRectangle creates a hit-test only rectangle. Use OnPress and OnRelease to
// make it emit payloads.
func NewRectangle[E, P, R comparable](id E, width, height, border uint32) *Rectangle[E, P, R] {
	return &Rectangle[E, P, R]{
		id:     id,
		width:  width,
		height: height,
		border: border,
	}
}

// NewButton creates a rectangle that emits released when a press over it ends.
func NewButton[E, P, R comparable](id E, released R, width, height, border uint32) *Rectangle[E, P, R] {
	return NewRectangle[E, P, R](id, width, height, border).OnRelease(released)
}

// OnPress sets the payload emitted when the rectangle becomes pressed.
func (r *Rectangle[E, P, R]) OnPress(p P) *Rectangle[E, P, R] {
	r.pressedID = &p
	return r
}

// OnRelease sets the payload emitted when the rectangle is released.
func (r *Rectangle[E, P, R]) OnRelease(rel R) *Rectangle[E, P, R] {
	r.releasedID = &rel
	return r
}

func (r *Rectangle[E, P, R]) ID() E {
	return r.id
}

func (r *Rectangle[E, P, R]) Border() uint32 {
	return r.border
}

// ContentSize returns the size without border.
func (r *Rectangle[E, P, R]) ContentSize() (width, height uint32) {
	return r.width, r.height
}

func (r *Rectangle[E, P, R]) IsPressed() bool {
	return r.pressed
}

func (r *Rectangle[E, P, R]) Width() uint32 {
	return r.width + 2*r.border
}

func (r *Rectangle[E, P, R]) Height() uint32 {
	return r.height + 2*r.border
}

func (r *Rectangle[E, P, R]) Bounds() Bounds {
	return Bounds{
		X:      r.absX,
		Y:      r.absY,
		Width:  r.Width(),
		Height: r.Height(),
	}
}

// ContentBounds is the hit area: the outer rectangle shrunk by the border.
func (r *Rectangle[E, P, R]) ContentBounds() Bounds {
	return Bounds{
		X:      r.absX + r.border,
		Y:      r.absY + r.border,
		Width:  r.width,
		Height: r.height,
	}
}

func (r *Rectangle[E, P, R]) Resize(absX, absY uint32, changes []PositionChange[E]) []PositionChange[E] {
	r.absX = absX
	r.absY = absY

	return append(changes, PositionChange[E]{
		ElementID: r.id,
		X:         absX + r.border,
		Y:         absY + r.border,
	})
}

func (r *Rectangle[E, P, R]) MouseEvent(x, y uint32, pressed bool, res *MouseEventResult[E, P, R]) {
	inside := r.ContentBounds().containsInclusive(x, y)

	if !r.pressed && inside && pressed {
		r.pressed = true
		if r.pressedID != nil {
			res.emitPressed(r.id, *r.pressedID)
		}
	}

	if r.pressed && (!inside || !pressed) {
		r.pressed = false
		if r.releasedID != nil {
			res.emitReleased(r.id, *r.releasedID)
		}
	}

	res.Consumed = res.Consumed || inside
}

func (r *Rectangle[E, P, R]) element() {}
