package ui

// container holds what Vertical, Horizontal and Anchor share: cached bounds and
// the sticky active flag.
type container[E, P, R comparable] struct {
	children []Element[E, P, R]
	bounds   Bounds

	// active keeps a subtree engaged after the pointer leaves it, so that a
	// latched child still sees the sample that releases it.
	active bool
}

func (c *container[E, P, R]) Width() uint32 {
	return c.bounds.Width
}

func (c *container[E, P, R]) Height() uint32 {
	return c.bounds.Height
}

func (c *container[E, P, R]) Bounds() Bounds {
	return c.bounds
}

// Active reports whether the subtree is capturing the pointer.
func (c *container[E, P, R]) Active() bool {
	return c.active
}

// Children returns the children in declaration order.
func (c *container[E, P, R]) Children() []Element[E, P, R] {
	return c.children
}

func (c *container[E, P, R]) MouseEvent(x, y uint32, pressed bool, res *MouseEventResult[E, P, R]) {
	if !c.bounds.contains(x, y) && !c.active {
		return
	}

	for _, child := range c.children {
		child.MouseEvent(x, y, pressed, res)
	}

	c.active = res.Consumed
}

func (c *container[E, P, R]) element() {}
