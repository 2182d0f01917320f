package ui

// Leaves returns the rectangles of a subtree in traversal order.
func Leaves[E, P, R comparable](el Element[E, P, R]) []*Rectangle[E, P, R] {
	var out []*Rectangle[E, P, R]
	walk(el, func(r *Rectangle[E, P, R]) {
		out = append(out, r)
	})
	return out
}

func walk[E, P, R comparable](el Element[E, P, R], fn func(*Rectangle[E, P, R])) {
	switch n := el.(type) {
	case *Rectangle[E, P, R]:
		fn(n)
	case *Vertical[E, P, R]:
		for _, child := range n.children {
			walk(child, fn)
		}
	case *Horizontal[E, P, R]:
		for _, child := range n.children {
			walk(child, fn)
		}
	case *Anchor[E, P, R]:
		walk(n.Child(), fn)
	}
}

// Leaves returns every rectangle of the gui, anchor by anchor.
func (g *Gui[E, P, R]) Leaves() []*Rectangle[E, P, R] {
	var out []*Rectangle[E, P, R]
	for _, anchor := range g.anchors {
		out = append(out, Leaves[E, P, R](anchor)...)
	}
	return out
}
