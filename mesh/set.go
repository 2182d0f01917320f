package mesh

import (
	"github.com/OpticalFlyer/anchorgui/ui"
)

// entry holds the meshes of one element, built once at the origin.
type entry struct {
	content Mesh
	frame   Mesh

	// Position of the content area, from the last resize pass
	x, y   float64
	placed bool
}

// Set keeps one content mesh and one border mesh per element id.
type Set[E comparable] struct {
	entries map[E]*entry
	order   []E
}

// NewSet creates an empty Set.
func NewSet[E comparable]() *Set[E] {
	return &Set[E]{
		entries: make(map[E]*entry),
	}
}

// Add builds the meshes for an element with the given content size and border.
// Adding an id twice replaces its meshes and keeps its place in the draw order.
func (s *Set[E]) Add(id E, width, height, border uint32) error {
	b := float64(border)
	content := Quad{Width: float64(width), Height: float64(height)}

	contentMesh, err := Rect(content)
	if err != nil {
		return err
	}
	frameMesh, err := Frame(Quad{
		X:      -b,
		Y:      -b,
		Width:  content.Width + 2*b,
		Height: content.Height + 2*b,
	}, content)
	if err != nil {
		return err
	}

	if _, exists := s.entries[id]; !exists {
		s.order = append(s.order, id)
	}
	s.entries[id] = &entry{content: contentMesh, frame: frameMesh}
	return nil
}

// AddLeaves adds every rectangle of a gui.
func AddLeaves[E, P, R comparable](s *Set[E], gui *ui.Gui[E, P, R]) error {
	for _, r := range gui.Leaves() {
		w, h := r.ContentSize()
		if err := s.Add(r.ID(), w, h, r.Border()); err != nil {
			return err
		}
	}
	return nil
}

// Apply moves meshes to the positions of a resize pass. It returns how many
// changes matched a known element.
func (s *Set[E]) Apply(changes []ui.PositionChange[E]) int {
	applied := 0
	for _, c := range changes {
		e, ok := s.entries[c.ElementID]
		if !ok {
			continue
		}
		e.x = float64(c.X)
		e.y = float64(c.Y)
		e.placed = true
		applied++
	}
	return applied
}

// Len returns the number of elements in the set.
func (s *Set[E]) Len() int {
	return len(s.order)
}

// Each calls fn for every placed element in insertion order with its meshes
// translated to the current position.
func (s *Set[E]) Each(fn func(id E, content, frame Mesh)) {
	for _, id := range s.order {
		e := s.entries[id]
		if !e.placed {
			continue
		}
		fn(id, e.content.Translate(e.x, e.y), e.frame.Translate(e.x, e.y))
	}
}
