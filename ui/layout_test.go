package ui

import (
	"reflect"
	"testing"
)

type leaf = Element[string, string, string]

func rect(id string, w, h, border uint32) *Rectangle[string, string, string] {
	return NewRectangle[string, string, string](id, w, h, border)
}

func TestContainerSize(t *testing.T) {
	children := []leaf{rect("a", 20, 10, 0), rect("b", 30, 20, 5), rect("c", 10, 10, 0)}

	tests := []struct {
		name          string
		element       leaf
		width, height uint32
	}{
		{name: "vertical", element: NewVertical(children...), width: 40, height: 50},
		{name: "horizontal", element: NewHorizontal(children...), width: 70, height: 30},
		{name: "empty vertical", element: NewVertical[string, string, string]()},
		{name: "empty horizontal", element: NewHorizontal[string, string, string]()},
		{
			name:    "nested",
			element: NewVertical[string, string, string](NewHorizontal(children...), rect("d", 100, 5, 0)),
			width:   100,
			height:  35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.element.Width() != tt.width || tt.element.Height() != tt.height {
				t.Errorf("got %dx%d; want %dx%d", tt.element.Width(), tt.element.Height(), tt.width, tt.height)
			}
		})
	}
}

func TestVerticalResize(t *testing.T) {
	v := NewVertical[string, string, string](rect("wide", 40, 10, 0), rect("narrow", 20, 10, 0))
	changes := v.Resize(100, 100, nil)

	want := []PositionChange[string]{
		{ElementID: "wide", X: 100, Y: 110},
		{ElementID: "narrow", X: 110, Y: 100},
	}
	if !reflect.DeepEqual(changes, want) {
		t.Errorf("got %v; want %v", changes, want)
	}
}

func TestHorizontalResize(t *testing.T) {
	h := NewHorizontal[string, string, string](rect("a", 20, 10, 0), rect("b", 30, 20, 5), rect("c", 10, 10, 0))
	changes := h.Resize(0, 0, nil)

	want := []PositionChange[string]{
		{ElementID: "a", X: 0, Y: 10},
		{ElementID: "b", X: 25, Y: 5},
		{ElementID: "c", X: 60, Y: 10},
	}
	if !reflect.DeepEqual(changes, want) {
		t.Errorf("got %v; want %v", changes, want)
	}
}

func TestEmptyContainer(t *testing.T) {
	v := NewVertical[string, string, string]()
	if changes := v.Resize(10, 10, nil); len(changes) != 0 {
		t.Errorf("got %v; want no changes", changes)
	}

	var res MouseEventResult[string, string, string]
	v.MouseEvent(10, 10, true, &res)
	if res.Consumed || v.Active() {
		t.Errorf("empty container consumed a press")
	}
}

func TestContainerForwardsToEveryChild(t *testing.T) {
	// Adjacent borderless rectangles share the pixel column x=20.
	a := rect("a", 20, 20, 0).OnPress("a")
	b := rect("b", 20, 20, 0).OnPress("b")
	h := NewHorizontal[string, string, string](a, b)
	h.Resize(0, 0, nil)

	var res MouseEventResult[string, string, string]
	h.MouseEvent(20, 10, true, &res)

	if !a.IsPressed() || !b.IsPressed() {
		t.Fatalf("got pressed a=%v b=%v; want both", a.IsPressed(), b.IsPressed())
	}
	if res.PressedEvent == nil || *res.PressedEvent != "a" {
		t.Errorf("got pressed event %v; want the first emission", res.PressedEvent)
	}
	for i, id := range []string{"a", "b"} {
		ev := res.Events[i]
		if ev == nil || ev.ElementID != id || ev.State != StatePressed {
			t.Errorf("event %d: got %v; want %s pressed", i, ev, id)
		}
	}
}

func TestEventsOverflow(t *testing.T) {
	var res MouseEventResult[int, int, int]
	for i := 0; i < MaxEvents+2; i++ {
		res.emitPressed(i, i)
	}
	if *res.PressedEvent != 0 {
		t.Errorf("got pressed event %d; want 0", *res.PressedEvent)
	}
	for i, ev := range res.Events {
		if ev == nil || ev.ElementID != i {
			t.Errorf("event %d: got %v", i, ev)
		}
	}
}

func TestContainerStickyCapture(t *testing.T) {
	r := rect("r", 10, 10, 0).OnRelease("up")
	v := NewVertical[string, string, string](r)
	v.Resize(0, 0, nil)

	var res MouseEventResult[string, string, string]
	v.MouseEvent(5, 5, true, &res)
	if !v.Active() {
		t.Fatalf("container not active after consumed press")
	}

	res = MouseEventResult[string, string, string]{}
	v.MouseEvent(500, 500, true, &res)
	if res.ReleasedEvent == nil || *res.ReleasedEvent != "up" {
		t.Errorf("got released event %v; want up", res.ReleasedEvent)
	}
	if v.Active() {
		t.Errorf("container still active after the child released")
	}

	res = MouseEventResult[string, string, string]{}
	v.MouseEvent(500, 500, false, &res)
	if res.Consumed || res.Fired() {
		t.Errorf("inactive container handled a sample outside its bounds")
	}
}

func TestLeaves(t *testing.T) {
	a, b, c := rect("a", 1, 1, 0), rect("b", 1, 1, 0), rect("c", 1, 1, 0)
	tree := NewAnchor(Center, 0, 0, leaf(NewVertical[string, string, string](
		a,
		NewHorizontal[string, string, string](b, c),
	)))

	got := Leaves[string, string, string](tree)
	want := []*Rectangle[string, string, string]{a, b, c}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %d leaves; want a, b, c in order", len(got))
	}
}
