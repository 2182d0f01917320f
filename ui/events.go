package ui

import "fmt"

// PositionChange reports the new absolute position of a leaf's content area.
// The renderer moves the matching mesh to (X, Y).
type PositionChange[E comparable] struct {
	ElementID E
	X, Y      uint32
}

// ElementState is the edge an element went through during a traversal.
type ElementState int

const (
	StatePressed ElementState = iota
	StateReleased
)

func (s ElementState) String() string {
	switch s {
	case StatePressed:
		return "pressed"
	case StateReleased:
		return "released"
	default:
		return fmt.Sprintf("ElementState(%d)", int(s))
	}
}

// ElementEvent records which element fired and how.
type ElementEvent[E comparable] struct {
	ElementID E
	State     ElementState
}

// MaxEvents is the number of element events one traversal can record.
const MaxEvents = 2

// MouseEventResult is shared by every node of one traversal.
type MouseEventResult[E, P, R comparable] struct {
	// PressedEvent and ReleasedEvent hold the first payload emitted in the traversal.
	PressedEvent  *P
	ReleasedEvent *R
	// Events lists up to MaxEvents emissions in traversal order; further ones are dropped.
	// Only edges that emit a payload are listed: a rectangle without OnPress
	// never shows up here as pressed, and one without OnRelease never as released.
	Events   [MaxEvents]*ElementEvent[E]
	Consumed bool
}

func (r *MouseEventResult[E, P, R]) emitPressed(id E, p P) {
	if r.PressedEvent == nil {
		r.PressedEvent = &p
	}
	r.record(id, StatePressed)
}

func (r *MouseEventResult[E, P, R]) emitReleased(id E, rel R) {
	if r.ReleasedEvent == nil {
		r.ReleasedEvent = &rel
	}
	r.record(id, StateReleased)
}

func (r *MouseEventResult[E, P, R]) record(id E, state ElementState) {
	for i, ev := range r.Events {
		if ev == nil {
			r.Events[i] = &ElementEvent[E]{ElementID: id, State: state}
			return
		}
	}
}

// Fired reports whether any payload was emitted.
func (r MouseEventResult[E, P, R]) Fired() bool {
	return r.PressedEvent != nil || r.ReleasedEvent != nil
}

// PointerKind tells the three pointer samples apart.
type PointerKind int

const (
	PointerMoved PointerKind = iota
	PointerPressed
	PointerReleased
)

func (k PointerKind) String() string {
	switch k {
	case PointerMoved:
		return "moved"
	case PointerPressed:
		return "pressed"
	case PointerReleased:
		return "released"
	default:
		return fmt.Sprintf("PointerKind(%d)", int(k))
	}
}

// PointerEvent is one sample from the window system, in gui space.
// X and Y are only meaningful for PointerMoved.
type PointerEvent struct {
	Kind PointerKind
	X, Y uint32
}

func Moved(x, y uint32) PointerEvent {
	return PointerEvent{Kind: PointerMoved, X: x, Y: y}
}

func Pressed() PointerEvent {
	return PointerEvent{Kind: PointerPressed}
}

func Released() PointerEvent {
	return PointerEvent{Kind: PointerReleased}
}

// pointer is the last known pointer sample of a root.
type pointer struct {
	x, y    uint32
	pressed bool
}

// apply folds ev into p and reports whether a traversal has to run.
// Moves only update coordinates; hit testing happens on press and release.
func (p *pointer) apply(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerMoved:
		p.x, p.y = ev.X, ev.Y
		return false
	case PointerPressed:
		p.pressed = true
	case PointerReleased:
		p.pressed = false
	}
	return true
}
