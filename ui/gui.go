package ui

import (
	"io"
	"log/slog"
)

// Gui owns the anchored roots, the window size and the pointer state.
// It is the only entry point a host needs.
type Gui[E, P, R comparable] struct {
	width, height uint32
	mouse         pointer

	anchors []*Anchor[E, P, R]
	logger  *slog.Logger
}

type options struct {
	logger *slog.Logger
}

// Option configures a Gui.
type Option func(*options)

// WithLogger makes the Gui log resize passes and emitted events at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewGui creates a Gui and runs the first resize pass.
func NewGui[E, P, R comparable](width, height uint32, anchors []*Anchor[E, P, R], opts ...Option) *Gui[E, P, R] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g := &Gui[E, P, R]{
		anchors: anchors,
		logger:  o.logger,
	}
	g.Resize(width, height)
	return g
}

// Size returns the window size of the last resize pass.
func (g *Gui[E, P, R]) Size() (width, height uint32) {
	return g.width, g.height
}

// Pointer returns the last pointer sample.
func (g *Gui[E, P, R]) Pointer() (x, y uint32, pressed bool) {
	return g.mouse.x, g.mouse.y, g.mouse.pressed
}

func (g *Gui[E, P, R]) Anchors() []*Anchor[E, P, R] {
	return g.anchors
}

// Resize lays out every anchor for the new window size and returns the new
// content position of every leaf, in traversal order.
func (g *Gui[E, P, R]) Resize(width, height uint32) []PositionChange[E] {
	g.width = width
	g.height = height

	var changes []PositionChange[E]
	for _, anchor := range g.anchors {
		changes = anchor.Resize(g.width, g.height, changes)
	}

	g.logger.Debug("gui resized",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
		slog.Int("elements", len(changes)))
	return changes
}

// MouseEvent feeds one pointer sample. Moves only record the position; press
// and release run a traversal over every anchor with the recorded position.
func (g *Gui[E, P, R]) MouseEvent(ev PointerEvent) MouseEventResult[E, P, R] {
	var res MouseEventResult[E, P, R]
	if !g.mouse.apply(ev) {
		return res
	}

	for _, anchor := range g.anchors {
		anchor.MouseEvent(g.mouse.x, g.mouse.y, g.mouse.pressed, &res)
	}

	if res.Fired() {
		g.logger.Debug("gui pointer event",
			slog.String("kind", ev.Kind.String()),
			slog.Int("x", int(g.mouse.x)),
			slog.Int("y", int(g.mouse.y)),
			slog.Bool("consumed", res.Consumed),
			slog.Any("events", eventsAttr(res.Events)))
	}
	return res
}

// Capturing reports whether a gesture that started on the gui is still going.
// Hosts use it to keep the pointer away from whatever lies behind the gui.
func (g *Gui[E, P, R]) Capturing() bool {
	for _, anchor := range g.anchors {
		if anchor.Active() {
			return true
		}
	}
	return false
}

func eventsAttr[E comparable](events [MaxEvents]*ElementEvent[E]) []ElementEvent[E] {
	out := make([]ElementEvent[E], 0, MaxEvents)
	for _, ev := range events {
		if ev != nil {
			out = append(out, *ev)
		}
	}
	return out
}
