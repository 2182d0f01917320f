package config

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/anchorgui/ui"
)

// Element is the element type of trees built from a document. Ids and
// payloads are the strings written in the layout file.
type Element = ui.Element[string, string, string]

// Gui is the gui type built from a document.
type Gui = ui.Gui[string, string, string]

// ParseAlignment maps the layout file spelling of an alignment.
func ParseAlignment(s string) (ui.Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top-left", "topleft":
		return ui.TopLeft, nil
	case "top-right", "topright":
		return ui.TopRight, nil
	case "bottom-left", "bottomleft":
		return ui.BottomLeft, nil
	case "bottom-right", "bottomright":
		return ui.BottomRight, nil
	case "center", "centre":
		return ui.Center, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
	}
}

// TextSize returns the content size of a label drawn with the built-in face.
func TextSize(text string) (width, height uint32) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	return uint32(w), uint32(face.Metrics().Height.Ceil())
}

// Build creates the gui described by doc, sized to the document window.
func Build(doc *Document, opts ...ui.Option) (*Gui, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	anchors := make([]*ui.Anchor[string, string, string], 0, len(doc.Anchors))
	for _, a := range doc.Anchors {
		alignment, err := ParseAlignment(a.Align)
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, ui.NewAnchor(alignment, a.X, a.Y, a.Node.build()))
	}

	return ui.NewGui(doc.Window.Width, doc.Window.Height, anchors, opts...), nil
}

func (n Node) build() Element {
	switch {
	case n.Rect != nil:
		return n.Rect.build()
	case n.Vertical != nil:
		return ui.NewVertical(buildAll(n.Vertical)...)
	default:
		return ui.NewHorizontal(buildAll(n.Horizontal)...)
	}
}

func buildAll(nodes []Node) []Element {
	out := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.build())
	}
	return out
}

func (r *RectSpec) build() *ui.Rectangle[string, string, string] {
	w, h := r.Width, r.Height
	if r.Text != "" {
		tw, th := TextSize(r.Text)
		if w == 0 {
			w = tw
		}
		if h == 0 {
			h = th
		}
	}

	rect := ui.NewRectangle[string, string, string](r.ID, w, h, r.Border)
	if r.Pressed != "" {
		rect.OnPress(r.Pressed)
	}
	if r.Released != "" {
		rect.OnRelease(r.Released)
	}
	return rect
}

// Labels maps element ids to the text drawn on them.
func (d *Document) Labels() map[string]string {
	labels := make(map[string]string)
	var visit func(n Node)
	visit = func(n Node) {
		switch {
		case n.Rect != nil:
			if n.Rect.Text != "" {
				labels[n.Rect.ID] = n.Rect.Text
			}
		case n.Vertical != nil:
			for _, c := range n.Vertical {
				visit(c)
			}
		default:
			for _, c := range n.Horizontal {
				visit(c)
			}
		}
	}
	for _, a := range d.Anchors {
		visit(a.Node)
	}
	return labels
}
