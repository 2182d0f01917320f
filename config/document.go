// Package config loads layout documents and builds gui trees from them.
package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/OpticalFlyer/anchorgui/logging"
)

//go:embed defaults/*.yml
var embeddedLayouts embed.FS

const defaultLayout = "defaults/menu.yml"

const (
	EnvWidth  = "ANCHORGUI_WIDTH"
	EnvHeight = "ANCHORGUI_HEIGHT"
)

var (
	ErrUnknownAlignment = errors.New("unknown alignment")
	ErrInvalidNode      = errors.New("invalid node")
	ErrDuplicateID      = errors.New("duplicate element id")
)

// Document is a layout file.
type Document struct {
	Window  Window         `yaml:"window"`
	Logging logging.Config `yaml:"logging"`
	Anchors []AnchorSpec   `yaml:"anchors"`
}

// Window holds the initial window size and title.
type Window struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
	Title  string `yaml:"title"`
}

// AnchorSpec describes one root: the corner, the offset and the subtree.
type AnchorSpec struct {
	Align string `yaml:"align"`
	X     uint32 `yaml:"x"`
	Y     uint32 `yaml:"y"`
	Node  Node   `yaml:"node"`
}

// Node is exactly one of a rectangle, a vertical list or a horizontal list.
type Node struct {
	Rect       *RectSpec `yaml:"rect,omitempty"`
	Vertical   []Node    `yaml:"vertical,omitempty"`
	Horizontal []Node    `yaml:"horizontal,omitempty"`
}

// RectSpec describes a leaf. Width and height may be left out when text is
// given; the content then takes the size of the text. Empty pressed or
// released means the element emits nothing on that edge.
type RectSpec struct {
	ID       string `yaml:"id"`
	Width    uint32 `yaml:"width"`
	Height   uint32 `yaml:"height"`
	Border   uint32 `yaml:"border"`
	Text     string `yaml:"text"`
	Pressed  string `yaml:"pressed"`
	Released string `yaml:"released"`
}

// Parse decodes and validates a layout document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}

	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Load reads a layout document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return doc, nil
}

// Default returns the built-in layout.
func Default() (*Document, error) {
	data, err := embeddedLayouts.ReadFile(defaultLayout)
	if err != nil {
		return nil, fmt.Errorf("read embedded layout: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault loads path, or the built-in layout when path is empty.
func LoadOrDefault(path string) (*Document, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return Load(path)
}

func (d *Document) applyDefaults() {
	if d.Window.Width == 0 {
		d.Window.Width = 800
	}
	if d.Window.Height == 0 {
		d.Window.Height = 600
	}
	if d.Window.Title == "" {
		d.Window.Title = "anchorgui"
	}
}

// WithEnv applies ANCHORGUI_WIDTH and ANCHORGUI_HEIGHT. Invalid values are ignored.
func (d *Document) WithEnv() *Document {
	applyUint := func(dst *uint32, env string) {
		raw := strings.TrimSpace(os.Getenv(env))
		if raw == "" {
			return
		}
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || n == 0 {
			return
		}
		*dst = uint32(n)
	}
	applyUint(&d.Window.Width, EnvWidth)
	applyUint(&d.Window.Height, EnvHeight)
	return d
}

// Validate checks alignments, node shapes and id uniqueness.
func (d *Document) Validate() error {
	if len(d.Anchors) == 0 {
		return fmt.Errorf("anchors: %w: at least one anchor is required", ErrInvalidNode)
	}

	seen := make(map[string]bool)
	for i, a := range d.Anchors {
		if _, err := ParseAlignment(a.Align); err != nil {
			return fmt.Errorf("anchors[%d].align: %w", i, err)
		}
		if err := a.Node.validate(fmt.Sprintf("anchors[%d].node", i), seen); err != nil {
			return err
		}
	}
	return nil
}

func (n Node) validate(path string, seen map[string]bool) error {
	kinds := 0
	if n.Rect != nil {
		kinds++
	}
	if n.Vertical != nil {
		kinds++
	}
	if n.Horizontal != nil {
		kinds++
	}
	if kinds != 1 {
		return fmt.Errorf("%s: %w: want exactly one of rect, vertical, horizontal", path, ErrInvalidNode)
	}

	switch {
	case n.Rect != nil:
		r := n.Rect
		if r.ID == "" {
			return fmt.Errorf("%s.rect: %w: id is required", path, ErrInvalidNode)
		}
		if seen[r.ID] {
			return fmt.Errorf("%s.rect: %w: %q", path, ErrDuplicateID, r.ID)
		}
		seen[r.ID] = true
		if r.Text == "" && (r.Width == 0 || r.Height == 0) {
			return fmt.Errorf("%s.rect %q: %w: width and height are required without text", path, r.ID, ErrInvalidNode)
		}
	case n.Vertical != nil:
		for i, child := range n.Vertical {
			if err := child.validate(fmt.Sprintf("%s.vertical[%d]", path, i), seen); err != nil {
				return err
			}
		}
	case n.Horizontal != nil:
		for i, child := range n.Horizontal {
			if err := child.validate(fmt.Sprintf("%s.horizontal[%d]", path, i), seen); err != nil {
				return err
			}
		}
	}
	return nil
}
