// Package scene loads layout preview scenes from TOML files. A scene names a
// container size, one of the layout algorithms with its configuration, and a
// list of children (fixed boxes or measured text), optionally extended by a
// small script that generates children programmatically.
package scene

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"flowbox/pkg/layout"
	"flowbox/pkg/text"
)

// Layout kinds accepted in a scene file.
const (
	KindFlow     = "flow"
	KindCentered = "centered"
)

// Scene is the decoded form of a scene file.
type Scene struct {
	Title     string        `toml:"title"`
	Container Container     `toml:"container"`
	Layout    LayoutConfig  `toml:"layout"`
	Children  []ChildSpec   `toml:"children"`
	Script    *ScriptConfig `toml:"script"`
}

// Container is the rectangle the layout fills, anchored at the origin.
type Container struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// LayoutConfig selects and configures one of the two layout algorithms.
// HSpacing/VSpacing/MaxRows apply to flow, Spacing to centered.
type LayoutConfig struct {
	Kind     string  `toml:"kind"`
	HSpacing float64 `toml:"hspacing"`
	VSpacing float64 `toml:"vspacing"`
	MaxRows  int     `toml:"max_rows"`
	Spacing  float64 `toml:"spacing"`
}

// ChildSpec describes one child. Either Text is set (measured with the shared
// text measurer) or Width/Height give a fixed box.
type ChildSpec struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Text       string  `toml:"text"`
	Label      string  `toml:"label"`
	BreakAfter bool    `toml:"break_after"`
}

// ScriptConfig holds an optional child-generation script (see script.go).
type ScriptConfig struct {
	Source string `toml:"source"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	var s Scene
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("decode scene %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return &s, nil
}

// Parse decodes a scene from a reader.
func Parse(r io.Reader) (*Scene, error) {
	var s Scene
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) validate() error {
	switch s.Layout.Kind {
	case KindFlow, KindCentered:
	case "":
		return fmt.Errorf("layout.kind is required (%q or %q)", KindFlow, KindCentered)
	default:
		return fmt.Errorf("unknown layout.kind %q", s.Layout.Kind)
	}
	if s.Container.Width <= 0 || s.Container.Height <= 0 {
		return fmt.Errorf("container must have positive width and height, got %gx%g",
			s.Container.Width, s.Container.Height)
	}
	return nil
}

// Bounds returns the container rectangle anchored at the origin.
func (s *Scene) Bounds() layout.Rect {
	return layout.Rect{Width: s.Container.Width, Height: s.Container.Height}
}

// BuildLayout constructs the configured layout algorithm. The returned value
// is one of *layout.FlowLayout or *layout.CenteredLayout behind the Algorithm
// interface.
func (s *Scene) BuildLayout() (Algorithm, error) {
	switch s.Layout.Kind {
	case KindFlow:
		return layout.NewFlowLayout(s.Layout.HSpacing, s.Layout.VSpacing, s.Layout.MaxRows)
	case KindCentered:
		return layout.NewCenteredLayout(s.Layout.Spacing)
	default:
		return nil, fmt.Errorf("unknown layout.kind %q", s.Layout.Kind)
	}
}

// Algorithm is the contract both layout algorithms share: measure against a
// proposal, place into concrete bounds.
type Algorithm interface {
	Measure(children []layout.Child, proposal layout.Proposal) layout.Size
	Place(children []layout.Child, bounds layout.Rect) []layout.Placement
}

// Item pairs a layout child with its display label for rendering.
type Item struct {
	Child layout.Child
	Label string
}

// Items builds the scene's children: the literal [[children]] entries first,
// then anything the script generates. Text children are measured with m.
func (s *Scene) Items(m *text.Measurer) ([]Item, error) {
	specs := s.Children
	if s.Script != nil && s.Script.Source != "" {
		generated, err := NewEngine().GenerateChildren(s.Script.Source)
		if err != nil {
			return nil, fmt.Errorf("scene script: %w", err)
		}
		specs = append(specs[:len(specs):len(specs)], generated...)
	}

	items := make([]Item, 0, len(specs))
	for i, spec := range specs {
		item, err := spec.item(m)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (spec ChildSpec) item(m *text.Measurer) (Item, error) {
	label := spec.Label

	if spec.Text != "" {
		if spec.Width != 0 || spec.Height != 0 {
			return Item{}, fmt.Errorf("child has both text and fixed size")
		}
		c := text.NewChild(m, spec.Text)
		c.BreakAfter = spec.BreakAfter
		if label == "" {
			label = spec.Text
		}
		return Item{Child: c, Label: label}, nil
	}

	if spec.Width <= 0 || spec.Height <= 0 {
		return Item{}, fmt.Errorf("box child must have positive size, got %gx%g",
			spec.Width, spec.Height)
	}
	return Item{
		Child: Box{W: spec.Width, H: spec.Height, Break: spec.BreakAfter},
		Label: label,
	}, nil
}

// Children strips the labels off a slice of items for the layout calls.
func Children(items []Item) []layout.Child {
	children := make([]layout.Child, len(items))
	for i, item := range items {
		children[i] = item.Child
	}
	return children
}

// Box is a fixed-size scene child.
type Box struct {
	W, H  float64
	Break bool
}

// IntrinsicSize implements layout.Child. A Box wants the same size whatever
// the proposal.
func (b Box) IntrinsicSize(layout.Proposal) layout.Size {
	return layout.Size{Width: b.W, Height: b.H}
}

// ForcedBreakAfter implements layout.Breaker.
func (b Box) ForcedBreakAfter() bool { return b.Break }
