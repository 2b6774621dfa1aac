// Package text provides text-bearing layout children measured with a gg
// drawing context. It is the repository's concrete host-side collaborator for
// the layout package: the layouts only see the Child interface, the actual
// glyph measurement happens here.
package text

import (
	"fmt"

	"github.com/fogleman/gg"

	"flowbox/pkg/layout"
)

// lineSpacing is the multiplier applied to the font height for wrapped lines.
// Matches the spacing the render package uses when drawing wrapped text.
const lineSpacing = 1.2

// Measurer measures strings against a font face. The zero font configuration
// uses gg's built-in bitmap face so measurement works without any font files;
// LoadFontFace switches to a TTF/OTF face.
//
// A Measurer wraps a single gg context and is NOT safe for concurrent use.
// Layout passes that share one Measurer across goroutines must serialize
// access themselves.
type Measurer struct {
	dc *gg.Context
}

// NewMeasurer creates a measurer backed by a throwaway 1x1 context.
func NewMeasurer() *Measurer {
	return &Measurer{dc: gg.NewContext(1, 1)}
}

// LoadFontFace replaces the measuring face with a font loaded from path at
// the given point size.
func (m *Measurer) LoadFontFace(path string, points float64) error {
	if err := m.dc.LoadFontFace(path, points); err != nil {
		return fmt.Errorf("load font %s: %w", path, err)
	}
	return nil
}

// MeasureString returns the rendered width and height of a single line.
func (m *Measurer) MeasureString(s string) (width, height float64) {
	return m.dc.MeasureString(s)
}

// LineHeight returns the vertical advance between wrapped lines.
func (m *Measurer) LineHeight() float64 {
	return m.dc.FontHeight() * lineSpacing
}

// Wrap breaks s into lines no wider than maxWidth, at word boundaries.
// A single word wider than maxWidth stays on its own overlong line.
func (m *Measurer) Wrap(s string, maxWidth float64) []string {
	return m.dc.WordWrap(s, maxWidth)
}

// Child is a text layout participant. Unconstrained, it wants a single line
// at full string width; offered a finite width it word-wraps and reports the
// widest resulting line and the stacked line height.
type Child struct {
	Text       string
	BreakAfter bool // end the flow row after this child

	m *Measurer
}

// NewChild creates a text child measured by m.
func NewChild(m *Measurer, text string) *Child {
	return &Child{Text: text, m: m}
}

// IntrinsicSize implements layout.Child.
func (c *Child) IntrinsicSize(proposal layout.Proposal) layout.Size {
	if c.Text == "" {
		return layout.Size{}
	}
	if !proposal.HasWidth() {
		w, h := c.m.MeasureString(c.Text)
		return layout.Size{Width: w, Height: h}
	}

	lines := c.m.Wrap(c.Text, proposal.Width)
	if len(lines) == 0 {
		return layout.Size{}
	}

	var widest float64
	for _, line := range lines {
		if w, _ := c.m.MeasureString(line); w > widest {
			widest = w
		}
	}
	return layout.Size{
		Width:  widest,
		Height: float64(len(lines)) * c.m.LineHeight(),
	}
}

// Lines returns the wrapped lines of the child for the given width, or the
// whole text as one line when width is unconstrained. The render package uses
// this to draw the same break points the measurement reported.
func (c *Child) Lines(proposal layout.Proposal) []string {
	if !proposal.HasWidth() {
		return []string{c.Text}
	}
	return c.m.Wrap(c.Text, proposal.Width)
}

// ForcedBreakAfter implements layout.Breaker.
func (c *Child) ForcedBreakAfter() bool { return c.BreakAfter }
