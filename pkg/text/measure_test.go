package text

import (
	"testing"

	"flowbox/pkg/layout"
)

func TestMeasureString_WidthGrowsWithText(t *testing.T) {
	m := NewMeasurer()

	short, _ := m.MeasureString("hi")
	long, _ := m.MeasureString("a considerably longer string")

	if short <= 0 {
		t.Errorf("Expected positive width for non-empty string, got %g", short)
	}
	if long <= short {
		t.Errorf("Expected longer string to measure wider: %g vs %g", long, short)
	}
}

func TestChild_UnconstrainedIsSingleLine(t *testing.T) {
	m := NewMeasurer()
	c := NewChild(m, "the quick brown fox jumps over the lazy dog")

	size := c.IntrinsicSize(layout.Unbounded())

	_, lineH := m.MeasureString(c.Text)
	if size.Height != lineH {
		t.Errorf("Expected single-line height %g, got %g", lineH, size.Height)
	}

	lines := c.Lines(layout.Unbounded())
	if len(lines) != 1 {
		t.Errorf("Expected 1 line unconstrained, got %d", len(lines))
	}
}

func TestChild_ConstrainedWidthWraps(t *testing.T) {
	m := NewMeasurer()
	c := NewChild(m, "the quick brown fox jumps over the lazy dog")

	unconstrained := c.IntrinsicSize(layout.Unbounded())
	narrow := c.IntrinsicSize(layout.ProposeWidth(unconstrained.Width / 3))

	if narrow.Width >= unconstrained.Width {
		t.Errorf("Expected wrapped width %g to be narrower than %g", narrow.Width, unconstrained.Width)
	}
	if narrow.Height <= unconstrained.Height {
		t.Errorf("Expected wrapped text to be taller: %g vs %g", narrow.Height, unconstrained.Height)
	}

	lines := c.Lines(layout.ProposeWidth(unconstrained.Width / 3))
	if len(lines) < 2 {
		t.Errorf("Expected at least 2 wrapped lines, got %d", len(lines))
	}
	if narrow.Height != float64(len(lines))*m.LineHeight() {
		t.Errorf("Expected height %g for %d lines, got %g",
			float64(len(lines))*m.LineHeight(), len(lines), narrow.Height)
	}
}

func TestChild_EmptyText(t *testing.T) {
	m := NewMeasurer()
	c := NewChild(m, "")

	size := c.IntrinsicSize(layout.ProposeWidth(100))
	if size.Width != 0 || size.Height != 0 {
		t.Errorf("Expected zero size for empty text, got %gx%g", size.Width, size.Height)
	}
}

func TestChild_ForcedBreakAfter(t *testing.T) {
	m := NewMeasurer()
	c := NewChild(m, "hello")

	var asBreaker layout.Breaker = c
	if asBreaker.ForcedBreakAfter() {
		t.Error("Expected no forced break by default")
	}

	c.BreakAfter = true
	if !asBreaker.ForcedBreakAfter() {
		t.Error("Expected forced break after setting BreakAfter")
	}
}
