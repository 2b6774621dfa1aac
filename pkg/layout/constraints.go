package layout

import "math"

// Unconstrained marks a proposal axis with no limit. Comparisons treat it as
// positive infinity: nothing overflows an unconstrained width, so flow layout
// packs everything onto one row unless a forced break intervenes.
var Unconstrained = math.Inf(1)

// Proposal is the space a parent offers a layout (or a layout offers a child).
// IMMUTABLE - create modified copies using the With* helpers instead of
// mutating in place. Both algorithms only consult Width for their wrapping and
// distribution decisions; Height is usually unconstrained on input and
// computed as output.
type Proposal struct {
	Width  float64
	Height float64
}

// Propose creates a proposal constrained on both axes.
func Propose(width, height float64) Proposal {
	return Proposal{Width: width, Height: height}
}

// ProposeWidth creates a proposal constrained only in width.
func ProposeWidth(width float64) Proposal {
	return Proposal{Width: width, Height: Unconstrained}
}

// Unbounded creates a proposal with no constraint on either axis. Children
// measured against it report their intrinsic (preferred) size.
func Unbounded() Proposal {
	return Proposal{Width: Unconstrained, Height: Unconstrained}
}

// HasWidth reports whether the width axis carries a finite constraint.
func (p Proposal) HasWidth() bool {
	return !math.IsInf(p.Width, 1)
}

// HasHeight reports whether the height axis carries a finite constraint.
func (p Proposal) HasHeight() bool {
	return !math.IsInf(p.Height, 1)
}

// WithWidth returns a NEW Proposal with a modified width constraint.
func (p Proposal) WithWidth(width float64) Proposal {
	return Proposal{Width: width, Height: p.Height}
}

// WithHeight returns a NEW Proposal with a modified height constraint.
func (p Proposal) WithHeight(height float64) Proposal {
	return Proposal{Width: p.Width, Height: height}
}
