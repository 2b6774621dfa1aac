package layout

import "fmt"

// FlowLayout packs children left-to-right and wraps to a new row when the next
// child would overflow the available width. A child implementing Breaker can
// force the row to end after it, and MaxRows caps how many rows may be
// produced.
//
// FlowLayout is stateless: Measure and Place are pure functions of their
// arguments and the children's intrinsic sizes. Identical inputs always
// produce identical outputs.
type FlowLayout struct {
	HSpacing float64 // gap between adjacent children on a row
	VSpacing float64 // gap between adjacent rows
	MaxRows  int     // 0 means unlimited
}

// NewFlowLayout validates the configuration and returns a FlowLayout.
// Spacing must be non-negative and maxRows must be zero (unlimited) or
// positive. Validation happens here, once, so Measure and Place stay pure.
func NewFlowLayout(hspacing, vspacing float64, maxRows int) (*FlowLayout, error) {
	if hspacing < 0 || vspacing < 0 {
		return nil, fmt.Errorf("flow layout: negative spacing (h=%g, v=%g)", hspacing, vspacing)
	}
	if maxRows < 0 {
		return nil, fmt.Errorf("flow layout: negative maxRows %d", maxRows)
	}
	return &FlowLayout{HSpacing: hspacing, VSpacing: vspacing, MaxRows: maxRows}, nil
}

// Rows computes the row partition for the given children against maxWidth.
// This is the shared core of Measure and Place; it is exported so callers can
// inspect the partition directly (debug tooling, tests).
//
// Invariants: every child lands in exactly one row, row order matches input
// order, and a row's height is the maximum intrinsic height of its members.
func (f *FlowLayout) Rows(children []Child, maxWidth float64) []Row {
	sizes := measureAll(children, Unbounded())
	return f.partition(children, sizes, maxWidth)
}

// Measure reports the size the flow layout wants for the proposed width.
//
// A constrained proposal is echoed back as the result width; an unconstrained
// one reports the widest packed row instead (so callers always receive a
// usable width, never a default zero). Height is the sum of row heights plus
// VSpacing between consecutive rows.
func (f *FlowLayout) Measure(children []Child, proposal Proposal) Size {
	if len(children) == 0 {
		if proposal.HasWidth() {
			return Size{Width: proposal.Width}
		}
		return Size{}
	}

	sizes := measureAll(children, Unbounded())
	rows := f.partition(children, sizes, proposal.Width)

	var height, widest float64
	for i, row := range rows {
		if i > 0 {
			height += f.VSpacing
		}
		height += row.Height
		if row.Width > widest {
			widest = row.Width
		}
	}

	width := proposal.Width
	if !proposal.HasWidth() {
		width = widest
	}
	return Size{Width: width, Height: height}
}

// Place computes the same row partition as Measure against bounds.Width and
// assigns every child a position. Children are placed left-to-right from
// bounds.X, rows top-to-bottom from bounds.Y. Each child gets its intrinsic
// size; the layout never stretches or compresses a child to fill a row.
func (f *FlowLayout) Place(children []Child, bounds Rect) []Placement {
	if len(children) == 0 {
		return nil
	}

	sizes := measureAll(children, Unbounded())
	rows := f.partition(children, sizes, bounds.Width)

	placements := make([]Placement, 0, len(children))
	y := bounds.Y
	for _, row := range rows {
		x := bounds.X
		for _, idx := range row.Indices {
			placements = append(placements, Placement{
				Index:    idx,
				Position: Position{X: x, Y: y},
				Size:     sizes[idx],
			})
			x += sizes[idx].Width + f.HSpacing
		}
		y += row.Height + f.VSpacing
	}
	return placements
}

// partition runs the greedy row-packing pass over pre-measured child sizes.
//
// The rules, in order:
//  1. A child that fits on the current row (or starts an empty row) joins it.
//     A single child wider than maxWidth is never rejected: it occupies its
//     own row at full intrinsic width and the host clips the overflow.
//  2. A child that would overflow a non-empty row closes that row and opens a
//     new one.
//  3. After a child joins a row, a forced break closes the row immediately.
//  4. Once the row under construction is the last one MaxRows permits, both
//     overflow wrapping and forced breaks are suspended: the last row absorbs
//     every remaining child rather than dropping any.
func (f *FlowLayout) partition(children []Child, sizes []Size, maxWidth float64) []Row {
	var rows []Row
	var cur Row

	// lastPermitted reports whether the row being built is the final row
	// MaxRows allows.
	lastPermitted := func() bool {
		return f.MaxRows > 0 && len(rows) == f.MaxRows-1
	}
	closeRow := func() {
		rows = append(rows, cur)
		cur = Row{}
	}

	for i, sz := range sizes {
		required := sz.Width
		if len(cur.Indices) > 0 {
			required = cur.Width + f.HSpacing + sz.Width
		}

		if len(cur.Indices) > 0 && required > maxWidth && !lastPermitted() {
			closeRow()
			required = sz.Width
		}

		cur.Indices = append(cur.Indices, i)
		cur.Width = required
		if sz.Height > cur.Height {
			cur.Height = sz.Height
		}

		if forcedBreakAfter(children[i]) && !lastPermitted() {
			closeRow()
		}
	}

	if len(cur.Indices) > 0 {
		closeRow()
	}
	return rows
}

// measureAll queries every child's intrinsic size exactly once against the
// given proposal. Layout passes work on the returned slice so no child is
// measured twice within one call.
func measureAll(children []Child, proposal Proposal) []Size {
	sizes := make([]Size, len(children))
	for i, c := range children {
		sizes[i] = c.IntrinsicSize(proposal)
	}
	return sizes
}
