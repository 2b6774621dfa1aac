package layout

import "fmt"

// CenteredLayout pins one child at the exact midpoint of the container and
// distributes the remaining children into two side groups that split the
// leftover width evenly. The center child is fixed: it never shrinks to make
// room for side content.
//
// The center child is the one at index len(children)/2, so for even counts the
// first child of the right-hand half is pinned (4 children: index 2, with two
// children on the left and one on the right).
type CenteredLayout struct {
	Spacing float64
}

// NewCenteredLayout validates the configuration and returns a CenteredLayout.
func NewCenteredLayout(spacing float64) (*CenteredLayout, error) {
	if spacing < 0 {
		return nil, fmt.Errorf("centered layout: negative spacing %g", spacing)
	}
	return &CenteredLayout{Spacing: spacing}, nil
}

// Measure reports the size the centered layout wants for the proposed width.
// Height is the tallest child's unconstrained intrinsic height. A constrained
// proposal is echoed back as the result width; an unconstrained one reports
// the total intrinsic width of all children plus the gaps between them.
func (c *CenteredLayout) Measure(children []Child, proposal Proposal) Size {
	if len(children) == 0 {
		if proposal.HasWidth() {
			return Size{Width: proposal.Width}
		}
		return Size{}
	}

	sizes := measureAll(children, Unbounded())

	var tallest, total float64
	for i, sz := range sizes {
		if sz.Height > tallest {
			tallest = sz.Height
		}
		if i > 0 {
			total += c.Spacing
		}
		total += sz.Width
	}

	width := proposal.Width
	if !proposal.HasWidth() {
		width = total
	}
	return Size{Width: width, Height: tallest}
}

// Place positions the center child at the container midpoint and lays the
// side groups out toward it: the left group packs from bounds' left edge, the
// right group packs from the right edge inward. Every child is vertically
// centered at its own measured height.
//
// Each side is offered the same nominal width regardless of how many children
// occupy it: (bounds.Width - centerWidth)/2 minus a single spacing unit. That
// budget is split evenly among the side's children as their width proposal,
// but children are advanced by the width they actually return, so a side may
// consume more or less than its nominal share. See the package tests for the
// nominal-vs-actual comparison.
//
// Placements are returned in child index order. Empty input is a no-op.
func (c *CenteredLayout) Place(children []Child, bounds Rect) []Placement {
	if len(children) == 0 {
		return nil
	}

	center := len(children) / 2
	centerSize := children[center].IntrinsicSize(Unbounded())

	placements := make([]Placement, len(children))
	placements[center] = Placement{
		Index: center,
		Position: Position{
			X: bounds.MidX() - centerSize.Width/2,
			Y: bounds.MidY() - centerSize.Height/2,
		},
		Size: centerSize,
	}

	sideWidth := (bounds.Width-centerSize.Width)/2 - c.Spacing

	// Left group: pack left-to-right from the left edge.
	if center > 0 {
		proposal := ProposeWidth(sideWidth / float64(center))
		x := bounds.X
		for i := 0; i < center; i++ {
			sz := children[i].IntrinsicSize(proposal)
			placements[i] = Placement{
				Index:    i,
				Position: Position{X: x, Y: bounds.MidY() - sz.Height/2},
				Size:     sz,
			}
			x += sz.Width + c.Spacing
		}
	}

	// Right group: pack right-to-left from the right edge, so the visually
	// rightmost child (the last in input order) hugs the edge.
	if rightCount := len(children) - center - 1; rightCount > 0 {
		proposal := ProposeWidth(sideWidth / float64(rightCount))
		x := bounds.MaxX()
		for i := len(children) - 1; i > center; i-- {
			sz := children[i].IntrinsicSize(proposal)
			x -= sz.Width
			placements[i] = Placement{
				Index:    i,
				Position: Position{X: x, Y: bounds.MidY() - sz.Height/2},
				Size:     sz,
			}
			x -= c.Spacing
		}
	}

	return placements
}
