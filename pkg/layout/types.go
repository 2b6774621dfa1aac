package layout

// Size represents dimensions (width and height)
type Size struct {
	Width  float64
	Height float64
}

// Position represents a 2D coordinate
type Position struct {
	X float64
	Y float64
}

// Rect represents a rectangular region
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// MaxX returns the right edge of the rect.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge of the rect.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// MidX returns the horizontal midpoint of the rect.
func (r Rect) MidX() float64 { return r.X + r.Width/2 }

// MidY returns the vertical midpoint of the rect.
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// Child is one layout participant. The layout algorithms treat children as
// opaque: the only thing they ever ask is "how big do you want to be, given
// this proposal". Measurement is delegated to the host; it must be stable for
// the duration of a single Measure or Place call.
type Child interface {
	IntrinsicSize(proposal Proposal) Size
}

// Breaker is an optional capability a Child can implement to request that the
// flow layout end the current row after placing it. Children that do not
// implement Breaker never force a break.
type Breaker interface {
	ForcedBreakAfter() bool
}

// Placement is the output of layout for a single child: where it goes and how
// big it is. Placements are created fresh on every Place call and are never
// retained by the layout.
type Placement struct {
	Index    int // index into the children slice passed to Place
	Position Position
	Size     Size
}

// Row is one visual line of the flow layout. Rows are ephemeral: they are
// recomputed on every pass and no row state survives between calls.
//
// Width is the packed content width including inter-child spacing. Height is
// the maximum intrinsic height among the row's members.
type Row struct {
	Indices []int
	Width   float64
	Height  float64
}

// forcedBreakAfter reports whether the child asks to end its row.
func forcedBreakAfter(c Child) bool {
	b, ok := c.(Breaker)
	return ok && b.ForcedBreakAfter()
}
