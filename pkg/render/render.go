// Package render paints layout placements into an off-screen image for
// previews and visual tests. It is a pure consumer of the layout package's
// output: the layout algorithms never depend on rendering.
package render

import (
	"image"
	"strconv"

	"github.com/fogleman/gg"

	"flowbox/pkg/layout"
)

// Palette cycled through by child index when filling placement rectangles.
// Muted tones so the label text stays readable.
var palette = [][3]float64{
	{0.69, 0.82, 0.94}, // blue
	{0.76, 0.90, 0.76}, // green
	{0.96, 0.84, 0.65}, // orange
	{0.89, 0.76, 0.89}, // purple
	{0.94, 0.80, 0.80}, // red
}

// Renderer draws one layout result at a time into a gg context. Not safe for
// concurrent use; create one Renderer per goroutine.
type Renderer struct {
	dc *gg.Context
}

// NewRenderer creates a renderer with a white canvas of the given pixel size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{dc: gg.NewContext(width, height)}
}

// Render clears the canvas and draws the container outline followed by one
// rectangle per placement. labels, when non-nil, is indexed by each
// placement's child index; children without a label get their index drawn
// instead. Placements may extend past the container (overflow is a real
// layout outcome, e.g. a maxRows row absorbing extra children) and are drawn
// wherever they land.
func (r *Renderer) Render(bounds layout.Rect, placements []layout.Placement, labels []string) {
	r.dc.SetRGB(1, 1, 1)
	r.dc.Clear()

	// Container outline
	r.dc.SetRGB(0.6, 0.6, 0.6)
	r.dc.SetLineWidth(1)
	r.dc.DrawRectangle(bounds.X, bounds.Y, bounds.Width, bounds.Height)
	r.dc.Stroke()

	for _, p := range placements {
		r.drawPlacement(p, labelFor(p, labels))
	}
}

func labelFor(p layout.Placement, labels []string) string {
	if p.Index < len(labels) && labels[p.Index] != "" {
		return labels[p.Index]
	}
	return strconv.Itoa(p.Index)
}

func (r *Renderer) drawPlacement(p layout.Placement, label string) {
	fill := palette[p.Index%len(palette)]

	r.dc.SetRGB(fill[0], fill[1], fill[2])
	r.dc.DrawRectangle(p.Position.X, p.Position.Y, p.Size.Width, p.Size.Height)
	r.dc.Fill()

	r.dc.SetRGB(0.25, 0.25, 0.25)
	r.dc.SetLineWidth(1)
	r.dc.DrawRectangle(p.Position.X, p.Position.Y, p.Size.Width, p.Size.Height)
	r.dc.Stroke()

	if label != "" && p.Size.Width > 0 && p.Size.Height > 0 {
		r.dc.SetRGB(0.1, 0.1, 0.1)
		r.dc.DrawStringAnchored(label,
			p.Position.X+p.Size.Width/2,
			p.Position.Y+p.Size.Height/2,
			0.5, 0.5)
	}
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}
