// Command flowshow opens an interactive preview window for a scene file.
// Typing a new container width re-runs layout and rendering, which makes it
// easy to watch rows wrap, forced breaks fire, and the centered layout hold
// its pinned child in place.
//
// Usage: flowshow <scene.toml>
package main

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"flowbox/pkg/layout"
	"flowbox/pkg/render"
	"flowbox/pkg/scene"
	"flowbox/pkg/text"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: flowshow <scene.toml>")
		os.Exit(1)
	}

	s, err := scene.Load(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	items, err := s.Items(text.NewMeasurer())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	children := scene.Children(items)

	algo, err := s.BuildLayout()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("flowbox preview")
	w.Resize(fyne.NewSize(float32(s.Container.Width)+40, float32(s.Container.Height)+120))

	canvasImg := canvas.NewImageFromImage(preview(s, algo, children, labels, s.Container.Width))
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel(fmt.Sprintf("%s: width %g", s.Layout.Kind, s.Container.Width))

	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder(fmt.Sprintf("container width (%g)", s.Container.Width))
	widthEntry.OnSubmitted = func(v string) {
		width, err := strconv.ParseFloat(v, 64)
		if err != nil || width <= 0 {
			status.SetText("invalid width: " + v)
			return
		}
		canvasImg.Image = preview(s, algo, children, labels, width)
		canvasImg.Refresh()
		status.SetText(fmt.Sprintf("%s: width %g", s.Layout.Kind, width))
	}

	w.SetContent(container.NewBorder(widthEntry, status, nil, nil, canvasImg))
	w.ShowAndRun()
}

// preview lays the scene out at the given container width and renders it.
// Height stays at the scene's configured value; overflow is clipped.
func preview(s *scene.Scene, algo scene.Algorithm, children []layout.Child, labels []string, width float64) image.Image {
	bounds := layout.Rect{Width: width, Height: s.Container.Height}
	placements := algo.Place(children, bounds)

	r := render.NewRenderer(int(width), int(s.Container.Height))
	r.Render(bounds, placements, labels)
	return r.Image()
}
