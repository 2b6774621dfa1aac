// Package visualtest renders layout scenes to PNG files and compares the
// results pixel by pixel. It backs the visual regression tests and the
// `flowbox render` command's output path handling.
package visualtest

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"flowbox/pkg/render"
	"flowbox/pkg/scene"
	"flowbox/pkg/text"
)

// CompareResult contains the results of an image comparison.
type CompareResult struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // largest per-channel difference found
}

// CompareOptions configures the image comparison.
type CompareOptions struct {
	// Tolerance is the maximum allowed difference per color channel
	// (0-255). Layout previews are flat-color fills, so 0 works for
	// same-platform comparisons; 2-3 absorbs minor rasterizer drift.
	Tolerance int

	// SaveDiffImage writes an image highlighting mismatched pixels in red
	// to DiffImagePath when the comparison fails.
	SaveDiffImage bool
	DiffImagePath string
}

// RenderSceneToFile lays out a scene and writes the preview to a PNG file.
// The canvas is the scene's container size; children that overflow it are
// clipped at the image edge.
func RenderSceneToFile(s *scene.Scene, outputPath string) error {
	m := text.NewMeasurer()
	items, err := s.Items(m)
	if err != nil {
		return err
	}
	algo, err := s.BuildLayout()
	if err != nil {
		return err
	}

	placements := algo.Place(scene.Children(items), s.Bounds())

	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}

	r := render.NewRenderer(int(s.Container.Width), int(s.Container.Height))
	r.Render(s.Bounds(), placements, labels)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := r.SavePNG(outputPath); err != nil {
		return fmt.Errorf("save preview: %w", err)
	}
	return nil
}

// CompareImages compares two PNG files pixel by pixel. Differing dimensions
// fail immediately.
func CompareImages(actualPath, expectedPath string, opts CompareOptions) (*CompareResult, error) {
	actual, err := loadPNG(actualPath)
	if err != nil {
		return nil, err
	}
	expected, err := loadPNG(expectedPath)
	if err != nil {
		return nil, err
	}

	bounds := actual.Bounds()
	if bounds != expected.Bounds() {
		return &CompareResult{Match: false},
			fmt.Errorf("image dimensions differ: actual=%v, expected=%v", bounds, expected.Bounds())
	}

	result := &CompareResult{
		Match:       true,
		TotalPixels: bounds.Dx() * bounds.Dy(),
	}

	var diff *image.RGBA
	if opts.SaveDiffImage {
		diff = image.NewRGBA(bounds)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := pixelDiff(actual.At(x, y), expected.At(x, y))
			if d > result.MaxDifference {
				result.MaxDifference = d
			}

			if d > opts.Tolerance {
				result.Match = false
				result.DifferentPixels++
				if diff != nil {
					diff.Set(x, y, color.RGBA{R: 255, A: 255})
				}
			} else if diff != nil {
				gray := toGray(actual.At(x, y))
				diff.Set(x, y, color.RGBA{R: gray, G: gray, B: gray, A: 255})
			}
		}
	}

	if opts.SaveDiffImage && !result.Match && opts.DiffImagePath != "" {
		if err := savePNG(diff, opts.DiffImagePath); err != nil {
			return result, fmt.Errorf("save diff image: %w", err)
		}
	}

	return result, nil
}

// pixelDiff returns the largest per-channel difference between two colors on
// the 0-255 scale.
func pixelDiff(a, b color.Color) int {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()

	d := 0
	for _, pair := range [4][2]uint32{{ar, br}, {ag, bg}, {ab, bb}, {aa, ba}} {
		if c := absInt(int(pair[0]>>8) - int(pair[1]>>8)); c > d {
			d = c
		}
	}
	return d
}

func toGray(c color.Color) uint8 {
	r, _, _, _ := c.RGBA()
	return uint8(r >> 8)
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
