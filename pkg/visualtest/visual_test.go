package visualtest

import (
	"os"
	"path/filepath"
	"testing"

	"flowbox/pkg/scene"
)

func flowScene(childWidth float64) *scene.Scene {
	return &scene.Scene{
		Container: scene.Container{Width: 200, Height: 100},
		Layout:    scene.LayoutConfig{Kind: scene.KindFlow, HSpacing: 5, VSpacing: 5},
		Children: []scene.ChildSpec{
			{Width: childWidth, Height: 20, Label: "a"},
			{Width: 60, Height: 30, Label: "b"},
			{Width: 80, Height: 25, Label: "c"},
		},
	}
}

func TestRenderScene_IsPixelDeterministic(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.png")
	second := filepath.Join(dir, "second.png")

	if err := RenderSceneToFile(flowScene(50), first); err != nil {
		t.Fatalf("RenderSceneToFile: %v", err)
	}
	if err := RenderSceneToFile(flowScene(50), second); err != nil {
		t.Fatalf("RenderSceneToFile: %v", err)
	}

	result, err := CompareImages(first, second, CompareOptions{Tolerance: 0})
	if err != nil {
		t.Fatalf("CompareImages: %v", err)
	}
	if !result.Match {
		t.Errorf("Expected identical renders of the same scene, %d pixels differ (max diff %d)",
			result.DifferentPixels, result.MaxDifference)
	}
}

func TestCompareImages_DetectsLayoutChange(t *testing.T) {
	dir := t.TempDir()
	narrow := filepath.Join(dir, "narrow.png")
	wide := filepath.Join(dir, "wide.png")
	diff := filepath.Join(dir, "diff.png")

	if err := RenderSceneToFile(flowScene(40), narrow); err != nil {
		t.Fatalf("RenderSceneToFile: %v", err)
	}
	if err := RenderSceneToFile(flowScene(90), wide); err != nil {
		t.Fatalf("RenderSceneToFile: %v", err)
	}

	result, err := CompareImages(narrow, wide, CompareOptions{
		Tolerance:     0,
		SaveDiffImage: true,
		DiffImagePath: diff,
	})
	if err != nil {
		t.Fatalf("CompareImages: %v", err)
	}
	if result.Match {
		t.Fatal("Expected differing scenes to produce differing previews")
	}
	if result.DifferentPixels == 0 {
		t.Error("Expected a positive differing pixel count")
	}
	if _, err := os.Stat(diff); err != nil {
		t.Errorf("Expected diff image at %s: %v", diff, err)
	}
}

func TestCompareImages_RejectsDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.png")
	large := filepath.Join(dir, "large.png")

	if err := RenderSceneToFile(flowScene(50), small); err != nil {
		t.Fatalf("RenderSceneToFile: %v", err)
	}

	big := flowScene(50)
	big.Container.Width = 400
	if err := RenderSceneToFile(big, large); err != nil {
		t.Fatalf("RenderSceneToFile: %v", err)
	}

	if _, err := CompareImages(small, large, CompareOptions{}); err == nil {
		t.Error("Expected error for mismatched image dimensions")
	}
}

func TestRenderScene_Centered(t *testing.T) {
	s := &scene.Scene{
		Container: scene.Container{Width: 300, Height: 80},
		Layout:    scene.LayoutConfig{Kind: scene.KindCentered, Spacing: 10},
		Children: []scene.ChildSpec{
			{Width: 40, Height: 20, Label: "l"},
			{Width: 60, Height: 40, Label: "c"},
			{Width: 40, Height: 20, Label: "r"},
		},
	}

	out := filepath.Join(t.TempDir(), "nested", "centered.png")
	if err := RenderSceneToFile(s, out); err != nil {
		t.Fatalf("RenderSceneToFile: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Expected preview written (including parent dir): %v", err)
	}
}
