package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testScene = `
[container]
width = 300
height = 120

[layout]
kind = "flow"
hspacing = 8
vspacing = 4

[[children]]
width = 50
height = 20
label = "a"

[[children]]
width = 60
height = 20
break_after = true

[[children]]
width = 40
height = 10
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRenderCmd_WritesPreview(t *testing.T) {
	scenePath := writeScene(t, testScene)
	out := filepath.Join(t.TempDir(), "preview.png")

	cmd := newRenderCmd()
	cmd.SetArgs([]string{scenePath, "-o", out})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Expected preview at %s: %v", out, err)
	}
}

func TestRenderCmd_DefaultsOutputNextToScene(t *testing.T) {
	scenePath := writeScene(t, testScene)

	cmd := newRenderCmd()
	cmd.SetArgs([]string{scenePath})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := strings.TrimSuffix(scenePath, ".toml") + ".png"
	if _, err := os.Stat(want); err != nil {
		t.Errorf("Expected preview at %s: %v", want, err)
	}
}

func TestMeasureCmd_PrintsSizes(t *testing.T) {
	scenePath := writeScene(t, testScene)

	var out bytes.Buffer
	cmd := newMeasureCmd()
	cmd.SetArgs([]string{scenePath, "-w", "120", "--unconstrained"})
	cmd.SetOut(&out)
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("measure: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "width 120: 120 x ") {
		t.Errorf("Expected measurement at width 120, got:\n%s", got)
	}
	if !strings.Contains(got, "unconstrained: ") {
		t.Errorf("Expected unconstrained measurement, got:\n%s", got)
	}
}

func TestRowsCmd_DumpsPartition(t *testing.T) {
	scenePath := writeScene(t, testScene)

	var out bytes.Buffer
	cmd := newRowsCmd()
	cmd.SetArgs([]string{scenePath})
	cmd.SetOut(&out)
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("rows: %v", err)
	}

	got := out.String()
	// The forced break after child 1 splits three fitting children in two rows.
	if !strings.HasPrefix(got, "2 rows at width 300") {
		t.Errorf("Expected 2 rows, got:\n%s", got)
	}
	if !strings.Contains(got, "row 0: children [0 1]") {
		t.Errorf("Expected first row [0 1], got:\n%s", got)
	}
	if !strings.Contains(got, "row 1: children [2]") {
		t.Errorf("Expected second row [2], got:\n%s", got)
	}
}

func TestRowsCmd_RejectsCenteredScene(t *testing.T) {
	scenePath := writeScene(t, strings.Replace(testScene, `kind = "flow"`, `kind = "centered"`, 1))

	cmd := newRowsCmd()
	cmd.SetArgs([]string{scenePath})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for centered scene")
	}
}
