package diagram

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExportSectionSketchCreatesDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sketches", "section.png")
	data := SectionSketchData{
		Width:    200,
		Depth:    450,
		MainBars: "3T16 Bottom",
		TopBars:  "2T12 Top",
		Links:    "R8/R10 @ 175mm",
	}
	if err := ExportSectionSketch(data, out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("exported file missing: %v", err)
	}
}

func TestExportSectionSketchBadDirectory(t *testing.T) {
	// A plain file where the parent directory should go makes
	// MkdirAll fail; the export must report that, not a later
	// confusing save error.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	data := SectionSketchData{Width: 200, Depth: 450, MainBars: "2T16 Bottom", TopBars: "2T12 Top"}
	if err := ExportSectionSketch(data, filepath.Join(blocker, "sub", "section.png")); err == nil {
		t.Error("expected an error when the output directory cannot be created")
	}
}
