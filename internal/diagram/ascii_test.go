package diagram

import (
	"strings"
	"testing"
)

func TestBarCount(t *testing.T) {
	tests := []struct {
		callout string
		want    int
	}{
		{"2T12 Bottom", 2},
		{"3T16 Bottom", 3},
		{"4T20 Bottom", 4},
		{"2T12 Top", 2},
		{"None", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := barCount(tt.callout); got != tt.want {
			t.Errorf("barCount(%q) = %d, want %d", tt.callout, got, tt.want)
		}
	}
}

func TestDrawSectionSketchCarriesCallouts(t *testing.T) {
	out := DrawSectionSketch(SectionSketchData{
		Width:      200,
		Depth:      450,
		MainBars:   "3T16 Bottom",
		TopBars:    "2T12 Top",
		Links:      "R8/R10 @ 175mm",
		AsRequired: 480,
	})
	for _, want := range []string{"3T16 Bottom", "2T12 Top", "R8/R10 @ 175mm", "b = 200 mm", "h = 450 mm"} {
		if !strings.Contains(out, want) {
			t.Errorf("sketch missing %q", want)
		}
	}
}

func TestDrawFootingSketchCarriesCallouts(t *testing.T) {
	out := DrawFootingSketch(FootingSketchData{
		Side:        1.9,
		Thickness:   300,
		ColumnWidth: 200,
		ColumnDepth: 200,
		Mesh:        "T16@250",
		Pressure:    138.5,
	})
	for _, want := range []string{"1.9 x 1.9 m", "T16@250", "300 mm"} {
		if !strings.Contains(out, want) {
			t.Errorf("sketch missing %q", want)
		}
	}
}

func TestDrawMomentDiagramPeak(t *testing.T) {
	out := DrawMomentDiagram(10, 4)
	if !strings.Contains(out, "Mmax = 20.00 kN-m") {
		t.Errorf("diagram missing peak moment annotation:\n%s", out)
	}
}
