package member

import (
	"errors"
	"math"
	"testing"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/bs8110"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDesignBeamAutoGeometry(t *testing.T) {
	tests := []struct {
		span      float64
		wantDepth float64
		wantWidth float64
	}{
		{4.0, 300, 150},  // 4000/14 = 285.7 -> 300 floor governs
		{6.0, 450, 200},  // 6000/14 = 428.6 -> 450; 450/2.5 = 180 -> 200
		{8.4, 600, 250},  // 8400/14 = 600 exactly
		{2.0, 300, 150},  // short span hits both floors
	}
	for _, tt := range tests {
		r, err := DesignBeam(BeamInput{Span: tt.span, TributaryWidth: 1, LiveLoad: 1.5}, bs8110.Default())
		if err != nil {
			t.Fatalf("span %.1f: %v", tt.span, err)
		}
		if r.Depth != tt.wantDepth || r.Width != tt.wantWidth {
			t.Errorf("span %.1f: section %.0fx%.0f, want %.0fx%.0f",
				tt.span, r.Width, r.Depth, tt.wantWidth, tt.wantDepth)
		}
	}
}

func TestDesignBeamLoadBuildUp(t *testing.T) {
	par := bs8110.Default()
	r, err := DesignBeam(BeamInput{
		Span:           4,
		TributaryWidth: 3,
		WallHeight:     3,
		LiveLoad:       1.5,
		Fcu:            25,
	}, par)
	if err != nil {
		t.Fatal(err)
	}

	// 150x300 auto section: self 1.08, slab 12.0, wall 7.8, live 4.5
	if !almostEqual(r.SelfWeight, 1.08, 1e-9) {
		t.Errorf("self weight = %.4f, want 1.08", r.SelfWeight)
	}
	if !almostEqual(r.DeadLoad, 20.88, 1e-9) {
		t.Errorf("dead load = %.4f, want 20.88", r.DeadLoad)
	}
	if !almostEqual(r.LiveLoad, 4.5, 1e-9) {
		t.Errorf("live load = %.4f, want 4.5", r.LiveLoad)
	}
	if !almostEqual(r.UltimateUDL, 1.4*20.88+1.6*4.5, 1e-9) {
		t.Errorf("ultimate UDL = %.4f", r.UltimateUDL)
	}
	if !almostEqual(r.Reaction, r.UltimateUDL*4/2, 1e-9) {
		t.Errorf("reaction = %.4f", r.Reaction)
	}
	if !almostEqual(r.Check.Moment, r.UltimateUDL*16/8, 1e-9) {
		t.Errorf("moment = %.4f", r.Check.Moment)
	}

	// This heavily loaded auto section is over the singly reinforced
	// limit: the verdict is UNSAFE with the steel fields at defaults.
	if r.Check.Safe {
		t.Errorf("expected unsafe verdict, K=%.4f", r.Check.K)
	}
	if r.Check.MainBars != "None" {
		t.Errorf("main bars = %q, want None", r.Check.MainBars)
	}
}

func TestDesignBeamLightLoadingIsSafe(t *testing.T) {
	r, err := DesignBeam(BeamInput{
		Span:           4,
		TributaryWidth: 1,
		LiveLoad:       1.5,
		Fcu:            25,
	}, bs8110.Default())
	if err != nil {
		t.Fatal(err)
	}
	if !r.Check.Safe {
		t.Fatalf("expected safe verdict, K=%.4f", r.Check.K)
	}
	if r.Check.MainBars == "None" {
		t.Error("expected a concrete bar callout")
	}
}

func TestDesignBeamIdleOnMissingSpan(t *testing.T) {
	for _, span := range []float64{0, -2} {
		_, err := DesignBeam(BeamInput{Span: span, TributaryWidth: 3}, bs8110.Default())
		if !errors.Is(err, ErrIncompleteInput) {
			t.Errorf("span %.1f: err = %v, want ErrIncompleteInput", span, err)
		}
	}
}

func TestDesignBeamDeterministic(t *testing.T) {
	in := BeamInput{Span: 5.2, Width: 200, Depth: 425, TributaryWidth: 2.2, WallHeight: 2.7, LiveLoad: 2, Fcu: 30}
	par := bs8110.Default()
	a, err := DesignBeam(in, par)
	if err != nil {
		t.Fatal(err)
	}
	b, err := DesignBeam(in, par)
	if err != nil {
		t.Fatal(err)
	}
	if *a.Check != *b.Check || a.Reaction != b.Reaction {
		t.Error("identical inputs must give bit-identical results")
	}
}
