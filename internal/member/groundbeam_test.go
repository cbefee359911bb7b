package member

import (
	"errors"
	"testing"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/bs8110"
)

func TestDesignGroundBeamAutoGeometry(t *testing.T) {
	tests := []struct {
		span      float64
		wantDepth float64
	}{
		{2.0, 300}, // 167 clamps up
		{3.6, 300}, // 300 exactly
		{5.4, 450},
		{9.0, 600}, // 750 clamps down
	}
	for _, tt := range tests {
		r, err := DesignGroundBeam(GroundBeamInput{Span: tt.span, Load: 10}, bs8110.Default())
		if err != nil {
			t.Fatalf("span %.1f: %v", tt.span, err)
		}
		if r.Depth != tt.wantDepth {
			t.Errorf("span %.1f: depth = %.0f, want %.0f", tt.span, r.Depth, tt.wantDepth)
		}
		if r.Width != 200 {
			t.Errorf("span %.1f: width = %.0f, want 200 for a 200mm column", tt.span, r.Width)
		}
	}
}

func TestDesignGroundBeamWidthFollowsColumn(t *testing.T) {
	r, err := DesignGroundBeam(GroundBeamInput{
		Span:        4,
		Load:        10,
		ColumnWidth: 400,
		ColumnDepth: 300,
	}, bs8110.Default())
	if err != nil {
		t.Fatal(err)
	}
	if r.Width != 320 {
		t.Errorf("width = %.0f, want 0.8·400 = 320", r.Width)
	}
}

func TestDesignGroundBeamStandalone(t *testing.T) {
	r, err := DesignGroundBeam(GroundBeamInput{Span: 3.6, Load: 10, Fcu: 25}, bs8110.Default())
	if err != nil {
		t.Fatal(err)
	}

	// 200x300 derived section: self weight 1.44 kN/m, all dead
	if !almostEqual(r.SelfWeight, 1.44, 1e-9) {
		t.Errorf("self weight = %.4f, want 1.44", r.SelfWeight)
	}
	if !almostEqual(r.UltimateUDL, 1.4*(10+1.44), 1e-9) {
		t.Errorf("ultimate UDL = %.4f, want %.4f", r.UltimateUDL, 1.4*11.44)
	}
	if !r.Check.Safe {
		t.Errorf("expected safe section, K=%.4f", r.Check.K)
	}
	if r.Check.MainBars != "2T16 Bottom" {
		t.Errorf("main bars = %q, want 2T16 Bottom", r.Check.MainBars)
	}
}

func TestDesignGroundBeamChained(t *testing.T) {
	r, err := DesignGroundBeam(GroundBeamInput{
		Span:          3,
		ColumnLoad:    77,
		ColumnSpacing: 3,
		Fcu:           25,
	}, bs8110.Default())
	if err != nil {
		t.Fatal(err)
	}

	// The spread column load is already ultimate: only the self
	// weight picks up the dead-load factor.
	want := 77.0/3.0 + 1.4*r.SelfWeight
	if !almostEqual(r.UltimateUDL, want, 1e-9) {
		t.Errorf("ultimate UDL = %.4f, want %.4f", r.UltimateUDL, want)
	}
}

func TestDesignGroundBeamIdle(t *testing.T) {
	tests := []struct {
		name string
		in   GroundBeamInput
	}{
		{"no span", GroundBeamInput{Load: 10}},
		{"no load at all", GroundBeamInput{Span: 3}},
		{"column load without spacing", GroundBeamInput{Span: 3, ColumnLoad: 77}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DesignGroundBeam(tt.in, bs8110.Default()); !errors.Is(err, ErrIncompleteInput) {
				t.Errorf("err = %v, want ErrIncompleteInput", err)
			}
		})
	}
}
