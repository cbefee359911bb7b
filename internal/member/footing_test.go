package member

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/bs8110"
)

func TestDesignFootingSizing(t *testing.T) {
	r, err := DesignFooting(FootingInput{
		AxialLoad:    500,
		SoilCapacity: 150,
	}, bs8110.Default())
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(r.RequiredArea, 500.0/150.0, 1e-9) {
		t.Errorf("required area = %.4f, want 3.3333", r.RequiredArea)
	}
	// √3.333 = 1.826 m, rounded up to the next 0.1 m
	if r.Side != 1.9 {
		t.Errorf("side = %.2f, want 1.9", r.Side)
	}
	if !almostEqual(r.Pressure, 500/(1.9*1.9), 1e-9) {
		t.Errorf("pressure = %.4f, want %.4f", r.Pressure, 500/(1.9*1.9))
	}
	if !r.Safe {
		t.Error("bearing should verify safe")
	}
	if r.Thickness != 300 {
		t.Errorf("thickness = %.0f, want 300 floor", r.Thickness)
	}
	if r.EffectiveDepth != 225 {
		t.Errorf("effective depth = %.0f, want 225", r.EffectiveDepth)
	}
	if r.MeshCallout != "T16@250" {
		t.Errorf("mesh = %q, want T16@250", r.MeshCallout)
	}
}

func TestDesignFootingNeverUndersizes(t *testing.T) {
	par := bs8110.Default()
	for _, load := range []float64{50, 120, 333, 500, 987} {
		for _, soil := range []float64{50, 100, 150, 200} {
			r, err := DesignFooting(FootingInput{AxialLoad: load, SoilCapacity: soil}, par)
			if err != nil {
				t.Fatal(err)
			}
			if r.Side*r.Side < r.RequiredArea-1e-9 {
				t.Errorf("load %.0f soil %.0f: plan area %.4f under required %.4f",
					load, soil, r.Side*r.Side, r.RequiredArea)
			}
			if !r.Safe {
				t.Errorf("load %.0f soil %.0f: rounded-up pad must satisfy the bearing check", load, soil)
			}
		}
	}
}

func TestDesignFootingSideMonotonicInSoil(t *testing.T) {
	par := bs8110.Default()
	prev := -1.0
	// Increasing soil capacity at fixed load never increases the side.
	for _, soil := range []float64{50, 75, 100, 150, 200, 300} {
		r, err := DesignFooting(FootingInput{AxialLoad: 500, SoilCapacity: soil}, par)
		if err != nil {
			t.Fatal(err)
		}
		if prev > 0 && r.Side > prev {
			t.Errorf("soil %.0f: side %.1f grew from %.1f", soil, r.Side, prev)
		}
		prev = r.Side
	}
}

func TestDesignFootingThicknessFollowsColumn(t *testing.T) {
	r, err := DesignFooting(FootingInput{
		AxialLoad:    400,
		SoilCapacity: 120,
		ColumnWidth:  450,
		ColumnDepth:  700,
	}, bs8110.Default())
	if err != nil {
		t.Fatal(err)
	}
	if r.Thickness != 350 {
		t.Errorf("thickness = %.0f, want max dimension / 2 = 350", r.Thickness)
	}
}

func TestDesignFootingMinimumSteelFloor(t *testing.T) {
	// A light load leaves the face moment tiny: minimum steel governs.
	r, err := DesignFooting(FootingInput{AxialLoad: 40, SoilCapacity: 100}, bs8110.Default())
	if err != nil {
		t.Fatal(err)
	}
	if r.AsRequired != r.AsMin {
		t.Errorf("As = %.1f, want minimum %.1f to govern", r.AsRequired, r.AsMin)
	}
	if r.AsMin != 0.0013*1000*r.Thickness {
		t.Errorf("AsMin = %.1f", r.AsMin)
	}
}

func TestDesignFootingStripOverCapacity(t *testing.T) {
	// A heavy load on weak soil passes the bearing check on the huge
	// rounded-up pad, but the cantilever strip at 300mm thick is far
	// over the singly reinforced limit: the verdict demotes and the
	// steel holds at the minimum floor with finite values throughout.
	r, err := DesignFooting(FootingInput{AxialLoad: 3000, SoilCapacity: 50}, bs8110.Default())
	if err != nil {
		t.Fatal(err)
	}

	if r.Side != 7.8 {
		t.Errorf("side = %.2f, want 7.8", r.Side)
	}
	if r.FlexureSafe {
		t.Errorf("strip should be over capacity, face moment %.1f kN-m/m", r.FaceMoment)
	}
	if r.Safe {
		t.Error("over-capacity strip must demote the verdict")
	}
	if r.AsRequired != r.AsMin {
		t.Errorf("As = %.1f, want held at minimum %.1f", r.AsRequired, r.AsMin)
	}
	if r.MeshCallout != "T12@250" {
		t.Errorf("mesh = %q, want T12@250 from the minimum floor", r.MeshCallout)
	}
	if math.IsNaN(r.AsRequired) || math.IsNaN(r.FaceMoment) {
		t.Error("result must stay finite")
	}
	if _, err := json.Marshal(r); err != nil {
		t.Errorf("result must encode: %v", err)
	}
}

func TestDesignFootingIdle(t *testing.T) {
	if _, err := DesignFooting(FootingInput{AxialLoad: 500}, bs8110.Default()); !errors.Is(err, ErrIncompleteInput) {
		t.Errorf("missing soil capacity: err = %v, want ErrIncompleteInput", err)
	}
	if _, err := DesignFooting(FootingInput{SoilCapacity: 150}, bs8110.Default()); !errors.Is(err, ErrIncompleteInput) {
		t.Errorf("missing load: err = %v, want ErrIncompleteInput", err)
	}
}
