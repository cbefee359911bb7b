package member

import (
	"math"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/bs8110"
	"github.com/me-yeatz/Beamsafe-Mypro/internal/section"
)

// BeamInput describes the primary flexural beam of the frame.
type BeamInput struct {
	Span  float64 `json:"span_m"`             // m [required]
	Width float64 `json:"width_mm,omitempty"` // mm, 0 = derive from span
	Depth float64 `json:"depth_mm,omitempty"` // mm, 0 = derive from span

	TributaryWidth float64 `json:"tributary_width_m"` // m of slab carried
	WallHeight     float64 `json:"wall_height_m"`     // m of blockwork carried
	LiveLoad       float64 `json:"live_load_kpa"`     // kPa on the slab

	Fcu float64 `json:"fcu_mpa,omitempty"` // MPa, 0 = parameter default
}

// BeamResult holds the sized geometry, the load build-up and the section
// check for the primary beam. Reaction feeds the column stage.
type BeamResult struct {
	// Geometry as designed (mm)
	Width float64 `json:"width_mm"`
	Depth float64 `json:"depth_mm"`

	// Load build-up (kN/m)
	SelfWeight  float64 `json:"self_weight_kn_m"`
	DeadLoad    float64 `json:"dead_load_kn_m"`
	LiveLoad    float64 `json:"live_load_kn_m"`
	UltimateUDL float64 `json:"ultimate_udl_kn_m"`

	// End reaction at ultimate (kN)
	Reaction float64 `json:"reaction_kn"`

	Check *section.CheckResult `json:"check"`
}

// DesignBeam sizes and verifies the primary beam for a simply supported
// span under slab, wall and live loading.
//
// When width or depth is zero the section is derived from the span:
// depth from the span/14 rule rounded up to 25mm and floored at 300mm,
// width from depth/2.5 floored at 150mm.
func DesignBeam(in BeamInput, par bs8110.Parameters) (*BeamResult, error) {
	if in.Span <= 0 {
		return nil, ErrIncompleteInput
	}
	if in.Fcu <= 0 {
		in.Fcu = par.DefaultFcu
	}
	if in.Depth <= 0 {
		in.Depth = math.Max(300, roundUpTo(in.Span*1000/14, 25))
	}
	if in.Width <= 0 {
		in.Width = math.Max(150, roundUpTo(in.Depth/2.5, 25))
	}

	r := &BeamResult{Width: in.Width, Depth: in.Depth}

	r.SelfWeight = (in.Width / 1000) * (in.Depth / 1000) * par.ConcreteDensity
	r.DeadLoad = r.SelfWeight + par.SlabDead*in.TributaryWidth + par.WallDead*in.WallHeight
	r.LiveLoad = in.LiveLoad * in.TributaryWidth
	r.UltimateUDL = par.UltimateLoad(r.DeadLoad, r.LiveLoad)

	// Simply supported: M = wL²/8, V = wL/2
	mu := r.UltimateUDL * in.Span * in.Span / 8
	r.Reaction = r.UltimateUDL * in.Span / 2

	r.Check = section.Check(section.CheckInput{
		Moment:         mu,
		Shear:          r.Reaction,
		Width:          in.Width,
		OverallDepth:   in.Depth,
		EffectiveDepth: in.Depth - par.CoverInternal - bs8110.LinkAllowance - bs8110.BarAllowance,
		Fcu:            in.Fcu,
		Fy:             par.SteelYield,
	})

	return r, nil
}
