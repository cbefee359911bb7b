package member

import (
	"math"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/bs8110"
	"github.com/me-yeatz/Beamsafe-Mypro/internal/section"
)

// GroundBeamInput describes the ground beam spanning between footings.
//
// The distributed load is supplied one of two ways: directly as a
// service load intensity (standalone variant), or as a column ultimate
// load spread over the column spacing (chained variant). ColumnLoad
// takes precedence when both are given.
type GroundBeamInput struct {
	Span  float64 `json:"span_m"`             // m [required]
	Width float64 `json:"width_mm,omitempty"` // mm, 0 = derive
	Depth float64 `json:"depth_mm,omitempty"` // mm, 0 = derive

	Load          float64 `json:"load_kn_m,omitempty"`        // service load, kN/m
	ColumnLoad    float64 `json:"column_load_kn,omitempty"`   // ultimate, kN
	ColumnSpacing float64 `json:"column_spacing_m,omitempty"` // m

	// Supported column section (mm), sizes the default width; 0 = 200
	ColumnWidth float64 `json:"column_width_mm,omitempty"`
	ColumnDepth float64 `json:"column_depth_mm,omitempty"`

	Fcu float64 `json:"fcu_mpa,omitempty"` // MPa, 0 = parameter default
}

// GroundBeamResult holds the sized geometry, the load build-up and the
// section check for the ground beam.
type GroundBeamResult struct {
	Width float64 `json:"width_mm"`
	Depth float64 `json:"depth_mm"`

	SelfWeight  float64 `json:"self_weight_kn_m"` // characteristic, kN/m
	AppliedUDL  float64 `json:"applied_udl_kn_m"` // before the self-weight share
	UltimateUDL float64 `json:"ultimate_udl_kn_m"`

	Check *section.CheckResult `json:"check"`
}

// DesignGroundBeam sizes and verifies a ground beam with the same
// flexure and shear rules as the primary beam, with ground-contact
// cover. A derived depth follows the span/12 rule clamped to the
// 300-600mm band; a derived width is 80% of the larger supported
// column dimension, floored at 200mm.
//
// In the chained variant the spread column load is already an ultimate
// value, so only the self-weight picks up the dead-load factor. The
// standalone intensity is treated as an unfactored dead load.
func DesignGroundBeam(in GroundBeamInput, par bs8110.Parameters) (*GroundBeamResult, error) {
	if in.Span <= 0 {
		return nil, ErrIncompleteInput
	}
	chained := in.ColumnLoad > 0
	if chained && in.ColumnSpacing <= 0 {
		return nil, ErrIncompleteInput
	}
	if !chained && in.Load <= 0 {
		return nil, ErrIncompleteInput
	}
	if in.ColumnWidth <= 0 {
		in.ColumnWidth = 200
	}
	if in.ColumnDepth <= 0 {
		in.ColumnDepth = 200
	}
	if in.Fcu <= 0 {
		in.Fcu = par.DefaultFcu
	}

	maxDim := math.Max(in.ColumnWidth, in.ColumnDepth)
	if in.Depth <= 0 {
		in.Depth = math.Min(math.Max(in.Span*1000/12, 300), 600)
	}
	if in.Width <= 0 {
		in.Width = math.Max(200, 0.8*maxDim)
	}

	r := &GroundBeamResult{Width: in.Width, Depth: in.Depth}
	r.SelfWeight = (in.Width / 1000) * (in.Depth / 1000) * par.ConcreteDensity

	if chained {
		r.AppliedUDL = in.ColumnLoad / in.ColumnSpacing
		r.UltimateUDL = r.AppliedUDL + par.GammaDead*r.SelfWeight
	} else {
		r.AppliedUDL = in.Load
		r.UltimateUDL = par.GammaDead * (in.Load + r.SelfWeight)
	}

	mu := r.UltimateUDL * in.Span * in.Span / 8
	vu := r.UltimateUDL * in.Span / 2

	r.Check = section.Check(section.CheckInput{
		Moment:         mu,
		Shear:          vu,
		Width:          in.Width,
		OverallDepth:   in.Depth,
		EffectiveDepth: in.Depth - par.CoverGround - bs8110.LinkAllowance - bs8110.BarAllowance,
		Fcu:            in.Fcu,
		Fy:             par.SteelYield,
	})

	return r, nil
}
