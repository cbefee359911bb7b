package member

import (
	"github.com/me-yeatz/Beamsafe-Mypro/internal/bs8110"
)

// CapacityMode selects the axial capacity formula for a short braced
// column. Both appear in practice; Simplified is the default.
type CapacityMode string

const (
	// Simplified uses N = 0.35·fcu·Ac + 0.67·fy·Asc with a 0.8% steel
	// ratio, the short-column expression with allowances built in.
	Simplified CapacityMode = "simplified"

	// DesignStrength works from material design strengths
	// (fcd = 0.67·fcu/1.5, fyd = fy/1.15) with a 1% steel ratio:
	// N = 0.4·fcd·Ac + 0.87·fyd·Asc.
	DesignStrength CapacityMode = "design-strength"
)

// ColumnInput describes a short braced column carrying the beam
// reaction. AxialLoad, when positive, is taken directly and the beam
// reaction plus self-weight chain is skipped.
type ColumnInput struct {
	Width  float64      `json:"width_mm,omitempty"` // mm, 0 = 200
	Depth  float64      `json:"depth_mm,omitempty"` // mm, 0 = 200
	Height float64      `json:"height_m"`           // clear height, m [required]
	Fcu    float64      `json:"fcu_mpa,omitempty"`  // MPa, 0 = parameter default
	Mode   CapacityMode `json:"mode,omitempty"`     // "" = simplified

	BeamReaction float64 `json:"beam_reaction_kn,omitempty"` // kN, chained variant
	AxialLoad    float64 `json:"axial_load_kn,omitempty"`    // kN, direct variant
}

// ColumnResult holds the axial check of a short braced column.
type ColumnResult struct {
	Width float64 `json:"width_mm"`
	Depth float64 `json:"depth_mm"`

	AxialLoad  float64      `json:"axial_load_kn"`
	SelfWeight float64      `json:"self_weight_kn"` // ultimate, zero in the direct variant
	Capacity   float64      `json:"capacity_kn"`
	Mode       CapacityMode `json:"mode"`
	Safe       bool         `json:"safe"`
}

// DesignColumn verifies a short braced column section against its axial
// load. In the chained variant the load is the beam reaction plus the
// column's own factored self-weight; in the direct variant AxialLoad is
// used as given. Safe requires the load to be strictly below capacity.
func DesignColumn(in ColumnInput, par bs8110.Parameters) (*ColumnResult, error) {
	direct := in.AxialLoad > 0
	if in.Height <= 0 && !direct {
		return nil, ErrIncompleteInput
	}
	if !direct && in.BeamReaction <= 0 {
		return nil, ErrIncompleteInput
	}
	if in.Width <= 0 {
		in.Width = 200
	}
	if in.Depth <= 0 {
		in.Depth = 200
	}
	if in.Fcu <= 0 {
		in.Fcu = par.DefaultFcu
	}
	if in.Mode == "" {
		in.Mode = Simplified
	}

	r := &ColumnResult{Width: in.Width, Depth: in.Depth, Mode: in.Mode}

	if direct {
		r.AxialLoad = in.AxialLoad
	} else {
		r.SelfWeight = (in.Width / 1000) * (in.Depth / 1000) * in.Height *
			par.ConcreteDensity * par.GammaDead
		r.AxialLoad = in.BeamReaction + r.SelfWeight
	}

	ac := in.Width * in.Depth // gross section area, mm²
	switch in.Mode {
	case DesignStrength:
		fcd := 0.67 * in.Fcu / 1.5
		fyd := par.SteelYield / 1.15
		asc := 0.01 * ac
		r.Capacity = (0.4*fcd*ac + 0.87*fyd*asc) / 1000
	default:
		asc := 0.008 * ac
		r.Capacity = (0.35*in.Fcu*ac + 0.67*par.SteelYield*asc) / 1000
	}

	r.Safe = r.AxialLoad < r.Capacity
	return r, nil
}
