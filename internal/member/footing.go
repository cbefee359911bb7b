package member

import (
	"math"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/bs8110"
	"github.com/me-yeatz/Beamsafe-Mypro/internal/section"
)

// FootingInput describes a square isolated footing under a column.
type FootingInput struct {
	AxialLoad    float64 `json:"axial_load_kn"`     // kN [required]
	SoilCapacity float64 `json:"soil_capacity_kpa"` // kPa [required]

	// Supported column section (mm), 0 = 200
	ColumnWidth float64 `json:"column_width_mm,omitempty"`
	ColumnDepth float64 `json:"column_depth_mm,omitempty"`

	Fcu float64 `json:"fcu_mpa,omitempty"` // MPa, 0 = parameter default
}

// FootingResult holds the sizing and verification of a square footing.
type FootingResult struct {
	RequiredArea float64 `json:"required_area_m2"`
	Side         float64 `json:"side_m"` // rounded up to 0.1 m
	Pressure     float64 `json:"pressure_kpa"`
	Safe         bool    `json:"safe"` // overall verdict, bearing and flexure

	Thickness      float64 `json:"thickness_mm"`
	FaceMoment     float64 `json:"face_moment_knm"` // per metre strip
	FlexureSafe    bool    `json:"flexure_safe"`
	AsRequired     float64 `json:"as_required_mm2_per_m"`
	AsMin          float64 `json:"as_min_mm2_per_m"`
	MeshCallout    string  `json:"mesh"`
	EffectiveDepth float64 `json:"effective_depth_mm"`
}

// DesignFooting sizes a square footing from the column axial load and
// the allowable soil bearing pressure, then checks the bearing and
// computes bottom reinforcement from the cantilever moment at the
// column face.
//
// The side length is rounded up to the next 0.1 m so the plan area
// never undercuts the required area. A strip over the singly-reinforced
// limit demotes the verdict and holds the steel at the minimum floor;
// a thicker pad is a redesign, not more mesh.
func DesignFooting(in FootingInput, par bs8110.Parameters) (*FootingResult, error) {
	if in.AxialLoad <= 0 || in.SoilCapacity <= 0 {
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

	r := &FootingResult{}

	r.RequiredArea = in.AxialLoad / in.SoilCapacity
	r.Side = math.Ceil(math.Sqrt(r.RequiredArea)*10) / 10
	r.Pressure = in.AxialLoad / (r.Side * r.Side)
	r.Safe = r.Pressure <= in.SoilCapacity

	maxDim := math.Max(in.ColumnWidth, in.ColumnDepth)
	r.Thickness = math.Max(300, math.Ceil(maxDim/2))
	r.EffectiveDepth = r.Thickness - par.CoverFooting

	// Cantilever bending at the column face under ultimate pressure,
	// per metre strip of footing.
	ultimatePressure := par.GammaDead * in.AxialLoad / (r.Side * r.Side) // kPa
	cantilever := (r.Side*1000 - maxDim) / 2                            // mm
	r.FaceMoment = ultimatePressure * cantilever * cantilever / (2 * 1e6)

	d := r.EffectiveDepth
	k := r.FaceMoment * 1e6 / (1000 * d * d * in.Fcu)
	r.AsMin = bs8110.MinSteelRatio * 1000 * r.Thickness

	r.FlexureSafe = k <= bs8110.KLimit
	if r.FlexureSafe {
		z := bs8110.LeverArm(k, d)
		as := r.FaceMoment * 1e6 / (bs8110.SteelStressFactor * par.SteelYield * z)
		r.AsRequired = math.Max(as, r.AsMin)
	} else {
		r.AsRequired = r.AsMin
		r.Safe = false
	}
	r.MeshCallout = section.MeshCallout(r.AsRequired)

	return r, nil
}
