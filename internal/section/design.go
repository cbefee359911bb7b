package section

import (
	"math"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/bs8110"
)

// CheckInput holds the design actions and geometry for a rectangular
// section flexure/shear check.
type CheckInput struct {
	// Actions
	Moment float64 // Mu - ultimate moment (kN-m)
	Shear  float64 // Vu - ultimate shear / end reaction (kN)

	// Geometry (mm)
	Width          float64 // b
	OverallDepth   float64 // h
	EffectiveDepth float64 // d

	// Materials (MPa)
	Fcu float64
	Fy  float64
}

// CheckResult holds the outcome of a section flexure/shear check
type CheckResult struct {
	// Actions carried through for reporting
	Moment float64 // kN-m
	Shear  float64 // kN

	// Flexure
	K           float64 // M / (b d² fcu)
	Safe        bool    // overall verdict, shear included
	Utilization float64 // % of singly-reinforced capacity, capped at 100
	LeverArm    float64 // z (mm), zero when over capacity
	AsRequired  float64 // mm², zero when over capacity
	AsMin       float64 // mm²

	// Reinforcement callouts
	MainBars string // tension steel, "None" when over capacity
	TopBars  string // hanger bars, always nominal
	Links    string

	// Shear
	ShearStress float64 // v (N/mm²)
	ShearSafe   bool
}

// TopBarCallout is the nominal hanger steel provided in every beam
// regardless of the design moment.
const TopBarCallout = "2T12 Top"

// Check verifies a rectangular section for an ultimate moment and shear.
//
// The flexural branch follows BS 8110 singly-reinforced design: a section
// with K above the balanced limit is reported UNSAFE and no tension steel
// is computed for it (compression reinforcement is a redesign, not an
// output). The shear check runs after the flexural branch and can only
// demote the verdict, never restore it.
func Check(in CheckInput) *CheckResult {
	d := in.EffectiveDepth
	k := in.Moment * 1e6 / (in.Width * d * d * in.Fcu)

	r := &CheckResult{
		Moment:      in.Moment,
		Shear:       in.Shear,
		K:           k,
		Safe:        k <= bs8110.KLimit,
		Utilization: math.Min(100, math.Round(100*k/bs8110.KLimit)),
		AsMin:       bs8110.MinSteelRatio * in.Width * in.OverallDepth,
		MainBars:    "None",
		TopBars:     TopBarCallout,
	}

	if r.Safe {
		r.LeverArm = bs8110.LeverArm(k, d)
		as := in.Moment * 1e6 / (bs8110.SteelStressFactor * in.Fy * r.LeverArm)
		r.AsRequired = math.Max(as, r.AsMin)
		r.MainBars = MainBarCallout(r.AsRequired)
	}

	// Shear is checked even for a flexurally inadequate section so the
	// report always carries a link callout.
	r.ShearStress = in.Shear * 1000 / (in.Width * d)
	r.ShearSafe = r.ShearStress <= bs8110.MaxShearStress(in.Fcu)
	r.Links = LinkCallout(r.ShearStress)
	if !r.ShearSafe {
		r.Safe = false
	}

	return r
}
