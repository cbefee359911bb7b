package bs8110

import "math"

// BS 8110-1:1997 Design Constants

const (
	// Balanced-section limit for singly reinforced sections
	// Section 3.4.4.4
	KLimit = 0.156

	// Partial safety factor for steel in flexure (1/1.05 rounded)
	// As required steel: As = M / (0.95 fy z)
	SteelStressFactor = 0.95

	// Minimum tension reinforcement ratio for rectangular beams
	// Table 3.25 (fy = 460)
	MinSteelRatio = 0.0013

	// Shear stress (N/mm²) above which designed links are required
	// Table 3.8, conservative lower bound
	LinkThreshold = 0.4

	// Maximum concrete shear stress factor: v_max = 0.8·√fcu
	// Section 3.4.5.2
	MaxShearFactor = 0.8

	// Allowance from face of concrete to centroid of tension steel,
	// added to cover: an 8mm link leg plus half a 20mm main bar
	LinkAllowance = 8.0
	BarAllowance  = 10.0
)

// LeverArm calculates the lever arm z for a singly reinforced section
// BS 8110 Section 3.4.4.4: z = d(0.5 + √(0.25 - K/0.9)), capped at 0.95d
func LeverArm(k, d float64) float64 {
	z := d * (0.5 + math.Sqrt(0.25-k/0.9))
	return math.Min(z, 0.95*d)
}

// MaxShearStress calculates the absolute shear stress ceiling for a
// concrete grade. BS 8110 Section 3.4.5.2
func MaxShearStress(fcu float64) float64 {
	return MaxShearFactor * math.Sqrt(fcu)
}
