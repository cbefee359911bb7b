package section

import "github.com/me-yeatz/Beamsafe-Mypro/internal/bs8110"

// Nominal bar areas (mm²) for the callout tables below:
//   T12 = 113, T16 = 201, T20 = 314

// MainBarCallout selects a stock tension-bar arrangement for a required
// steel area. The bands are half-open [low, high): an As exactly on a
// boundary takes the next arrangement up.
func MainBarCallout(as float64) string {
	switch {
	case as < 226:
		return "2T12 Bottom"
	case as < 402:
		return "2T16 Bottom"
	case as < 603:
		return "3T16 Bottom"
	case as < 942:
		return "3T20 Bottom"
	default:
		return "4T20 Bottom"
	}
}

// LinkCallout selects nominal or designed shear links from the nominal
// shear stress v (N/mm²).
func LinkCallout(v float64) string {
	if v > bs8110.LinkThreshold {
		return "R8/R10 @ 175mm"
	}
	return "R6/R8 @ 200-250mm"
}

// MeshCallout selects a bottom-mesh bar spacing for a footing from the
// required steel area per metre strip (mm²/m). Bands are inclusive on
// the upper bound.
func MeshCallout(asPerMetre float64) string {
	switch {
	case asPerMetre <= 452:
		return "T12@250"
	case asPerMetre <= 565:
		return "T12@200"
	case asPerMetre <= 804:
		return "T16@250"
	case asPerMetre <= 1005:
		return "T16@200"
	default:
		return "T20@250"
	}
}
