package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// DrawMomentDiagram plots the bending moment along a simply supported
// span under a uniform load: M(x) = w·x·(L-x)/2. Moments are plotted
// sagging-positive downward in the conventional sense, so the curve is
// shown negated.
func DrawMomentDiagram(udl, span float64) string {
	const samples = 60

	data := make([]float64, samples+1)
	for i := 0; i <= samples; i++ {
		x := span * float64(i) / samples
		data[i] = -udl * x * (span - x) / 2
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  BENDING MOMENT DIAGRAM (kN-m)\n")
	sb.WriteString("  ─────────────────────────────\n\n")
	sb.WriteString(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Offset(4),
		asciigraph.Precision(1),
	))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  Mmax = %.2f kN-m at midspan, span = %.2f m\n", udl*span*span/8, span))
	return sb.String()
}
