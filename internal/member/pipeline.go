package member

import "github.com/me-yeatz/Beamsafe-Mypro/internal/bs8110"

// DesignInput is the raw record for a full chained run: the beam
// reaction feeds the column, the column load feeds the footing, and the
// column load spread over the column spacing feeds the ground beam.
type DesignInput struct {
	Beam BeamInput `json:"beam"`

	ColumnHeight float64      `json:"column_height_m"`
	ColumnWidth  float64      `json:"column_width_mm,omitempty"` // 0 = 200
	ColumnDepth  float64      `json:"column_depth_mm,omitempty"` // 0 = 200
	ColumnMode   CapacityMode `json:"column_mode,omitempty"`

	SoilCapacity float64 `json:"soil_capacity_kpa"`

	ColumnSpacing  float64 `json:"column_spacing_m,omitempty"`
	GroundBeamSpan float64 `json:"ground_beam_span_m,omitempty"`
	GroundWidth    float64 `json:"ground_width_mm,omitempty"`
	GroundDepth    float64 `json:"ground_depth_mm,omitempty"`
}

// DesignResult is the combined output of a chained run. A stage whose
// inputs were absent is left nil - downstream stages that depend on it
// stay nil too.
type DesignResult struct {
	Beam       *BeamResult       `json:"beam,omitempty"`
	Column     *ColumnResult     `json:"column,omitempty"`
	Footing    *FootingResult    `json:"footing,omitempty"`
	GroundBeam *GroundBeamResult `json:"ground_beam,omitempty"`
}

// Design runs the full Beam -> Column -> Footing chain plus the ground
// beam. The beam stage is required; every later stage runs only when
// its own inputs are present, so a partial input yields a partial
// result rather than an error.
func Design(in DesignInput, par bs8110.Parameters) (*DesignResult, error) {
	beam, err := DesignBeam(in.Beam, par)
	if err != nil {
		return nil, err
	}
	out := &DesignResult{Beam: beam}

	col, err := DesignColumn(ColumnInput{
		Width:        in.ColumnWidth,
		Depth:        in.ColumnDepth,
		Height:       in.ColumnHeight,
		Fcu:          in.Beam.Fcu,
		Mode:         in.ColumnMode,
		BeamReaction: beam.Reaction,
	}, par)
	if err != nil {
		return out, nil // column idle: stop the chain, keep the beam
	}
	out.Column = col

	if f, err := DesignFooting(FootingInput{
		AxialLoad:    col.AxialLoad,
		SoilCapacity: in.SoilCapacity,
		ColumnWidth:  col.Width,
		ColumnDepth:  col.Depth,
		Fcu:          in.Beam.Fcu,
	}, par); err == nil {
		out.Footing = f
	}

	if g, err := DesignGroundBeam(GroundBeamInput{
		Span:          in.GroundBeamSpan,
		Width:         in.GroundWidth,
		Depth:         in.GroundDepth,
		ColumnLoad:    col.AxialLoad,
		ColumnSpacing: in.ColumnSpacing,
		ColumnWidth:   col.Width,
		ColumnDepth:   col.Depth,
		Fcu:           in.Beam.Fcu,
	}, par); err == nil {
		out.GroundBeam = g
	}

	return out, nil
}
