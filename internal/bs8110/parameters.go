package bs8110

// Parameters collects the design constants that vary by region or office
// practice. The engine takes an explicit Parameters value on every call so
// that a regional variant (different covers, steel grade, load allowances)
// is a configuration change, not a code change.
type Parameters struct {
	// Partial safety factors for loads
	// BS 8110 Table 2.1, adverse gravity combination 1.4Gk + 1.6Qk
	GammaDead float64 `mapstructure:"gamma_dead"`
	GammaLive float64 `mapstructure:"gamma_live"`

	// Unit weight of reinforced concrete (kN/m³)
	ConcreteDensity float64 `mapstructure:"concrete_density"`

	// Characteristic steel yield strength (MPa)
	SteelYield float64 `mapstructure:"steel_yield"`

	// Nominal cover to reinforcement (mm)
	CoverInternal float64 `mapstructure:"cover_internal"` // internal members
	CoverGround   float64 `mapstructure:"cover_ground"`   // ground-contact members
	CoverFooting  float64 `mapstructure:"cover_footing"`  // footing bottom steel

	// Standing dead-load allowances for residential construction
	SlabDead float64 `mapstructure:"slab_dead"` // slab + finishes (kPa)
	WallDead float64 `mapstructure:"wall_dead"` // blockwork per m² of wall (kN/m²)

	// Fallback concrete grade when the input omits one (MPa)
	DefaultFcu float64 `mapstructure:"default_fcu"`
}

// Default returns the reference residential parameter set.
func Default() Parameters {
	return Parameters{
		GammaDead:       1.4,
		GammaLive:       1.6,
		ConcreteDensity: 24.0,
		SteelYield:      460.0,
		CoverInternal:   25.0,
		CoverGround:     50.0,
		CoverFooting:    75.0,
		SlabDead:        4.0,
		WallDead:        2.6,
		DefaultFcu:      25.0,
	}
}

// UltimateLoad combines characteristic dead and live load effects into an
// ultimate design value using the gravity load combination.
func (p Parameters) UltimateLoad(dead, live float64) float64 {
	return p.GammaDead*dead + p.GammaLive*live
}
