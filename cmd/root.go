package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/bs8110"
	"github.com/me-yeatz/Beamsafe-Mypro/internal/version"
)

// params is the design parameter set used by every command. It starts
// from the reference residential defaults and picks up overrides from a
// parameter file (--params) and BEAMSAFE_* environment variables.
var params = bs8110.Default()

var paramsFile string

var rootCmd = &cobra.Command{
	Use:   "beamsafe",
	Short: "Residential Concrete Member Sizing Tool",
	Long: `beamsafe - Residential Reinforced Concrete Member Designer

A CLI tool for the preliminary sizing and verification of the connected
members of a residential concrete frame, following BS 8110 conventions.

This tool helps designers perform:
  - Primary beam flexural and shear checks with bar selection
  - Short braced column axial verification
  - Square isolated footing sizing and mesh selection
  - Ground beam checks chained from the column load

The stages chain: the beam reaction loads the column, the column load
sizes the footing, and the column load spread over the column spacing
loads the ground beam.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadParams()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   beamsafe v%-46s║\n", version.Version)
		fmt.Println("  ║   Residential Reinforced Concrete Member Designer         ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Preliminary sizing and verification of connected residential")
		fmt.Println("  concrete members to BS 8110 conventions.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Primary beam design with bar and link selection")
		fmt.Println("    • Short braced column axial check")
		fmt.Println("    • Square isolated footing sizing and mesh selection")
		fmt.Println("    • Ground beam design from spread column loads")
		fmt.Println("    • Chained pipeline with PDF and XLSX export")
		fmt.Println()
		fmt.Println("  Use 'beamsafe --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&paramsFile, "params", "", "Design parameter file (yaml)")
}

// loadParams resolves the design parameters: defaults, then the
// parameter file when one is given, then BEAMSAFE_* environment
// variables (e.g. BEAMSAFE_STEEL_YIELD=500).
func loadParams() error {
	v := viper.New()
	v.SetEnvPrefix("BEAMSAFE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := bs8110.Default()
	defaults := map[string]float64{
		"gamma_dead":       def.GammaDead,
		"gamma_live":       def.GammaLive,
		"concrete_density": def.ConcreteDensity,
		"steel_yield":      def.SteelYield,
		"cover_internal":   def.CoverInternal,
		"cover_ground":     def.CoverGround,
		"cover_footing":    def.CoverFooting,
		"slab_dead":        def.SlabDead,
		"wall_dead":        def.WallDead,
		"default_fcu":      def.DefaultFcu,
	}
	for key, val := range defaults {
		v.SetDefault(key, val)
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}

	if paramsFile != "" {
		v.SetConfigFile(paramsFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read params file: %w", err)
		}
	}

	if err := v.Unmarshal(&params); err != nil {
		return fmt.Errorf("parse params: %w", err)
	}
	return nil
}
