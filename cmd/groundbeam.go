package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/diagram"
	"github.com/me-yeatz/Beamsafe-Mypro/internal/member"
)

var (
	gbSpan       float64
	gbWidth      float64
	gbDepth      float64
	gbLoad       float64
	gbColumnLoad float64
	gbSpacing    float64
	gbColWidth   float64
	gbColDepth   float64
	gbFcu        float64

	gbShowSketch bool
	gbShowBMD    bool
)

var groundBeamCmd = &cobra.Command{
	Use:   "groundbeam",
	Short: "Size and verify a ground beam",
	Long: `Size and verify a ground beam spanning between footings, with the
same flexure and shear rules as the primary beam but ground-contact
cover.

The distributed load comes one of two ways: --load gives a service
intensity directly, or --column-load with --spacing spreads an
ultimate column load over the column spacing.

A derived depth follows the span/12 rule clamped to 300-600mm; a
derived width is 80% of the larger column dimension (minimum 200mm).

Examples:
  # Standalone: 3.5m span under 12 kN/m service load
  beamsafe groundbeam --span 3.5 --load 12

  # Chained: 77 kN column load at 3m spacing
  beamsafe groundbeam --span 3 --column-load 77 --spacing 3`,
	Run: runGroundBeam,
}

func init() {
	rootCmd.AddCommand(groundBeamCmd)

	groundBeamCmd.Flags().Float64VarP(&gbSpan, "span", "s", 0, "Ground beam span (m) [required]")
	groundBeamCmd.Flags().Float64VarP(&gbWidth, "width", "b", 0, "Beam width (mm), 0 = derive")
	groundBeamCmd.Flags().Float64Var(&gbDepth, "depth", 0, "Beam total depth (mm), 0 = derive")
	groundBeamCmd.Flags().Float64VarP(&gbLoad, "load", "l", 0, "Service load intensity (kN/m)")
	groundBeamCmd.Flags().Float64VarP(&gbColumnLoad, "column-load", "n", 0, "Ultimate column load to spread (kN)")
	groundBeamCmd.Flags().Float64Var(&gbSpacing, "spacing", 0, "Column spacing (m)")
	groundBeamCmd.Flags().Float64Var(&gbColWidth, "col-width", 0, "Supported column width (mm), 0 = 200")
	groundBeamCmd.Flags().Float64Var(&gbColDepth, "col-depth", 0, "Supported column depth (mm), 0 = 200")
	groundBeamCmd.Flags().Float64Var(&gbFcu, "fcu", 0, "Concrete strength fcu (MPa), 0 = parameter default")

	groundBeamCmd.MarkFlagRequired("span")

	groundBeamCmd.Flags().BoolVar(&gbShowSketch, "sketch", false, "Show ASCII section sketch")
	groundBeamCmd.Flags().BoolVar(&gbShowBMD, "bmd", false, "Show ASCII bending moment diagram")
}

func runGroundBeam(cmd *cobra.Command, args []string) {
	result, err := member.DesignGroundBeam(member.GroundBeamInput{
		Span:          gbSpan,
		Width:         gbWidth,
		Depth:         gbDepth,
		Load:          gbLoad,
		ColumnLoad:    gbColumnLoad,
		ColumnSpacing: gbSpacing,
		ColumnWidth:   gbColWidth,
		ColumnDepth:   gbColDepth,
		Fcu:           gbFcu,
	}, params)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     GROUND BEAM DESIGN - BS 8110")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("GEOMETRY & LOADING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", gbSpan)
	fmt.Fprintf(w, "  Beam Width (b):\t%.0f mm\n", result.Width)
	fmt.Fprintf(w, "  Beam Depth (h):\t%.0f mm\n", result.Depth)
	fmt.Fprintf(w, "  Self Weight:\t%.2f kN/m\n", result.SelfWeight)
	fmt.Fprintf(w, "  Applied UDL:\t%.2f kN/m\n", result.AppliedUDL)
	fmt.Fprintf(w, "  Ultimate UDL:\t%.2f kN/m\n", result.UltimateUDL)
	w.Flush()
	fmt.Println()

	printSectionCheck(result.Check)

	if gbShowBMD {
		fmt.Println(diagram.DrawMomentDiagram(result.UltimateUDL, gbSpan))
	}
	if gbShowSketch {
		fmt.Println(diagram.DrawSectionSketch(diagram.SectionSketchData{
			Width:      result.Width,
			Depth:      result.Depth,
			MainBars:   result.Check.MainBars,
			TopBars:    result.Check.TopBars,
			Links:      result.Check.Links,
			AsRequired: result.Check.AsRequired,
		}))
	}
}
