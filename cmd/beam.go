package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/diagram"
	"github.com/me-yeatz/Beamsafe-Mypro/internal/member"
	"github.com/me-yeatz/Beamsafe-Mypro/internal/section"
)

var (
	// Beam inputs
	beamSpan      float64
	beamWidth     float64
	beamDepth     float64
	beamTributary float64
	beamWall      float64
	beamLive      float64
	beamFcu       float64

	// Diagram options
	beamShowSketch bool
	beamShowBMD    bool
	beamExportFile string
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Size and verify the primary beam",
	Long: `Size and verify the primary flexural beam for a simply supported
span carrying slab, wall and live loading.

When --width or --depth is omitted the section is derived from the
span: depth from the span/14 rule rounded up to 25mm (minimum 300mm),
width from depth/2.5 (minimum 150mm).

Examples:
  # Auto-sized beam on a 4m span carrying 3m of slab and a 3m wall
  beamsafe beam --span 4 --tributary 3 --wall 3 --live 1.5 --fcu 25

  # Fixed 200x450 section with an ASCII sketch and moment diagram
  beamsafe beam --span 4.5 -b 200 --depth 450 --tributary 2.4 --sketch --bmd`,
	Run: runBeam,
}

func init() {
	rootCmd.AddCommand(beamCmd)

	// Geometry flags
	beamCmd.Flags().Float64VarP(&beamSpan, "span", "s", 0, "Beam span (m) [required]")
	beamCmd.Flags().Float64VarP(&beamWidth, "width", "b", 0, "Beam width (mm), 0 = derive from span")
	beamCmd.Flags().Float64Var(&beamDepth, "depth", 0, "Beam total depth (mm), 0 = derive from span")

	// Loading flags
	beamCmd.Flags().Float64VarP(&beamTributary, "tributary", "t", 0, "Tributary slab width (m)")
	beamCmd.Flags().Float64VarP(&beamWall, "wall", "w", 0, "Supported wall height (m)")
	beamCmd.Flags().Float64VarP(&beamLive, "live", "l", 0, "Live load intensity (kPa)")

	// Material flag
	beamCmd.Flags().Float64Var(&beamFcu, "fcu", 0, "Concrete strength fcu (MPa), 0 = parameter default")

	beamCmd.MarkFlagRequired("span")

	// Diagram options
	beamCmd.Flags().BoolVar(&beamShowSketch, "sketch", false, "Show ASCII section sketch")
	beamCmd.Flags().BoolVar(&beamShowBMD, "bmd", false, "Show ASCII bending moment diagram")
	beamCmd.Flags().StringVarP(&beamExportFile, "output", "o", "", "Export section sketch to file (png, svg, pdf)")
}

func runBeam(cmd *cobra.Command, args []string) {
	result, err := member.DesignBeam(member.BeamInput{
		Span:           beamSpan,
		Width:          beamWidth,
		Depth:          beamDepth,
		TributaryWidth: beamTributary,
		WallHeight:     beamWall,
		LiveLoad:       beamLive,
		Fcu:            beamFcu,
	}, params)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PRIMARY BEAM DESIGN - BS 8110")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("GEOMETRY & LOADING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", beamSpan)
	fmt.Fprintf(w, "  Beam Width (b):\t%.0f mm\n", result.Width)
	fmt.Fprintf(w, "  Beam Depth (h):\t%.0f mm\n", result.Depth)
	fmt.Fprintf(w, "  Self Weight:\t%.2f kN/m\n", result.SelfWeight)
	fmt.Fprintf(w, "  Dead Load:\t%.2f kN/m\n", result.DeadLoad)
	fmt.Fprintf(w, "  Live Load:\t%.2f kN/m\n", result.LiveLoad)
	fmt.Fprintf(w, "  Ultimate UDL:\t%.2f kN/m\n", result.UltimateUDL)
	w.Flush()
	fmt.Println()

	printSectionCheck(result.Check)
	fmt.Printf("  End Reaction (V): %.2f kN (feeds the column stage)\n", result.Reaction)
	fmt.Println()

	if beamShowBMD {
		fmt.Println(diagram.DrawMomentDiagram(result.UltimateUDL, beamSpan))
	}

	sketch := diagram.SectionSketchData{
		Width:      result.Width,
		Depth:      result.Depth,
		MainBars:   result.Check.MainBars,
		TopBars:    result.Check.TopBars,
		Links:      result.Check.Links,
		AsRequired: result.Check.AsRequired,
	}
	if beamShowSketch {
		fmt.Println(diagram.DrawSectionSketch(sketch))
	}
	if beamExportFile != "" {
		if err := diagram.ExportSectionSketch(sketch, beamExportFile); err != nil {
			fmt.Printf("Error exporting sketch: %v\n", err)
		} else {
			fmt.Printf("Sketch exported to: %s\n", beamExportFile)
		}
	}
}

// printSectionCheck prints the shared flexure/shear block used by the
// beam and ground beam commands.
func printSectionCheck(c *section.CheckResult) {
	fmt.Println("SECTION CHECK:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ultimate Moment (Mu):\t%.2f kN-m\n", c.Moment)
	fmt.Fprintf(w, "  Ultimate Shear (Vu):\t%.2f kN\n", c.Shear)
	fmt.Fprintf(w, "  K factor:\t%.4f\n", c.K)
	fmt.Fprintf(w, "  Utilization:\t%.0f%%\n", c.Utilization)
	fmt.Fprintf(w, "  Shear Stress (v):\t%.3f N/mm²\n", c.ShearStress)
	w.Flush()
	fmt.Println()

	if c.Safe {
		fmt.Println(diagram.DrawSummaryBox("SECTION SAFE", []string{
			fmt.Sprintf("As required = %.0f mm² (min %.0f mm²)", c.AsRequired, c.AsMin),
			fmt.Sprintf("Main bars:   %s", c.MainBars),
			fmt.Sprintf("Top bars:    %s", c.TopBars),
			fmt.Sprintf("Links:       %s", c.Links),
		}))
	} else if c.ShearSafe {
		fmt.Println(diagram.DrawSummaryBox("SECTION UNSAFE", []string{
			"K exceeds the singly-reinforced limit 0.156.",
			"Requires compression reinforcement / redesign.",
			"Increase the section size or concrete grade.",
		}))
	} else {
		fmt.Println(diagram.DrawSummaryBox("SECTION UNSAFE IN SHEAR", []string{
			fmt.Sprintf("v = %.3f N/mm² exceeds 0.8·√fcu.", c.ShearStress),
			"Increase the section size or concrete grade.",
		}))
	}
}
