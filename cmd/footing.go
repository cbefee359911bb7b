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
	footingLoad     float64
	footingSoil     float64
	footingColWidth float64
	footingColDepth float64
	footingFcu      float64

	footingShowSketch bool
	footingExportFile string
)

var footingCmd = &cobra.Command{
	Use:   "footing",
	Short: "Size and verify a square isolated footing",
	Long: `Size a square isolated footing from the column axial load and the
allowable soil bearing pressure, then verify the bearing and compute
the bottom mesh from the cantilever moment at the column face.

The side length rounds up to the next 0.1 m so the plan area never
undercuts the required area.

Examples:
  # 500 kN column on 150 kPa soil
  beamsafe footing --load 500 --soil 150

  # With the supported column section and a plan export
  beamsafe footing --load 320 --soil 100 --col-width 225 --col-depth 225 -o plan.png`,
	Run: runFooting,
}

func init() {
	rootCmd.AddCommand(footingCmd)

	footingCmd.Flags().Float64VarP(&footingLoad, "load", "n", 0, "Column axial load (kN) [required]")
	footingCmd.Flags().Float64VarP(&footingSoil, "soil", "q", 0, "Allowable soil bearing capacity (kPa) [required]")
	footingCmd.Flags().Float64Var(&footingColWidth, "col-width", 0, "Supported column width (mm), 0 = 200")
	footingCmd.Flags().Float64Var(&footingColDepth, "col-depth", 0, "Supported column depth (mm), 0 = 200")
	footingCmd.Flags().Float64Var(&footingFcu, "fcu", 0, "Concrete strength fcu (MPa), 0 = parameter default")

	footingCmd.MarkFlagRequired("load")
	footingCmd.MarkFlagRequired("soil")

	footingCmd.Flags().BoolVar(&footingShowSketch, "sketch", false, "Show ASCII plan sketch")
	footingCmd.Flags().StringVarP(&footingExportFile, "output", "o", "", "Export plan to file (png, svg, pdf)")
}

func runFooting(cmd *cobra.Command, args []string) {
	result, err := member.DesignFooting(member.FootingInput{
		AxialLoad:    footingLoad,
		SoilCapacity: footingSoil,
		ColumnWidth:  footingColWidth,
		ColumnDepth:  footingColDepth,
		Fcu:          footingFcu,
	}, params)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SQUARE ISOLATED FOOTING DESIGN - BS 8110")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SIZING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Axial Load (N):\t%.2f kN\n", footingLoad)
	fmt.Fprintf(w, "  Soil Capacity (q):\t%.2f kPa\n", footingSoil)
	fmt.Fprintf(w, "  Required Area:\t%.3f m²\n", result.RequiredArea)
	fmt.Fprintf(w, "  Side (rounded up):\t%.1f m\n", result.Side)
	fmt.Fprintf(w, "  Bearing Pressure:\t%.2f kPa\n", result.Pressure)
	fmt.Fprintf(w, "  Thickness:\t%.0f mm\n", result.Thickness)
	w.Flush()
	fmt.Println()

	fmt.Println("REINFORCEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Face Moment:\t%.2f kN-m/m\n", result.FaceMoment)
	fmt.Fprintf(w, "  Effective Depth:\t%.0f mm\n", result.EffectiveDepth)
	fmt.Fprintf(w, "  As Required:\t%.0f mm²/m (min %.0f)\n", result.AsRequired, result.AsMin)
	w.Flush()
	fmt.Println()

	title := "FOOTING SAFE"
	switch {
	case !result.FlexureSafe:
		title = "FOOTING UNSAFE - STRIP OVER CAPACITY"
	case !result.Safe:
		title = "FOOTING UNSAFE - BEARING EXCEEDED"
	}
	fmt.Println(diagram.DrawSummaryBox(title, []string{
		fmt.Sprintf("%.1f x %.1f m x %.0f mm thick", result.Side, result.Side, result.Thickness),
		fmt.Sprintf("Mesh: %s both ways", result.MeshCallout),
		fmt.Sprintf("Bearing: %.2f kPa of %.2f kPa allowed", result.Pressure, footingSoil),
	}))
	fmt.Println()

	sketch := diagram.FootingSketchData{
		Side:        result.Side,
		Thickness:   result.Thickness,
		ColumnWidth: footingColWidth,
		ColumnDepth: footingColDepth,
		Mesh:        result.MeshCallout,
		Pressure:    result.Pressure,
	}
	if sketch.ColumnWidth <= 0 {
		sketch.ColumnWidth = 200
	}
	if sketch.ColumnDepth <= 0 {
		sketch.ColumnDepth = 200
	}
	if footingShowSketch {
		fmt.Println(diagram.DrawFootingSketch(sketch))
	}
	if footingExportFile != "" {
		if err := diagram.ExportFootingPlan(sketch, footingExportFile); err != nil {
			fmt.Printf("Error exporting plan: %v\n", err)
		} else {
			fmt.Printf("Plan exported to: %s\n", footingExportFile)
		}
	}
}
