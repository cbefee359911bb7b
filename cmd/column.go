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
	columnWidth    float64
	columnDepth    float64
	columnHeight   float64
	columnReaction float64
	columnAxial    float64
	columnFcu      float64
	columnMode     string
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Verify a short braced column",
	Long: `Verify a short braced column section against its axial load.

The load comes one of two ways: --reaction chains a beam end reaction
plus the column's own factored self-weight, or --axial gives the
ultimate axial load directly.

Two capacity formulas are available through --mode:
  simplified       N = 0.35·fcu·Ac + 0.67·fy·Asc  (0.8% steel)
  design-strength  N = 0.4·fcd·Ac + 0.87·fyd·Asc  (1% steel)

Examples:
  # 200x200 column, 3m high, carrying a 73 kN beam reaction
  beamsafe column --height 3 --reaction 73

  # Direct ultimate load with the design-strength formula
  beamsafe column -b 225 --depth 225 --axial 410 --mode design-strength`,
	Run: runColumn,
}

func init() {
	rootCmd.AddCommand(columnCmd)

	columnCmd.Flags().Float64VarP(&columnWidth, "width", "b", 0, "Column width (mm), 0 = 200")
	columnCmd.Flags().Float64Var(&columnDepth, "depth", 0, "Column depth (mm), 0 = 200")
	columnCmd.Flags().Float64Var(&columnHeight, "height", 0, "Column clear height (m)")
	columnCmd.Flags().Float64VarP(&columnReaction, "reaction", "r", 0, "Beam end reaction (kN)")
	columnCmd.Flags().Float64VarP(&columnAxial, "axial", "n", 0, "Direct ultimate axial load (kN)")
	columnCmd.Flags().Float64Var(&columnFcu, "fcu", 0, "Concrete strength fcu (MPa), 0 = parameter default")
	columnCmd.Flags().StringVarP(&columnMode, "mode", "m", "simplified", "Capacity formula (simplified, design-strength)")
}

func runColumn(cmd *cobra.Command, args []string) {
	result, err := member.DesignColumn(member.ColumnInput{
		Width:        columnWidth,
		Depth:        columnDepth,
		Height:       columnHeight,
		Fcu:          columnFcu,
		Mode:         member.CapacityMode(columnMode),
		BeamReaction: columnReaction,
		AxialLoad:    columnAxial,
	}, params)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHORT BRACED COLUMN CHECK - BS 8110")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section:\t%.0f x %.0f mm\n", result.Width, result.Depth)
	if result.SelfWeight > 0 {
		fmt.Fprintf(w, "  Clear Height:\t%.2f m\n", columnHeight)
		fmt.Fprintf(w, "  Beam Reaction:\t%.2f kN\n", columnReaction)
		fmt.Fprintf(w, "  Self Weight (ult.):\t%.2f kN\n", result.SelfWeight)
	}
	fmt.Fprintf(w, "  Capacity Mode:\t%s\n", result.Mode)
	w.Flush()
	fmt.Println()

	title := "COLUMN SAFE"
	if !result.Safe {
		title = "COLUMN UNSAFE"
	}
	fmt.Println(diagram.DrawSummaryBox(title, []string{
		fmt.Sprintf("Axial load N = %.2f kN", result.AxialLoad),
		fmt.Sprintf("Capacity   N = %.2f kN", result.Capacity),
	}))
	fmt.Println()
}
