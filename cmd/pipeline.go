package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/member"
	"github.com/me-yeatz/Beamsafe-Mypro/internal/report"
)

var (
	// Beam stage
	plSpan      float64
	plWidth     float64
	plDepth     float64
	plTributary float64
	plWall      float64
	plLive      float64
	plFcu       float64

	// Column stage
	plColHeight float64
	plColWidth  float64
	plColDepth  float64
	plColMode   string

	// Footing stage
	plSoil float64

	// Ground beam stage
	plSpacing float64
	plGBSpan  float64

	// Output options
	plJSON     bool
	plPDFFile  string
	plXLSXFile string
	plProject  string
	plAuthor   string
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the full chained member design",
	Long: `Run the full chained design: the primary beam reaction loads the
column, the column load sizes the footing, and the column load spread
over the column spacing loads the ground beam.

Stages whose inputs are absent are left out of the result; the beam
stage is always required.

Examples:
  # Full chain on a 4m span
  beamsafe pipeline --span 4 --tributary 3 --wall 3 --live 1.5 \
    --col-height 3 --soil 150 --spacing 3 --gb-span 3

  # Machine-readable output plus a PDF calculation sheet
  beamsafe pipeline --span 4 --tributary 2.4 --col-height 2.8 --soil 100 \
    --json --pdf design.pdf`,
	Run: runPipeline,
}

func init() {
	rootCmd.AddCommand(pipelineCmd)

	addDesignFlags(pipelineCmd)

	pipelineCmd.Flags().BoolVar(&plJSON, "json", false, "Print the result record as JSON")
	pipelineCmd.Flags().StringVar(&plPDFFile, "pdf", "", "Write a PDF calculation sheet")
	pipelineCmd.Flags().StringVar(&plXLSXFile, "xlsx", "", "Write an XLSX reinforcement schedule")
	pipelineCmd.Flags().StringVar(&plProject, "project", "", "Project name for the calculation sheet")
	pipelineCmd.Flags().StringVar(&plAuthor, "author", "", "Author name for the calculation sheet")
}

// addDesignFlags registers the chained-design stage flags. The pipeline,
// report and schedule commands all take the same design inputs.
func addDesignFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&plSpan, "span", "s", 0, "Beam span (m) [required]")
	cmd.Flags().Float64VarP(&plWidth, "width", "b", 0, "Beam width (mm), 0 = derive")
	cmd.Flags().Float64Var(&plDepth, "depth", 0, "Beam total depth (mm), 0 = derive")
	cmd.Flags().Float64VarP(&plTributary, "tributary", "t", 0, "Tributary slab width (m)")
	cmd.Flags().Float64VarP(&plWall, "wall", "w", 0, "Supported wall height (m)")
	cmd.Flags().Float64VarP(&plLive, "live", "l", 0, "Live load intensity (kPa)")
	cmd.Flags().Float64Var(&plFcu, "fcu", 0, "Concrete strength fcu (MPa), 0 = parameter default")

	cmd.Flags().Float64Var(&plColHeight, "col-height", 0, "Column clear height (m)")
	cmd.Flags().Float64Var(&plColWidth, "col-width", 0, "Column width (mm), 0 = 200")
	cmd.Flags().Float64Var(&plColDepth, "col-depth", 0, "Column depth (mm), 0 = 200")
	cmd.Flags().StringVar(&plColMode, "col-mode", "simplified", "Column capacity formula (simplified, design-strength)")

	cmd.Flags().Float64VarP(&plSoil, "soil", "q", 0, "Soil bearing capacity (kPa)")

	cmd.Flags().Float64Var(&plSpacing, "spacing", 0, "Column spacing for the ground beam (m)")
	cmd.Flags().Float64Var(&plGBSpan, "gb-span", 0, "Ground beam span (m)")

	cmd.MarkFlagRequired("span")
}

func designInputFromFlags() member.DesignInput {
	return member.DesignInput{
		Beam: member.BeamInput{
			Span:           plSpan,
			Width:          plWidth,
			Depth:          plDepth,
			TributaryWidth: plTributary,
			WallHeight:     plWall,
			LiveLoad:       plLive,
			Fcu:            plFcu,
		},
		ColumnHeight:   plColHeight,
		ColumnWidth:    plColWidth,
		ColumnDepth:    plColDepth,
		ColumnMode:     member.CapacityMode(plColMode),
		SoilCapacity:   plSoil,
		ColumnSpacing:  plSpacing,
		GroundBeamSpan: plGBSpan,
	}
}

func runPipeline(cmd *cobra.Command, args []string) {
	result, err := member.Design(designInputFromFlags(), params)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if plJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	} else {
		printPipelineSummary(result)
	}

	if plPDFFile != "" {
		writeFile(plPDFFile, func(f *os.File) error {
			return report.WritePDF(f, report.Meta{Project: plProject, Author: plAuthor}, result)
		})
	}
	if plXLSXFile != "" {
		writeFile(plXLSXFile, func(f *os.File) error {
			return report.WriteSchedule(f, result)
		})
	}
}

func printPipelineSummary(res *member.DesignResult) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CHAINED MEMBER DESIGN - BS 8110")
	fmt.Println("═══════════════════════════════════════════════════════════════")

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Member", "Section", "Action", "Reinforcement", "Status"})

	if b := res.Beam; b != nil {
		tw.AppendRow(table.Row{
			"Primary beam",
			fmt.Sprintf("%.0f x %.0f mm", b.Width, b.Depth),
			fmt.Sprintf("Mu %.1f kN-m", b.Check.Moment),
			b.Check.MainBars,
			status(b.Check.Safe),
		})
	}
	if c := res.Column; c != nil {
		tw.AppendRow(table.Row{
			"Column",
			fmt.Sprintf("%.0f x %.0f mm", c.Width, c.Depth),
			fmt.Sprintf("N %.1f kN", c.AxialLoad),
			"-",
			status(c.Safe),
		})
	}
	if f := res.Footing; f != nil {
		tw.AppendRow(table.Row{
			"Footing",
			fmt.Sprintf("%.1f x %.1f m", f.Side, f.Side),
			fmt.Sprintf("q %.1f kPa", f.Pressure),
			f.MeshCallout,
			status(f.Safe),
		})
	}
	if g := res.GroundBeam; g != nil {
		tw.AppendRow(table.Row{
			"Ground beam",
			fmt.Sprintf("%.0f x %.0f mm", g.Width, g.Depth),
			fmt.Sprintf("Mu %.1f kN-m", g.Check.Moment),
			g.Check.MainBars,
			status(g.Check.Safe),
		})
	}

	tw.Render()
	fmt.Println()
}

func status(safe bool) string {
	if safe {
		return "SAFE"
	}
	return "UNSAFE"
}

func writeFile(name string, write func(*os.File) error) {
	f, err := os.Create(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return
	}
	defer f.Close()
	if err := write(f); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return
	}
	fmt.Printf("Written: %s\n", name)
}
