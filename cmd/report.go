package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/member"
	"github.com/me-yeatz/Beamsafe-Mypro/internal/report"
)

var (
	reportOutput  string
	reportProject string
	reportAuthor  string
	reportNotes   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the chained design and write a PDF calculation sheet",
	Long: `Run the chained member design and write the results as a PDF
calculation sheet with per-member inputs, checks and reinforcement.

Example:
  beamsafe report --span 4 --tributary 3 --wall 3 --live 1.5 \
    --col-height 3 --soil 150 -o design.pdf`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	addDesignFlags(reportCmd)
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "design.pdf", "Output PDF file")
	reportCmd.Flags().StringVar(&reportProject, "project", "", "Project name")
	reportCmd.Flags().StringVar(&reportAuthor, "author", "", "Author name")
	reportCmd.Flags().StringVar(&reportNotes, "notes", "", "Notes printed on the sheet")
}

func runReport(cmd *cobra.Command, args []string) {
	result, err := member.Design(designInputFromFlags(), params)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	meta := report.Meta{
		Project: reportProject,
		Author:  reportAuthor,
		Notes:   reportNotes,
	}
	writeFile(reportOutput, func(f *os.File) error {
		return report.WritePDF(f, meta, result)
	})
}
