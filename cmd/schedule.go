package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/member"
	"github.com/me-yeatz/Beamsafe-Mypro/internal/report"
)

var scheduleOutput string

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the chained design and write an XLSX reinforcement schedule",
	Long: `Run the chained member design and write one schedule row per member
(section size, main bars, links or mesh, verdict) to an XLSX workbook.

Example:
  beamsafe schedule --span 4 --tributary 3 --col-height 3 --soil 150 \
    -o schedule.xlsx`,
	Run: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	addDesignFlags(scheduleCmd)
	scheduleCmd.Flags().StringVarP(&scheduleOutput, "output", "o", "schedule.xlsx", "Output XLSX file")
}

func runSchedule(cmd *cobra.Command, args []string) {
	result, err := member.Design(designInputFromFlags(), params)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	writeFile(scheduleOutput, func(f *os.File) error {
		return report.WriteSchedule(f, result)
	})
}
