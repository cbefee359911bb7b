package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me-yeatz/Beamsafe-Mypro/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of beamsafe",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beamsafe v%s\n", version.Version)
		fmt.Println("Residential Concrete Member Sizing Tool")
		fmt.Println("Following BS 8110 design conventions")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
