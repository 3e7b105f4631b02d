package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"galleria/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .galleria.yml configuration interactively",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(".galleria.yml"); err == nil {
			fmt.Println(".galleria.yml already exists; delete it first to reconfigure.")
			return
		}
		_, err := config.RunWizard()
		exitOnError(err)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
