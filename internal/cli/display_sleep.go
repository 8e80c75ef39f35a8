package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/runner"
)

var displaySleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Puts the display to sleep",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runner.Run("pmset", "displaysleepnow"); err != nil {
			return err
		}
		color.Green("✔ Display sleeping")
		return nil
	},
}

func init() {
	displayCmd.AddCommand(displaySleepCmd)
}
