package cli

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/defaults"
	"mactl/internal/waiter"
)

var finderRestartCmd = &cobra.Command{
	Use:         "restart",
	Short:       "Restarts the Finder",
	Annotations: map[string]string{"keywords": "relaunch"},
	RunE: func(cmd *cobra.Command, args []string) error {
		color.Cyan("i Restarting Finder...")
		if err := defaults.KillAll("Finder"); err != nil {
			return err
		}
		// launchd relaunches Finder automatically; confirm it came back.
		return waiter.ForProcess("Finder", 5*time.Second)
	},
}

func init() {
	finderCmd.AddCommand(finderRestartCmd)
}
