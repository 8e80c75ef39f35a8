package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/defaults"
)

var dockResetCmd = &cobra.Command{
	Use:         "reset",
	Short:       "Restores the Dock to factory settings",
	Annotations: map[string]string{"keywords": "factory,default"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := defaults.Delete(dockDomain); err != nil {
			return err
		}
		if err := restartDock(); err != nil {
			return err
		}
		color.Green("✔ Dock reset to factory settings")
		return nil
	},
}

func init() {
	dockCmd.AddCommand(dockResetCmd)
}
