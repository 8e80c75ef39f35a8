package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/defaults"
)

var dockPositionCmd = &cobra.Command{
	Use:         "position <left|bottom|right>",
	Short:       "Moves the Dock to a screen edge",
	Annotations: map[string]string{"keywords": "orientation,move"},
	Args:        cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		position := args[0]
		switch position {
		case "left", "bottom", "right":
		default:
			return fmt.Errorf("position must be one of: left, bottom, right")
		}
		if err := defaults.WriteString(dockDomain, "orientation", position); err != nil {
			return err
		}
		if err := restartDock(); err != nil {
			return err
		}
		color.Green("✔ Dock moved to the %s", position)
		return nil
	},
}

func init() {
	dockCmd.AddCommand(dockPositionCmd)
}
