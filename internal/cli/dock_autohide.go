package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/defaults"
)

// setDockAutohide writes the autohide preference if it differs from the
// current state, restarting the Dock only when something changed.
func setDockAutohide(on bool) error {
	current, err := defaults.ReadBool(dockDomain, "autohide")
	if err != nil {
		return err
	}
	label := map[bool]string{true: "on", false: "off"}
	if current == on {
		color.Green("✔ Dock auto-hide is already %s", label[on])
		return nil
	}
	if err := defaults.WriteBool(dockDomain, "autohide", on); err != nil {
		return err
	}
	if err := restartDock(); err != nil {
		return err
	}
	color.Green("✔ Dock auto-hide turned %s", label[on])
	return nil
}

var dockAutohideCmd = &cobra.Command{
	Use:         "autohide [on|off|toggle|status]",
	Short:       "Controls Dock auto-hiding",
	Annotations: map[string]string{"keywords": "hide"},
	Args:        cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := "status"
		if len(args) > 0 {
			mode = args[0]
		}
		switch mode {
		case "status":
			on, err := defaults.ReadBool(dockDomain, "autohide")
			if err != nil {
				return err
			}
			if on {
				color.Green("Dock auto-hide is on")
			} else {
				color.Yellow("Dock auto-hide is off")
			}
			return nil
		case "on":
			return setDockAutohide(true)
		case "off":
			return setDockAutohide(false)
		case "toggle":
			current, err := defaults.ReadBool(dockDomain, "autohide")
			if err != nil {
				return err
			}
			return setDockAutohide(!current)
		}
		return fmt.Errorf("argument must be one of: on, off, toggle, status")
	},
}

func init() {
	dockCmd.AddCommand(dockAutohideCmd)
}
