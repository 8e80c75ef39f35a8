package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/defaults"
)

var dockSizeCmd = &cobra.Command{
	Use:         "size <16-128>",
	Short:       "Sets the Dock icon size in pixels",
	Annotations: map[string]string{"keywords": "tilesize,icons"},
	Args:        cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := strconv.Atoi(args[0])
		if err != nil || size < 16 || size > 128 {
			return fmt.Errorf("size must be between 16 and 128")
		}
		if err := defaults.WriteInt(dockDomain, "tilesize", size); err != nil {
			return err
		}
		if err := restartDock(); err != nil {
			return err
		}
		color.Green("✔ Dock icon size set to %dpx", size)
		return nil
	},
}

var dockMagnificationCmd = &cobra.Command{
	Use:         "magnification <on|off>",
	Short:       "Enables or disables Dock magnification",
	Annotations: map[string]string{"keywords": "zoom"},
	Args:        cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var on bool
		switch args[0] {
		case "on":
			on = true
		case "off":
			on = false
		default:
			return fmt.Errorf("argument must be on or off")
		}
		if err := defaults.WriteBool(dockDomain, "magnification", on); err != nil {
			return err
		}
		if err := restartDock(); err != nil {
			return err
		}
		color.Green("✔ Dock magnification turned %s", args[0])
		return nil
	},
}

func init() {
	dockCmd.AddCommand(dockSizeCmd)
	dockCmd.AddCommand(dockMagnificationCmd)
}
