package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/runner"
)

var displayBrightnessCmd = &cobra.Command{
	Use:         "brightness <0-100>",
	Short:       "Sets the display brightness",
	Annotations: map[string]string{"keywords": "dim"},
	// pflag would reject a negative level as an unknown shorthand flag
	// before the range check ever ran.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		args, help := splitRawArgs(args)
		if help {
			return cmd.Help()
		}
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return err
		}
		level, err := strconv.Atoi(args[0])
		if err != nil || level < 0 || level > 100 {
			return fmt.Errorf("Brightness must be between 0 and 100")
		}

		// The `brightness` helper (brew install brightness) is the only
		// scriptable way to set an absolute level.
		if !runner.Installed("brightness") {
			color.Yellow("! brightness helper not installed (brew install brightness)")
			color.Yellow("! Falling back to a single brightness key press")
			key := "144" // brightness up
			if level < 50 {
				key = "145" // brightness down
			}
			if err := runner.Run("osascript", "-e", fmt.Sprintf(`tell application "System Events" to key code %s`, key)); err != nil {
				return err
			}
			return nil
		}

		if err := runner.Run("brightness", fmt.Sprintf("%.2f", float64(level)/100)); err != nil {
			return err
		}
		color.Green("✔ Brightness set to %d%%", level)
		return nil
	},
}

func init() {
	displayCmd.AddCommand(displayBrightnessCmd)
}
