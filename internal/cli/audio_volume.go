package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/runner"
)

var audioVolumeCmd = &cobra.Command{
	Use:         "volume <0-100>",
	Short:       "Sets the output volume",
	Annotations: map[string]string{"keywords": "loudness"},
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
			return fmt.Errorf("Volume must be between 0 and 100")
		}
		if err := runner.Run("osascript", "-e", fmt.Sprintf("set volume output volume %d", level)); err != nil {
			return err
		}
		color.Green("✔ Volume set to %d%%", level)
		return nil
	},
}

func init() {
	audioCmd.AddCommand(audioVolumeCmd)
}
