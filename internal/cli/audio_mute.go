package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/runner"
)

func setMuted(muted bool) error {
	_, current, err := volumeSettings()
	if err != nil {
		return err
	}
	label := map[bool]string{true: "muted", false: "unmuted"}
	if current == muted {
		color.Green("✔ Output is already %s", label[muted])
		return nil
	}
	if err := runner.Run("osascript", "-e", fmt.Sprintf("set volume output muted %t", muted)); err != nil {
		return err
	}
	color.Green("✔ Output %s", label[muted])
	return nil
}

var audioMuteCmd = &cobra.Command{
	Use:   "mute",
	Short: "Mutes the output",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setMuted(true)
	},
}

var audioUnmuteCmd = &cobra.Command{
	Use:   "unmute",
	Short: "Unmutes the output",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setMuted(false)
	},
}

var audioStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Shows the current volume and mute state",
	RunE: func(cmd *cobra.Command, args []string) error {
		volume, muted, err := volumeSettings()
		if err != nil {
			return err
		}
		if muted {
			color.Yellow("Volume: %d%% (muted)", volume)
		} else {
			fmt.Printf("Volume: %d%%\n", volume)
		}
		return nil
	},
}

func init() {
	audioCmd.AddCommand(audioMuteCmd)
	audioCmd.AddCommand(audioUnmuteCmd)
	audioCmd.AddCommand(audioStatusCmd)
}
