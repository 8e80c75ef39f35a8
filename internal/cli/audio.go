package cli

import (
	"github.com/spf13/cobra"

	"mactl/internal/parse"
	"mactl/internal/runner"
)

// audioCmd represents the audio category
var audioCmd = &cobra.Command{
	Use:     "audio",
	Short:   "Output volume and mute control",
	GroupID: categoryGroup,
	Args:    cobra.ArbitraryArgs,
	RunE:    requireAction,
}

// volumeSettings reads the current output volume and mute state.
var volumeSettings = func() (volume int, muted bool, err error) {
	out, err := runner.Output("osascript", "-e", "get volume settings")
	if err != nil {
		return 0, false, err
	}
	return parse.VolumeSettings(out)
}

func init() {
	rootCmd.AddCommand(audioCmd)
}
