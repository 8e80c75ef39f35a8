package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/runner"
)

// screenshotPath builds the default capture destination on the Desktop.
var screenshotPath = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	name := "screenshot-" + time.Now().Format("20060102-150405") + ".png"
	return filepath.Join(home, "Desktop", name), nil
}

var screenshotTakeCmd = &cobra.Command{
	Use:         "take [path]",
	Short:       "Captures the whole screen",
	Annotations: map[string]string{"keywords": "fullscreen,grab"},
	Args:        cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		var err error
		if len(args) > 0 {
			path = args[0]
		} else if path, err = screenshotPath(); err != nil {
			return err
		}
		if err := runner.Run("screencapture", "-x", path); err != nil {
			return err
		}
		color.Green("✔ Saved to %s", path)
		return nil
	},
}

var screenshotAreaCmd = &cobra.Command{
	Use:         "area [path]",
	Short:       "Captures a selected area interactively",
	Annotations: map[string]string{"keywords": "selection,grab"},
	Args:        cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		var err error
		if len(args) > 0 {
			path = args[0]
		} else if path, err = screenshotPath(); err != nil {
			return err
		}
		if err := runner.RunInteractive("screencapture", "-i", path); err != nil {
			return err
		}
		color.Green("✔ Saved to %s", path)
		return nil
	},
}

var screenshotWindowCmd = &cobra.Command{
	Use:         "window [path]",
	Short:       "Captures a window interactively",
	Annotations: map[string]string{"keywords": "grab"},
	Args:        cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		var err error
		if len(args) > 0 {
			path = args[0]
		} else if path, err = screenshotPath(); err != nil {
			return err
		}
		if err := runner.RunInteractive("screencapture", "-iW", path); err != nil {
			return err
		}
		color.Green("✔ Saved to %s", path)
		return nil
	},
}

func init() {
	screenshotCmd.AddCommand(screenshotTakeCmd)
	screenshotCmd.AddCommand(screenshotAreaCmd)
	screenshotCmd.AddCommand(screenshotWindowCmd)
}
