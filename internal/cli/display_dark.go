package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/defaults"
	"mactl/internal/runner"
)

// darkModeEnabled reads the current appearance. The AppleInterfaceStyle key
// only exists while dark mode is active.
var darkModeEnabled = func() (bool, error) {
	style, err := defaults.Read(defaults.GlobalDomain, "AppleInterfaceStyle")
	if err != nil {
		return false, err
	}
	return style == "Dark", nil
}

var setDarkMode = func(on bool) error {
	script := fmt.Sprintf(`tell application "System Events" to tell appearance preferences to set dark mode to %t`, on)
	return runner.Run("osascript", "-e", script)
}

func switchAppearance(dark bool) error {
	current, err := darkModeEnabled()
	if err != nil {
		return err
	}
	name := map[bool]string{true: "Dark", false: "Light"}
	if current == dark {
		color.Green("✔ %s mode is already on", name[dark])
		return nil
	}
	if err := setDarkMode(dark); err != nil {
		return err
	}
	color.Green("✔ Switched to %s mode", name[dark])
	return nil
}

var displayDarkCmd = &cobra.Command{
	Use:         "dark",
	Short:       "Switches to dark mode",
	Annotations: map[string]string{"keywords": "appearance,theme"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return switchAppearance(true)
	},
}

var displayLightCmd = &cobra.Command{
	Use:         "light",
	Short:       "Switches to light mode",
	Annotations: map[string]string{"keywords": "appearance,theme"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return switchAppearance(false)
	},
}

var displayToggleCmd = &cobra.Command{
	Use:         "toggle",
	Short:       "Toggles between light and dark mode",
	Annotations: map[string]string{"keywords": "appearance,theme"},
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := darkModeEnabled()
		if err != nil {
			return err
		}
		if err := setDarkMode(!current); err != nil {
			return err
		}
		if current {
			color.Green("✔ Switched to Light mode")
		} else {
			color.Green("✔ Switched to Dark mode")
		}
		return nil
	},
}

func init() {
	displayCmd.AddCommand(displayDarkCmd)
	displayCmd.AddCommand(displayLightCmd)
	displayCmd.AddCommand(displayToggleCmd)
}
