package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/runner"
)

// cgSessionPath is the private utility that suspends the login session.
const cgSessionPath = "/System/Library/CoreServices/Menu Extras/User.menu/Contents/Resources/CGSession"

var systemLockCmd = &cobra.Command{
	Use:         "lock",
	Short:       "Locks the screen",
	Annotations: map[string]string{"keywords": "screen,session"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runner.Run(cgSessionPath, "-suspend"); err != nil {
			return err
		}
		color.Green("✔ Screen locked")
		return nil
	},
}

var systemSleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Puts the machine to sleep",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runner.Run("pmset", "sleepnow")
	},
}

func init() {
	systemCmd.AddCommand(systemLockCmd)
	systemCmd.AddCommand(systemSleepCmd)
}
