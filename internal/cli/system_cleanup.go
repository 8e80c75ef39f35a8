package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/brew"
	"mactl/internal/runner"
)

var systemCleanupCmd = &cobra.Command{
	Use:         "cleanup",
	Short:       "Flushes caches and frees inactive memory",
	Annotations: map[string]string{"keywords": "purge,maintenance,dns"},
	RunE: func(cmd *cobra.Command, args []string) error {
		color.Cyan("i Running system cleanup... (this may require sudo password)")

		if err := runner.Run("dscacheutil", "-flushcache"); err != nil {
			return err
		}
		if err := runner.RunInteractive("sudo", "killall", "-HUP", "mDNSResponder"); err != nil {
			return err
		}
		color.Green("✔ DNS cache flushed")

		if err := runner.RunInteractive("sudo", "purge"); err != nil {
			return err
		}
		color.Green("✔ Inactive memory purged")

		if !brew.IsInstalled() {
			color.Yellow("! Homebrew not installed, skipping brew cleanup")
			return nil
		}
		if err := brew.Cleanup(); err != nil {
			return err
		}
		color.Green("✔ Homebrew caches cleaned")
		return nil
	},
}

func init() {
	systemCmd.AddCommand(systemCleanupCmd)
}
