package cli

import (
	"github.com/spf13/cobra"

	"mactl/internal/defaults"
)

const dockDomain = "com.apple.dock"

// dockCmd represents the dock category
var dockCmd = &cobra.Command{
	Use:     "dock",
	Short:   "Dock position, size, and behavior",
	GroupID: categoryGroup,
	Args:    cobra.ArbitraryArgs,
	RunE:    requireAction,
}

// restartDock applies pending dock preference changes.
var restartDock = func() error {
	return defaults.KillAll("Dock")
}

func init() {
	rootCmd.AddCommand(dockCmd)
}
