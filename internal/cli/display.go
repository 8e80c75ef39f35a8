package cli

import (
	"github.com/spf13/cobra"
)

// displayCmd represents the display category
var displayCmd = &cobra.Command{
	Use:     "display",
	Short:   "Brightness, appearance, and display sleep",
	GroupID: categoryGroup,
	Args:    cobra.ArbitraryArgs,
	RunE:    requireAction,
}

func init() {
	rootCmd.AddCommand(displayCmd)
}
