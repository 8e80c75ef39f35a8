package cli

import (
	"github.com/spf13/cobra"
)

// systemCmd represents the system category
var systemCmd = &cobra.Command{
	Use:     "system",
	Short:   "System information, memory, battery, and maintenance",
	GroupID: categoryGroup,
	Args:    cobra.ArbitraryArgs,
	RunE:    requireAction,
}

func init() {
	rootCmd.AddCommand(systemCmd)
}
