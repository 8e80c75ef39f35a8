package cli

import (
	"github.com/spf13/cobra"
)

// networkCmd represents the network category
var networkCmd = &cobra.Command{
	Use:     "network",
	Short:   "IP addresses, DNS, and listening ports",
	GroupID: categoryGroup,
	Args:    cobra.ArbitraryArgs,
	RunE:    requireAction,
}

func init() {
	rootCmd.AddCommand(networkCmd)
}
