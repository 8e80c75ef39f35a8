package cli

import (
	"github.com/spf13/cobra"
)

const finderDomain = "com.apple.finder"

// finderCmd represents the finder category
var finderCmd = &cobra.Command{
	Use:     "finder",
	Short:   "Finder visibility and behavior settings",
	GroupID: categoryGroup,
	Args:    cobra.ArbitraryArgs,
	RunE:    requireAction,
}

func init() {
	rootCmd.AddCommand(finderCmd)
}
