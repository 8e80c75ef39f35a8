package cli

import (
	"github.com/spf13/cobra"
)

const screencaptureDomain = "com.apple.screencapture"

// screenshotCmd represents the screenshot category
var screenshotCmd = &cobra.Command{
	Use:     "screenshot",
	Short:   "Screen captures and capture settings",
	GroupID: categoryGroup,
	Args:    cobra.ArbitraryArgs,
	RunE:    requireAction,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
}
