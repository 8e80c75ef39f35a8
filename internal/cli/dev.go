package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// devCmd represents the dev category
var devCmd = &cobra.Command{
	Use:     "dev",
	Short:   "Developer shortcuts: ports, keys, and logs",
	GroupID: categoryGroup,
	Args:    cobra.ArbitraryArgs,
	RunE:    requireAction,
}

// parsePort validates a TCP port argument.
func parsePort(arg string) (int, error) {
	port, err := strconv.Atoi(arg)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("port must be a number between 1 and 65535")
	}
	return port, nil
}

// devHiddenFilesCmd mirrors `finder hidden` for people who look for it here.
var devHiddenFilesCmd = &cobra.Command{
	Use:         "hidden-files [on|off|toggle|status]",
	Short:       "Shows or hides hidden files in Finder",
	Annotations: map[string]string{"keywords": "dotfiles,invisible"},
	Args:        cobra.MaximumNArgs(1),
	RunE:        finderHiddenCmd.RunE,
}

func init() {
	rootCmd.AddCommand(devCmd)
	devCmd.AddCommand(devHiddenFilesCmd)
}
