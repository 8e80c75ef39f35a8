package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mactl/internal/runner"
)

var finderRevealCmd = &cobra.Command{
	Use:         "reveal [path]",
	Short:       "Reveals a path in a Finder window",
	Annotations: map[string]string{"keywords": "open,show"},
	Args:        cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if _, err := os.Stat(abs); err != nil {
			return fmt.Errorf("no such path: %s", abs)
		}
		if err := runner.Run("osascript",
			"-e", fmt.Sprintf(`tell application "Finder" to reveal POSIX file %q`, abs),
			"-e", `tell application "Finder" to activate`); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	finderCmd.AddCommand(finderRevealCmd)
}
