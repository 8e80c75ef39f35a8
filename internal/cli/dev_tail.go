package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mactl/internal/waiter"
)

var (
	tailUntil   string
	tailTimeout time.Duration
)

var devTailCmd = &cobra.Command{
	Use:         "tail <file>",
	Short:       "Follows a log file, optionally until a message appears",
	Annotations: map[string]string{"keywords": "log,follow,watch"},
	Args:        cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("no such file: %s", path)
		}
		if tailUntil != "" {
			return waiter.ForLogMessage(path, tailUntil, tailTimeout)
		}
		return waiter.Follow(path)
	},
}

func init() {
	devTailCmd.Flags().StringVar(&tailUntil, "until", "", "stop once this substring appears")
	devTailCmd.Flags().DurationVar(&tailTimeout, "timeout", 60*time.Second, "how long to wait with --until")
	devCmd.AddCommand(devTailCmd)
}
