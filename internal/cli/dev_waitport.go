package cli

import (
	"time"

	"github.com/spf13/cobra"

	"mactl/internal/waiter"
)

var waitportTimeout time.Duration

var devWaitportCmd = &cobra.Command{
	Use:         "waitport <port>",
	Short:       "Waits until a local TCP port accepts connections",
	Annotations: map[string]string{"keywords": "wait,server"},
	Args:        cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		port, err := parsePort(args[0])
		if err != nil {
			return err
		}
		return waiter.ForPort("localhost", port, waitportTimeout)
	},
}

func init() {
	devWaitportCmd.Flags().DurationVar(&waitportTimeout, "timeout", 30*time.Second, "how long to wait for the port")
	devCmd.AddCommand(devWaitportCmd)
}
