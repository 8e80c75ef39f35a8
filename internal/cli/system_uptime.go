package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mactl/internal/parse"
	"mactl/internal/runner"
)

// timeNow is a variable to allow pinning the clock in tests.
var timeNow = time.Now

var systemUptimeCmd = &cobra.Command{
	Use:         "uptime",
	Short:       "Shows how long the system has been up",
	Annotations: map[string]string{"keywords": "boot"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := runner.Output("sysctl", "-n", "kern.boottime")
		if err != nil {
			return err
		}
		boot, err := parse.BootTime(out)
		if err != nil {
			return err
		}
		up := timeNow().Sub(boot)
		days := int(up.Hours()) / 24
		hours := int(up.Hours()) % 24
		minutes := int(up.Minutes()) % 60
		if days > 0 {
			fmt.Printf("Up %dd %dh %dm (since %s)\n", days, hours, minutes, boot.Format("Mon Jan 2 15:04"))
		} else {
			fmt.Printf("Up %dh %dm (since %s)\n", hours, minutes, boot.Format("Mon Jan 2 15:04"))
		}
		return nil
	},
}

func init() {
	systemCmd.AddCommand(systemUptimeCmd)
}
