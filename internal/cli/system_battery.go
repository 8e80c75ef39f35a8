package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/parse"
	"mactl/internal/runner"
)

var systemBatteryCmd = &cobra.Command{
	Use:         "battery",
	Short:       "Shows battery charge and state",
	Annotations: map[string]string{"keywords": "power,charge,pmset"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := runner.Output("pmset", "-g", "batt")
		if err != nil {
			return err
		}
		status, err := parse.Battery(out)
		if err != nil {
			color.Yellow("No battery found (desktop Mac?)")
			return nil
		}
		paint := color.Green
		if status.Percent <= 20 {
			paint = color.Red
		} else if status.Percent <= 50 {
			paint = color.Yellow
		}
		paint("Battery: %d%% (%s)", status.Percent, status.State)
		if status.Remaining != "" && status.Remaining != "0:00" {
			fmt.Printf("Time remaining: %s\n", status.Remaining)
		}
		return nil
	},
}

func init() {
	systemCmd.AddCommand(systemBatteryCmd)
}
