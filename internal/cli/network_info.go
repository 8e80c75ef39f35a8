package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"mactl/internal/parse"
	"mactl/internal/runner"
)

var networkInfoCmd = &cobra.Command{
	Use:         "info",
	Short:       "Lists network interfaces with IP and MAC addresses",
	Annotations: map[string]string{"keywords": "interface,mac"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := runner.Output("networksetup", "-listallhardwareports")
		if err != nil {
			return err
		}
		ports := parse.HardwarePorts(out)
		if len(ports) == 0 {
			color.Yellow("No hardware ports found.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"INTERFACE", "DEVICE", "IP", "MAC"})
		for _, port := range ports {
			ip, err := runner.Output("ipconfig", "getifaddr", port.Device)
			if err != nil || ip == "" {
				ip = "-"
			}
			table.Append([]string{port.Name, port.Device, ip, port.MAC})
		}
		table.Render()
		return nil
	},
}

func init() {
	networkCmd.AddCommand(networkInfoCmd)
}
