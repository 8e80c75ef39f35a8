package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/parse"
	"mactl/internal/runner"
)

var networkIPCmd = &cobra.Command{
	Use:         "ip",
	Short:       "Shows local and public IP addresses",
	Annotations: map[string]string{"keywords": "address,public,local"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := runner.Output("networksetup", "-listallhardwareports")
		if err != nil {
			return err
		}

		found := false
		for _, port := range parse.HardwarePorts(out) {
			// ipconfig exits non-zero for interfaces without an address.
			ip, err := runner.Output("ipconfig", "getifaddr", port.Device)
			if err != nil || ip == "" {
				continue
			}
			fmt.Printf("%-20s %s (%s)\n", port.Name+":", ip, port.Device)
			found = true
		}
		if !found {
			color.Yellow("No active network interfaces with an IPv4 address.")
		}

		if !runner.Installed("dig") {
			color.Yellow("! dig not found, skipping public IP lookup")
			return nil
		}
		public, err := runner.Output("dig", "+short", "myip.opendns.com", "@resolver1.opendns.com")
		if err != nil || public == "" {
			color.Yellow("! Could not determine public IP (offline?)")
			return nil
		}
		fmt.Printf("%-20s %s\n", "Public:", public)
		return nil
	},
}

func init() {
	networkCmd.AddCommand(networkIPCmd)
}
