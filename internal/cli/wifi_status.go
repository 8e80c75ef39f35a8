package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/parse"
	"mactl/internal/runner"
)

// currentSSID returns the SSID of the network the machine is joined to,
// or an empty string when not associated.
var currentSSID = func(device string) (string, error) {
	out, err := runner.Output("networksetup", "-getairportnetwork", device)
	if err != nil {
		return "", err
	}
	return parse.CurrentSSID(out)
}

var wifiStatusCmd = &cobra.Command{
	Use:         "status",
	Short:       "Shows Wi-Fi power state and current network",
	Annotations: map[string]string{"keywords": "ssid,power"},
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := wifiDevice()
		if err != nil {
			return err
		}
		on, err := wifiPower(device)
		if err != nil {
			return err
		}
		if !on {
			color.Yellow("Wi-Fi (%s) is off", device)
			return nil
		}
		color.Green("Wi-Fi (%s) is on", device)
		ssid, err := currentSSID(device)
		if err != nil {
			return err
		}
		if ssid == "" {
			color.Yellow("Not associated with any network")
			return nil
		}
		fmt.Printf("Connected to: %s\n", ssid)
		return nil
	},
}

var wifiNameCmd = &cobra.Command{
	Use:         "name",
	Short:       "Prints the current Wi-Fi network name",
	Annotations: map[string]string{"keywords": "ssid"},
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := wifiDevice()
		if err != nil {
			return err
		}
		ssid, err := currentSSID(device)
		if err != nil {
			return err
		}
		if ssid == "" {
			return fmt.Errorf("not associated with any Wi-Fi network")
		}
		fmt.Println(ssid)
		return nil
	},
}

func init() {
	wifiCmd.AddCommand(wifiStatusCmd)
	wifiCmd.AddCommand(wifiNameCmd)
}
