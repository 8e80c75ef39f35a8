package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mactl/internal/parse"
	"mactl/internal/runner"
)

// wifiCmd represents the wifi category
var wifiCmd = &cobra.Command{
	Use:     "wifi",
	Short:   "Wi-Fi power and network status",
	GroupID: categoryGroup,
	Args:    cobra.ArbitraryArgs,
	RunE:    requireAction,
}

// wifiDevice discovers the Wi-Fi device name (usually en0) from the
// hardware port list.
var wifiDevice = func() (string, error) {
	out, err := runner.Output("networksetup", "-listallhardwareports")
	if err != nil {
		return "", err
	}
	for _, port := range parse.HardwarePorts(out) {
		if port.Name == "Wi-Fi" || port.Name == "AirPort" {
			return port.Device, nil
		}
	}
	return "", fmt.Errorf("no Wi-Fi hardware port found")
}

// wifiPower reads the current Wi-Fi power state.
var wifiPower = func(device string) (bool, error) {
	out, err := runner.Output("networksetup", "-getairportpower", device)
	if err != nil {
		return false, err
	}
	return parse.AirportPower(out)
}

func init() {
	rootCmd.AddCommand(wifiCmd)
}
