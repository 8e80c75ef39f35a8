package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/runner"
)

var networkDNSCmd = &cobra.Command{
	Use:         "dns",
	Short:       "Shows the DNS servers for the Wi-Fi service",
	Annotations: map[string]string{"keywords": "nameserver,resolver"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := runner.Output("networksetup", "-getdnsservers", "Wi-Fi")
		if err != nil {
			return err
		}
		if strings.Contains(out, "aren't any DNS Servers") {
			color.Yellow("No DNS servers configured (using DHCP-provided resolvers).")
			return nil
		}
		fmt.Println(out)
		return nil
	},
}

var networkFlushCmd = &cobra.Command{
	Use:         "flush",
	Short:       "Flushes the DNS cache",
	Annotations: map[string]string{"keywords": "cache"},
	RunE: func(cmd *cobra.Command, args []string) error {
		color.Cyan("i Flushing DNS cache... (this may require sudo password)")
		if err := runner.Run("dscacheutil", "-flushcache"); err != nil {
			return err
		}
		if err := runner.RunInteractive("sudo", "killall", "-HUP", "mDNSResponder"); err != nil {
			return err
		}
		color.Green("✔ DNS cache flushed")
		return nil
	},
}

func init() {
	networkCmd.AddCommand(networkDNSCmd)
	networkCmd.AddCommand(networkFlushCmd)
}
