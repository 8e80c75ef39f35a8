package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mactl/internal/runner"
)

var systemInfoCmd = &cobra.Command{
	Use:         "info",
	Short:       "Shows macOS version and hardware summary",
	Annotations: map[string]string{"keywords": "hardware,version,cpu"},
	RunE: func(cmd *cobra.Command, args []string) error {
		vers, err := runner.Output("sw_vers")
		if err != nil {
			return err
		}
		fmt.Println(vers)
		fmt.Println()

		model, err := runner.Output("sysctl", "-n", "hw.model")
		if err == nil {
			fmt.Printf("%-16s %s\n", "Model:", model)
		}
		cpu, err := runner.Output("sysctl", "-n", "machdep.cpu.brand_string")
		if err == nil {
			fmt.Printf("%-16s %s\n", "CPU:", cpu)
		}
		mem, err := runner.Output("sysctl", "-n", "hw.memsize")
		if err == nil {
			if bytes, convErr := strconv.ParseInt(mem, 10, 64); convErr == nil {
				fmt.Printf("%-16s %d GB\n", "Memory:", bytes/(1024*1024*1024))
			}
		}
		return nil
	},
}

func init() {
	systemCmd.AddCommand(systemInfoCmd)
}
