package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mactl/internal/parse"
	"mactl/internal/runner"
)

var systemMemoryCmd = &cobra.Command{
	Use:         "memory",
	Short:       "Shows a memory usage summary",
	Annotations: map[string]string{"keywords": "ram,vm_stat,free"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := runner.Output("vm_stat")
		if err != nil {
			return err
		}
		stats, err := parse.VMStat(out)
		if err != nil {
			return err
		}
		fmt.Printf("%-14s %6d MB\n", "Free:", stats.FreeMB)
		fmt.Printf("%-14s %6d MB\n", "Active:", stats.ActiveMB)
		fmt.Printf("%-14s %6d MB\n", "Inactive:", stats.InactiveMB)
		fmt.Printf("%-14s %6d MB\n", "Wired:", stats.WiredMB)
		fmt.Printf("%-14s %6d MB\n", "Compressed:", stats.CompressedMB)
		return nil
	},
}

func init() {
	systemCmd.AddCommand(systemMemoryCmd)
}
