// Package diag collects system information into a diagnostics report.
package diag

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"mactl/internal/config"
	"mactl/internal/runner"
)

// probe is one command whose output goes into the report.
type probe struct {
	title string
	name  string
	args  []string
}

var probes = []probe{
	{title: "macOS version", name: "sw_vers"},
	{title: "Kernel", name: "uname", args: []string{"-a"}},
	{title: "Hardware model", name: "sysctl", args: []string{"-n", "hw.model"}},
	{title: "CPU", name: "sysctl", args: []string{"-n", "machdep.cpu.brand_string"}},
	{title: "Memory (bytes)", name: "sysctl", args: []string{"-n", "hw.memsize"}},
	{title: "Uptime", name: "uptime"},
	{title: "Disk usage", name: "df", args: []string{"-h", "/"}},
}

// WriteReport runs the diagnostic probes and writes their output to a
// uniquely named report file under the app's reports directory. Probes that
// fail are recorded in the report rather than aborting it.
var WriteReport = func(cfg *config.Config) (string, error) {
	dir := cfg.GetReportsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	var b strings.Builder
	id := uuid.New().String()
	fmt.Fprintf(&b, "%s diagnostics report %s\n", config.AppName, id)
	fmt.Fprintf(&b, "generated: %s\n\n", time.Now().Format(time.RFC3339))

	for _, p := range probes {
		fmt.Fprintf(&b, "== %s ==\n", p.title)
		out, err := runner.Output(p.name, p.args...)
		if err != nil {
			fmt.Fprintf(&b, "(failed: %v)\n\n", err)
			continue
		}
		fmt.Fprintf(&b, "%s\n\n", out)
	}

	path := filepath.Join(dir, id+".txt")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
