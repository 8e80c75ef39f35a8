package diag

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mactl/internal/config"
	"mactl/internal/runner"
)

func TestWriteReport(t *testing.T) {
	originalOutput := runner.Output
	t.Cleanup(func() { runner.Output = originalOutput })
	runner.Output = func(name string, args ...string) (string, error) {
		switch name {
		case "sw_vers":
			return "ProductName: macOS\nProductVersion: 14.5", nil
		case "uptime":
			return "", fmt.Errorf("command failed: uptime not found")
		default:
			return "ok", nil
		}
	}

	cfg := &config.Config{}
	cfg.SetHomeDir(t.TempDir())

	path, err := WriteReport(cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, cfg.GetReportsDir()))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	report := string(contents)
	assert.Contains(t, report, "mactl diagnostics report")
	assert.Contains(t, report, "== macOS version ==")
	assert.Contains(t, report, "ProductVersion: 14.5")
	// Failed probes are recorded, not fatal.
	assert.Contains(t, report, "== Uptime ==")
	assert.Contains(t, report, "(failed: command failed: uptime not found)")
	assert.Contains(t, report, "== Disk usage ==")
}
