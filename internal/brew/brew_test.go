package brew

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mactl/internal/runner"
)

func TestIsInstalled(t *testing.T) {
	originalLookup := runner.Installed
	t.Cleanup(func() { runner.Installed = originalLookup })

	runner.Installed = func(name string) bool { return name == "brew" }
	assert.True(t, IsInstalled())

	runner.Installed = func(name string) bool { return false }
	assert.False(t, IsInstalled())
}

func TestCleanup(t *testing.T) {
	originalRun := runner.Run
	t.Cleanup(func() { runner.Run = originalRun })

	var got string
	runner.Run = func(name string, args ...string) error {
		got = name + " " + strings.Join(args, " ")
		return nil
	}

	require.NoError(t, Cleanup())
	assert.Equal(t, "brew cleanup --prune=all", got)
}
