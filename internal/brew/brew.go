// Package brew wraps the optional Homebrew installation.
package brew

import (
	"mactl/internal/runner"
)

// IsInstalled reports whether the brew binary is on PATH.
var IsInstalled = func() bool {
	return runner.Installed("brew")
}

// Cleanup removes stale Homebrew downloads and old versions of installed
// formulae. Callers are expected to check IsInstalled first.
var Cleanup = func() error {
	return runner.Run("brew", "cleanup", "--prune=all")
}
