// Package defaults wraps the macOS `defaults` preference tool.
package defaults

import (
	"fmt"
	"strings"

	"mactl/internal/parse"
	"mactl/internal/runner"
)

// GlobalDomain is the NSGlobalDomain shorthand accepted by `defaults`.
const GlobalDomain = "-g"

// Read returns the raw string value of a preference key. A key that is not
// set returns an empty string and no error.
var Read = func(domain, key string) (string, error) {
	out, err := runner.Output("defaults", "read", domain, key)
	if err != nil {
		// `defaults read` exits non-zero when the key has never been written.
		if strings.Contains(err.Error(), "does not exist") {
			return "", nil
		}
		return "", err
	}
	return out, nil
}

// ReadBool reads a preference key as a boolean. Unset keys read as false.
var ReadBool = func(domain, key string) (bool, error) {
	out, err := Read(domain, key)
	if err != nil {
		return false, err
	}
	return parse.BoolFlag(out), nil
}

// WriteBool sets a boolean preference key.
var WriteBool = func(domain, key string, value bool) error {
	return runner.Run("defaults", "write", domain, key, "-bool", fmt.Sprintf("%t", value))
}

// WriteString sets a string preference key.
var WriteString = func(domain, key, value string) error {
	return runner.Run("defaults", "write", domain, key, "-string", value)
}

// WriteInt sets an integer preference key.
var WriteInt = func(domain, key string, value int) error {
	return runner.Run("defaults", "write", domain, key, "-int", fmt.Sprintf("%d", value))
}

// Delete removes a whole preference domain, restoring its factory state.
var Delete = func(domain string) error {
	return runner.Run("defaults", "delete", domain)
}

// KillAll restarts the process that owns a preference domain so a change
// takes effect (Dock, Finder, SystemUIServer).
var KillAll = func(process string) error {
	return runner.Run("killall", process)
}
