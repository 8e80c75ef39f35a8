package cli

import (
	"github.com/fatih/color"

	"mactl/internal/config"
)

// builtinShortcuts are the fixed top-level aliases that bypass the
// category/action syntax.
var builtinShortcuts = map[string][]string{
	"ip":      {"network", "ip"},
	"cleanup": {"system", "cleanup"},
	"dark":    {"display", "dark"},
	"light":   {"display", "light"},
	"kp":      {"dev", "killport"},
}

// resolveShortcut maps a top-level alias to its category/action pair,
// consulting the builtin table first and then ~/.mactl/config.yaml.
// User aliases can never shadow a real command: shortcuts are only
// consulted after command lookup has already failed.
var resolveShortcut = func(name string) ([]string, bool) {
	if target, ok := builtinShortcuts[name]; ok {
		return target, true
	}

	cfg, err := config.New()
	if err != nil {
		return nil, false
	}
	user, err := cfg.LoadShortcuts()
	if err != nil {
		color.Yellow("! Ignoring user shortcuts: %v", err)
		return nil, false
	}
	for alias := range user {
		if _, builtin := builtinShortcuts[alias]; builtin || knownCommand(alias) {
			color.Yellow("! Ignoring shortcut %q: it shadows a mactl command", alias)
			delete(user, alias)
		}
	}

	target, ok := user[name]
	if !ok {
		return nil, false
	}
	// A shortcut may only point at a real command. Anything else, including
	// an alias naming itself, would loop through dispatch forever.
	if !knownCommand(target[0]) {
		color.Yellow("! Ignoring shortcut %q: %q is not a mactl command", name, target[0])
		return nil, false
	}
	return target, true
}
