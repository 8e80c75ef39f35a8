package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppName is the name of the application
const AppName = "mactl"

// Config holds the application's configuration.
type Config struct {
	homeDir string
}

// New creates a new Config instance.
var New = func() (*Config, error) {
	var home string
	var err error

	// Check for the override environment variable first.
	// This is useful for testing.
	homeOverride := os.Getenv("MACTL_HOME")
	if homeOverride != "" {
		home = homeOverride
	} else {
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, err
		}
	}

	return &Config{homeDir: home}, nil
}

// GetAppDir returns the path to the application's hidden directory.
func (c *Config) GetAppDir() string {
	return filepath.Join(c.homeDir, "."+AppName)
}

// GetReportsDir returns the directory diagnostic reports are written to.
func (c *Config) GetReportsDir() string {
	return filepath.Join(c.GetAppDir(), "reports")
}

// GetHomeDir returns the configured home directory.
func (c *Config) GetHomeDir() string {
	return c.homeDir
}

// SetHomeDir sets the application's home directory.
func (c *Config) SetHomeDir(dir string) {
	c.homeDir = dir
}

type configFile struct {
	Shortcuts map[string]string `yaml:"shortcuts"`
}

// LoadShortcuts reads user-defined shortcut aliases from
// ~/.mactl/config.yaml. A missing file yields an empty map.
func (c *Config) LoadShortcuts() (map[string][]string, error) {
	path := filepath.Join(c.GetAppDir(), "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]string{}, nil
		}
		return nil, err
	}

	var cf configFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	shortcuts := make(map[string][]string, len(cf.Shortcuts))
	for alias, target := range cf.Shortcuts {
		fields := strings.Fields(target)
		if len(fields) == 0 {
			continue
		}
		shortcuts[alias] = fields
	}
	return shortcuts, nil
}
