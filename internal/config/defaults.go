package config

import "github.com/exgen-dev/exgen/internal/installer"

// Default values.
const (
	DefaultLogLevel = "warn"
)

// NewDefaultConfig returns a Config with every field at its default.
func NewDefaultConfig() *Config {
	return &Config{
		Installer: InstallerConfig{
			Command: installer.DefaultCommand,
			Args:    []string{installer.DefaultArg},
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}
