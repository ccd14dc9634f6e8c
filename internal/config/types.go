package config

// Config is the root of .exgen.yaml.
type Config struct {
	Installer InstallerConfig `yaml:"installer" mapstructure:"installer"`
	Defaults  DefaultsConfig  `yaml:"defaults" mapstructure:"defaults"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// InstallerConfig selects the package manager command. Packages are
// appended after Args.
type InstallerConfig struct {
	Command string   `yaml:"command" mapstructure:"command" validate:"required"`
	Args    []string `yaml:"args" mapstructure:"args"`
}

// DefaultsConfig holds preset answers used when the matching flag is absent.
type DefaultsConfig struct {
	Backend    string `yaml:"backend" mapstructure:"backend" validate:"omitempty,oneof=mongodb mysql"`
	EntityName string `yaml:"entity_name" mapstructure:"entity_name" validate:"omitempty,entityname"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level" validate:"required,oneof=debug info warn error"`
}
