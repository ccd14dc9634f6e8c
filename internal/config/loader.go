package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/exgen-dev/exgen/internal/defs"
)

// Environment variable prefix: EXGEN_INSTALLER_COMMAND, EXGEN_LOG_LEVEL, ...
const envPrefix = "EXGEN"

// Loader merges defaults, the config file and the environment.
type Loader struct {
	v        *viper.Viper
	fileUsed string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv applies during Unmarshal.
	def := NewDefaultConfig()
	v.SetDefault("installer.command", def.Installer.Command)
	v.SetDefault("installer.args", def.Installer.Args)
	v.SetDefault("defaults.backend", def.Defaults.Backend)
	v.SetDefault("defaults.entity_name", def.Defaults.EntityName)
	v.SetDefault("log.level", def.Log.Level)

	return &Loader{v: v}
}

// Load reads the configuration. An explicit path must exist; otherwise
// <dir>/.exgen.yaml is read when present. The result is validated.
func (l *Loader) Load(path, dir string) (*Config, error) {
	file := path
	if file == "" {
		file = filepath.Join(dir, defs.ConfigFile)
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			file = ""
		}
	} else if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	if file != "" {
		l.v.SetConfigFile(file)
		l.v.SetConfigType("yaml")
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, file, err)
		}
		l.fileUsed = file
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Defaults.Backend = strings.ToLower(strings.TrimSpace(cfg.Defaults.Backend))
	cfg.Defaults.EntityName = strings.TrimSpace(cfg.Defaults.EntityName)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FileUsed returns the config file read by Load, or "" when none was.
func (l *Loader) FileUsed() string {
	return l.fileUsed
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return []byte(sb.String()), nil
}
