// Package cli provides the Cobra command tree and dependency wiring for
// the exgen CLI. This file defines the Dependencies struct (Composition
// Root) that wires the scaffold packages together.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/exgen-dev/exgen/internal/cli/wizard"
	"github.com/exgen-dev/exgen/internal/config"
	"github.com/exgen-dev/exgen/internal/core/project"
	"github.com/exgen-dev/exgen/internal/core/scaffold"
	"github.com/exgen-dev/exgen/internal/installer"
	"github.com/exgen-dev/exgen/internal/template"
	"github.com/exgen-dev/exgen/internal/ui"
)

// Dependencies holds the services used by CLI commands. It is built once
// per invocation by InitDependencies.
type Dependencies struct {
	BaseDir    string
	Config     *config.Config
	ConfigFile string
	Registry   *template.Registry
	Installer  *installer.Runner
	Service    *project.Service
	Headless   *ui.HeadlessManager
	Theme      *ui.Theme
	Logger     *slog.Logger
}

// deps is the dependencies instance of the running command.
var deps *Dependencies

// InitDependencies resolves the base directory, loads configuration and
// wires the scaffold service for cmd.
func InitDependencies(cmd *cobra.Command) error {
	baseDir, err := resolveBaseDir(getStringFlag(cmd, "dir"))
	if err != nil {
		return err
	}

	loader := config.NewLoader()
	cfg, err := loader.Load(getStringFlag(cmd, "config"), baseDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), getBoolFlag(cmd, "verbose"), cfg.Log.Level)

	hm := ui.NewHeadlessManager()
	if getBoolFlag(cmd, "non-interactive") {
		hm.ForceHeadless(true)
	}

	reg, err := template.NewDefaultRegistry()
	if err != nil {
		return err
	}

	runner := installer.NewRunner(cfg.Installer.Command, cfg.Installer.Args, logger)
	choices := wizard.NewProvider(presets(cmd, cfg), hm.IsInteractive())
	engine := scaffold.NewEngine(reg, logger)

	deps = &Dependencies{
		BaseDir:    baseDir,
		Config:     cfg,
		ConfigFile: loader.FileUsed(),
		Registry:   reg,
		Installer:  runner,
		Service:    project.NewService(engine, choices, runner, logger),
		Headless:   hm,
		Theme:      ui.NewTheme(false),
		Logger:     logger,
	}

	logger.Debug("dependencies initialized",
		"dir", baseDir,
		"config", deps.ConfigFile,
		"interactive", hm.IsInteractive(),
	)
	return nil
}

// resolveBaseDir returns dir as an absolute path, defaulting to the
// working directory.
func resolveBaseDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve --dir: %w", err)
	}
	return abs, nil
}

// presets maps question keys to answers from flags, falling back to
// config defaults.
func presets(cmd *cobra.Command, cfg *config.Config) map[string]string {
	p := map[string]string{
		project.QuestionBackend:    cfg.Defaults.Backend,
		project.QuestionEntityName: cfg.Defaults.EntityName,
	}
	if v := getStringFlag(cmd, "db"); v != "" {
		p[project.QuestionBackend] = v
	}
	if v := getStringFlag(cmd, "name"); v != "" {
		p[project.QuestionEntityName] = v
	}
	return p
}
