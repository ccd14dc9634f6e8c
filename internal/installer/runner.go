// Package installer runs the external package manager that installs the
// generated project's npm dependencies.
package installer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Default command line used by the configuration defaults; packages are
// appended after the arguments.
const (
	DefaultCommand = "npm"
	DefaultArg     = "install"
)

// ErrEmptyCommand indicates the runner has no command to execute.
var ErrEmptyCommand = errors.New("installer command is empty")

// CommandResult captures one execution of the installer command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Runner executes "<command> <args...> <packages...>" in the project
// directory. It satisfies project.Installer.
type Runner struct {
	command string
	args    []string
	logger  *slog.Logger
}

// NewRunner creates a Runner for command and args. A blank command is
// reported as ErrEmptyCommand when the runner is used.
func NewRunner(command string, args []string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		command: strings.TrimSpace(command),
		args:    append([]string(nil), args...),
		logger:  logger,
	}
}

// CommandLine returns the full command line for packages, for display.
func (r *Runner) CommandLine(packages []string) string {
	parts := append([]string{r.command}, r.args...)
	return strings.Join(append(parts, packages...), " ")
}

// Install runs the command and returns its standard output. A start
// failure or non-zero exit is an error whose text is the trimmed standard
// error, or the execution error when standard error is empty.
func (r *Runner) Install(ctx context.Context, dir string, packages []string) (string, error) {
	res, err := r.Run(ctx, dir, packages)
	return res.Stdout, err
}

// Run executes the command and returns the captured result.
func (r *Runner) Run(ctx context.Context, dir string, packages []string) (*CommandResult, error) {
	if r.command == "" {
		return &CommandResult{ExitCode: -1}, ErrEmptyCommand
	}

	args := append(append([]string(nil), r.args...), packages...)
	cmd := exec.CommandContext(ctx, r.command, args...)
	cmd.Dir = dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("running installer", "command", r.command, "args", args, "dir", dir)
	start := time.Now()
	runErr := cmd.Run()

	res := &CommandResult{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	r.logger.Debug("installer finished", "exit_code", res.ExitCode, "duration", res.Duration)

	if runErr != nil {
		if msg := strings.TrimSpace(res.Stderr); msg != "" {
			return res, errors.New(msg)
		}
		return res, runErr
	}
	return res, nil
}
