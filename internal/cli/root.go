package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/exgen-dev/exgen/pkg/version"
)

// skipDepsAnnotation marks commands that run without loading config.
const skipDepsAnnotation = "exgen/skip-deps"

var rootCmd = &cobra.Command{
	Use:   "exgen",
	Short: "Scaffold a minimal Express backend",
	Long: `exgen generates the skeleton of an Express (Node.js) backend:
structural folders, a server entry point, a route aggregator and
MongoDB or MySQL model stubs.

Existing files are never overwritten. Run "exgen new" first; the other
generators expect the folders it creates.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupDependencies,
}

// Execute runs the root command with a background context.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command. ctx is handed to every operation
// and cancels a running installer. Errors not already shown by the command
// are printed to stderr.
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// reportedError marks an error whose details the command already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// markReported wraps err so ExecuteContext does not print it again.
func markReported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

func printError(w io.Writer, err error) {
	var reported *reportedError
	if errors.As(err, &reported) {
		return
	}
	_, _ = fmt.Fprintf(w, "%s %v\n", symError(), err)
}

func init() {
	rootCmd.SetVersionTemplate(versionLine())

	pf := rootCmd.PersistentFlags()
	pf.String("dir", "", "Project base directory (default: current directory)")
	pf.String("config", "", "Config file (default: <dir>/.exgen.yaml)")
	pf.Bool("non-interactive", false, "Never prompt; use flags and config defaults")
	pf.Bool("verbose", false, "Enable debug logging on stderr")
}

// versionLine is printed by both "exgen version" and "exgen --version".
func versionLine() string {
	return fmt.Sprintf("exgen %s\n", version.GetVersion())
}

func setupDependencies(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipDepsAnnotation] == "true" {
		return nil
	}
	return InitDependencies(cmd)
}
