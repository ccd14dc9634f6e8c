package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/exgen-dev/exgen/internal/cli/wizard"
	"github.com/exgen-dev/exgen/internal/core/project"
	"github.com/exgen-dev/exgen/internal/ui"
)

const nextStepsMarkdown = `## Next steps

1. Generate the server entry point: delete the empty ` + "`index.js`" + ` and run ` + "`exgen server`" + `
2. Add the route aggregator: ` + "`exgen route-s`" + `
3. Add a model: ` + "`exgen model-s --db mongodb --name User`" + `
4. Install dependencies: ` + "`exgen package`" + `
`

var newCmd = &cobra.Command{
	Use:     "new",
	Aliases: []string{"init"},
	Short:   "Create the project folders and an empty index.js",
	Long: `Create controllers/, routes/, models/, services/ and middleware/
plus an empty index.js in the base directory. Existing entries are kept.`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Generate index.js with Express and a database connection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runOperation(cmd, deps.Service.GenerateServer)
	},
}

var routeCmd = &cobra.Command{
	Use:     "route-s",
	Aliases: []string{"route"},
	Short:   "Generate routes/app.js (requires routes/)",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runOperation(cmd, deps.Service.GenerateRouteStub)
	},
}

var modelCmd = &cobra.Command{
	Use:     "model-s",
	Aliases: []string{"model"},
	Short:   "Generate models/<Entity>.js (requires models/)",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runOperation(cmd, deps.Service.GenerateModelStub)
	},
}

func init() {
	rootCmd.AddCommand(newCmd, serverCmd, routeCmd, modelCmd)

	serverCmd.Flags().String("db", "", "Database: mongodb or mysql")
	modelCmd.Flags().String("db", "", "Database: mongodb or mysql")
	modelCmd.Flags().String("name", "", "Entity name, e.g. User")
}

type operation func(ctx context.Context, baseDir string) (*project.Report, error)

// runOperation runs op, prints its report and maps a user abort to success.
func runOperation(cmd *cobra.Command, op operation) error {
	out := cmd.OutOrStdout()

	report, err := op(cmd.Context(), deps.BaseDir)
	if report != nil {
		printReport(out, report)
		printPlaceholderHint(out, report)
		if len(report.Failed()) > 0 {
			err = markReported(err)
		}
	}
	return handleOperationError(out, err)
}

func handleOperationError(out io.Writer, err error) error {
	if errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(out, "cancelled")
		return nil
	}
	return err
}

func runNew(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	report, err := deps.Service.InitializeStructure(cmd.Context(), deps.BaseDir)
	printReport(out, report)
	printSummary(out, report)
	if err != nil {
		return markReported(err)
	}

	guide, rerr := ui.RenderMarkdown(nextStepsMarkdown, deps.Headless.IsHeadless())
	if rerr != nil {
		deps.Logger.Debug("render next steps", "error", rerr)
		guide = nextStepsMarkdown
	}
	_, _ = fmt.Fprint(out, guide)
	return nil
}
