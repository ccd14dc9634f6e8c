package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/internal/ui"
)

var packageCmd = &cobra.Command{
	Use:     "package",
	Aliases: []string{"install"},
	Short:   "Install express, cors, mysql2, sequelize and mongoose",
	Long: `Install the npm packages the generated code requires, by default with
"npm install" in the base directory. The command can be changed with
installer.command and installer.args in .exgen.yaml.`,
	Args: cobra.NoArgs,
	RunE: runPackage,
}

func init() {
	rootCmd.AddCommand(packageCmd)
}

func runPackage(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	packages := defs.NodePackages()

	sp := ui.NewSpinner(deps.Theme, deps.Headless, out,
		"Running "+deps.Installer.CommandLine(packages))
	report, err := deps.Service.InstallDependencies(cmd.Context(), deps.BaseDir)
	sp.Stop()

	if output := strings.TrimSpace(report.Output); output != "" {
		_, _ = fmt.Fprintln(out, output)
	}
	if err != nil {
		_, _ = fmt.Fprintf(out, "%s %v\n", symError(), err)
		return markReported(err)
	}
	_, _ = fmt.Fprintf(out, "%s Installed: %s\n", symSuccess(), strings.Join(packages, ", "))
	return nil
}
