package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exgen-dev/exgen/internal/config"
	"github.com/exgen-dev/exgen/internal/template"
	"github.com/exgen-dev/exgen/pkg/models"
	"github.com/exgen-dev/exgen/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the exgen version",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipDepsAnnotation: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), versionLine())
		if getBoolFlag(cmd, "verbose") {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersion())
		}
		return nil
	},
}

var templatesCmd = &cobra.Command{
	Use:         "templates",
	Short:       "List the built-in templates",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipDepsAnnotation: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := template.NewDefaultRegistry()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "%-18s %-9s %s\n", "KIND", "BACKEND", "TEMPLATE")
		for _, e := range reg.List() {
			backend := e.Variant.String()
			if e.Variant == models.NoVariant {
				backend = "-"
			}
			_, _ = fmt.Fprintf(out, "%-18s %-9s %s\n", e.Kind, backend, e.Template)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.Marshal(deps.Config)
		if err != nil {
			return err
		}
		source := deps.ConfigFile
		if source == "" {
			source = "built-in defaults and environment"
		}
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "# source: %s\n", source)
		_, _ = out.Write(data)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd, templatesCmd, configCmd)
}
