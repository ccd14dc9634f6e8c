package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/exgen-dev/exgen/internal/core/project"
	"github.com/exgen-dev/exgen/internal/core/scaffold"
	"github.com/exgen-dev/exgen/pkg/models"
)

var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}).Bold(true)
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }
func symSkipped() string { return cliMuted.Render("•") }
func symHint() string    { return cliWarn.Render("!") }

// printReport writes one line per artifact result.
func printReport(w io.Writer, report *project.Report) {
	for _, res := range report.Results {
		printResult(w, res)
	}
}

func printResult(w io.Writer, res scaffold.Result) {
	name := res.Name()
	folder := !res.Kind.IsFile()

	switch res.Outcome {
	case scaffold.Created:
		if folder {
			_, _ = fmt.Fprintf(w, "%s Created folder: %s\n", symSuccess(), name)
		} else {
			_, _ = fmt.Fprintf(w, "%s Created file: %s\n", symSuccess(), name)
		}
	case scaffold.SkippedAlreadyExists:
		if folder {
			_, _ = fmt.Fprintf(w, "%s Folder %s already exists\n", symSkipped(), name)
		} else {
			_, _ = fmt.Fprintf(w, "%s %s already exists\n", symSkipped(), name)
		}
	case scaffold.Failed:
		_, _ = fmt.Fprintf(w, "%s %s: %v\n", symError(), name, res.Err)
		printFailureHint(w, res.Err)
	}
}

// printFailureHint suggests the next command for recoverable failures.
func printFailureHint(w io.Writer, err error) {
	var mde *scaffold.MissingDependencyError
	if errors.As(err, &mde) {
		_, _ = fmt.Fprintf(w, "  %s run %s first to create the %s/ folder\n",
			symHint(), cliPrimary.Render("exgen new"), mde.Folder)
	}
}

// printPlaceholderHint explains a skipped server when index.js is the empty
// placeholder written by "exgen new".
func printPlaceholderHint(w io.Writer, report *project.Report) {
	for _, res := range report.Skipped() {
		if res.Kind != models.BootstrapFile {
			continue
		}
		info, err := os.Stat(res.Path)
		if err != nil || info.Size() != 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s %s is the empty placeholder from %s; delete it and run %s again\n",
			symHint(), res.Name(), cliPrimary.Render("exgen new"), cliPrimary.Render("exgen server"))
	}
}

// printSummary writes the created/skipped/failed counts.
func printSummary(w io.Writer, report *project.Report) {
	_, _ = fmt.Fprintf(w, "\n%s\n", cliMuted.Render(fmt.Sprintf("%d created, %d skipped, %d failed",
		len(report.Created()), len(report.Skipped()), len(report.Failed()))))
}
