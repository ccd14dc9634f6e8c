package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogger builds the slog logger handed to every component. verbose
// forces debug level with timestamps and caller info.
func newLogger(w io.Writer, verbose bool, level string) *slog.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "exgen",
		ReportTimestamp: verbose,
		ReportCaller:    verbose,
	})
	return slog.New(logger)
}
