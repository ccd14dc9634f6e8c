package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		level     string
		wantInfo  bool
		wantDebug bool
	}{
		{"default_warn", false, "warn", false, false},
		{"config_info", false, "info", true, false},
		{"config_debug", false, "debug", true, true},
		{"verbose_overrides", true, "error", true, true},
		{"unparsable_level", false, "loud", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.verbose, tt.level)

			logger.Info("info line")
			logger.Debug("debug line")

			out := buf.String()
			if got := strings.Contains(out, "info line"); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v\n%s", got, tt.wantInfo, out)
			}
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v\n%s", got, tt.wantDebug, out)
			}
		})
	}
}
