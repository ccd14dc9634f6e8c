package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/exgen-dev/exgen/internal/core/project"
	"github.com/exgen-dev/exgen/internal/core/scaffold"
	"github.com/exgen-dev/exgen/pkg/models"
)

func TestPrintResult(t *testing.T) {
	tests := []struct {
		name string
		res  scaffold.Result
		want string
	}{
		{"folder_created", scaffold.Result{Kind: models.StructureFolder, Rel: "routes", Outcome: scaffold.Created}, "Created folder: routes"},
		{"folder_skipped", scaffold.Result{Kind: models.StructureFolder, Rel: "routes", Outcome: scaffold.SkippedAlreadyExists}, "Folder routes already exists"},
		{"file_created", scaffold.Result{Kind: models.BootstrapFile, Rel: "index.js", Outcome: scaffold.Created}, "Created file: index.js"},
		{"file_skipped", scaffold.Result{Kind: models.BootstrapFile, Rel: "index.js", Outcome: scaffold.SkippedAlreadyExists}, "index.js already exists"},
		{"failed", scaffold.Result{Kind: models.ModelFile, Outcome: scaffold.Failed, Err: errors.New("disk full")}, "model-file: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printResult(&buf, tt.res)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrintFailureHint(t *testing.T) {
	var buf bytes.Buffer
	printFailureHint(&buf, &scaffold.MissingDependencyError{Folder: "models", BaseDir: "/tmp/app"})

	if !strings.Contains(buf.String(), "exgen new") || !strings.Contains(buf.String(), "models/") {
		t.Errorf("hint = %q", buf.String())
	}
}

func TestPrintPlaceholderHint(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "index.js")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	edited := filepath.Join(dir, "edited.js")
	if err := os.WriteFile(edited, []byte("// mine"), 0o644); err != nil {
		t.Fatal(err)
	}

	report := &project.Report{Results: []scaffold.Result{
		{Kind: models.BootstrapFile, Path: empty, Rel: "index.js", Outcome: scaffold.SkippedAlreadyExists},
	}}
	var buf bytes.Buffer
	printPlaceholderHint(&buf, report)
	if !strings.Contains(buf.String(), "empty placeholder") {
		t.Errorf("hint missing for empty index.js: %q", buf.String())
	}

	report.Results[0].Path = edited
	buf.Reset()
	printPlaceholderHint(&buf, report)
	if buf.Len() != 0 {
		t.Errorf("hint printed for edited file: %q", buf.String())
	}
}
