package installer

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunnerInstall(t *testing.T) {
	requireShell(t)

	t.Run("success_returns_stdout", func(t *testing.T) {
		// sh -c 'script' name pkg...: packages land in $@.
		r := NewRunner("sh", []string{"-c", `echo "installed $*"`, "npm"}, nil)

		out, err := r.Install(context.Background(), t.TempDir(), []string{"express", "cors"})
		if err != nil {
			t.Fatalf("Install error: %v", err)
		}
		if strings.TrimSpace(out) != "installed express cors" {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("runs_in_dir", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
		r := NewRunner("sh", []string{"-c", "test -f package.json && echo found"}, nil)

		out, err := r.Install(context.Background(), dir, nil)
		if err != nil {
			t.Fatalf("Install error: %v", err)
		}
		if strings.TrimSpace(out) != "found" {
			t.Errorf("output = %q, want command to run in %s", out, dir)
		}
	})

	t.Run("failure_uses_stderr", func(t *testing.T) {
		r := NewRunner("sh", []string{"-c", "echo '  npm ERR! 404 not found  ' >&2; exit 1"}, nil)

		_, err := r.Install(context.Background(), t.TempDir(), []string{"nope"})
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "npm ERR! 404 not found" {
			t.Errorf("error = %q, want trimmed stderr", err.Error())
		}
	})

	t.Run("failure_without_stderr", func(t *testing.T) {
		r := NewRunner("sh", []string{"-c", "exit 3"}, nil)

		res, err := r.Run(context.Background(), t.TempDir(), nil)
		if err == nil {
			t.Fatal("expected error")
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Errorf("error = %T %v, want *exec.ExitError", err, err)
		}
		if res.ExitCode != 3 {
			t.Errorf("ExitCode = %d, want 3", res.ExitCode)
		}
	})
}

func TestRunnerCommandNotFound(t *testing.T) {
	r := NewRunner("exgen-no-such-installer", nil, nil)

	_, err := r.Install(context.Background(), t.TempDir(), []string{"express"})
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("error = %v, want exec.ErrNotFound", err)
	}
}

func TestRunnerCommandLine(t *testing.T) {
	r := NewRunner(DefaultCommand, []string{DefaultArg}, nil)

	got := r.CommandLine([]string{"express", "cors"})
	if got != "npm install express cors" {
		t.Errorf("CommandLine = %q", got)
	}
}

func TestRunnerEmptyCommand(t *testing.T) {
	for _, command := range []string{"", "  "} {
		r := NewRunner(command, []string{"install"}, nil)

		_, err := r.Install(context.Background(), t.TempDir(), []string{"express"})
		if !errors.Is(err, ErrEmptyCommand) {
			t.Errorf("Install with command %q error = %v, want ErrEmptyCommand", command, err)
		}
	}
}
