package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/internal/template"
	"github.com/exgen-dev/exgen/pkg/models"
)

// ContentResolver produces the content of a file artifact.
// *template.Registry satisfies it.
type ContentResolver interface {
	Resolve(kind models.ArtifactKind, variant models.BackendVariant, params models.Parameters) ([]byte, error)
}

// Engine performs idempotent artifact emission.
type Engine struct {
	resolver ContentResolver
	logger   *slog.Logger
}

// NewEngine creates an Engine resolving file content through resolver.
func NewEngine(resolver ContentResolver, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{resolver: resolver, logger: logger}
}

// Emit creates the requested artifact unless an entry already exists at its
// path. Existing entries are never modified, whatever their content.
func (e *Engine) Emit(ctx context.Context, req Request) Result {
	res := Result{Kind: req.Kind}

	if err := ctx.Err(); err != nil {
		return e.fail(res, err)
	}

	if err := template.ValidateParameters(req.Kind, req.Variant, req.Params); err != nil {
		return e.fail(res, err)
	}

	if err := CheckPreconditions(req.Kind, req.BaseDir); err != nil {
		return e.fail(res, err)
	}

	path, err := PlanPath(req.BaseDir, req.Kind, req.Params)
	if err != nil {
		return e.fail(res, err)
	}
	absBase, err := filepath.Abs(req.BaseDir)
	if err != nil {
		return e.fail(res, fmt.Errorf("resolve base directory: %w", err))
	}
	res.Path = path
	res.Rel = relativeTo(absBase, path)

	_, statErr := os.Lstat(path)
	switch {
	case statErr == nil:
		return e.skip(res)
	case !errors.Is(statErr, fs.ErrNotExist):
		return e.fail(res, fmt.Errorf("inspect %s: %w", res.Rel, statErr))
	}

	if req.Kind.IsFile() {
		err = e.createFile(req, path)
	} else {
		err = createFolder(path)
	}
	switch {
	case errors.Is(err, fs.ErrExist):
		return e.skip(res)
	case err != nil:
		return e.fail(res, err)
	}

	res.Outcome = Created
	e.logger.Debug("artifact created", "kind", req.Kind.String(), "path", path)
	return res
}

func (e *Engine) createFile(req Request, path string) error {
	content, err := e.resolver.Resolve(req.Kind, req.Variant, req.Params)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}

	// O_EXCL turns a concurrent creator into fs.ErrExist instead of a clobber.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defs.FilePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	return nil
}

func createFolder(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}
	return os.Mkdir(path, defs.DirPerm)
}

func (e *Engine) skip(res Result) Result {
	res.Outcome = SkippedAlreadyExists
	e.logger.Debug("artifact exists, skipped", "kind", res.Kind.String(), "path", res.Path)
	return res
}

func (e *Engine) fail(res Result, err error) Result {
	res.Outcome = Failed
	res.Err = err
	e.logger.Debug("artifact failed", "kind", res.Kind.String(), "path", res.Path, "error", err)
	return res
}
