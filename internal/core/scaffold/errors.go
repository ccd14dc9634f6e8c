// Package scaffold plans, checks and performs the idempotent emission of
// generated project artifacts. All filesystem mutation of a scaffold
// operation happens in Engine.Emit.
package scaffold

import (
	"errors"
	"fmt"
)

// Sentinel errors for the scaffold package.
var (
	// ErrMissingDependency indicates a folder required by the artifact does not exist.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrPathTraversal indicates a planned path escapes the base directory.
	ErrPathTraversal = errors.New("path traversal detected")
)

// MissingDependencyError reports the structural folder an artifact needs.
type MissingDependencyError struct {
	Folder  string
	BaseDir string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s: folder %q does not exist in %s", ErrMissingDependency, e.Folder, e.BaseDir)
}

// Unwrap lets errors.Is match ErrMissingDependency.
func (e *MissingDependencyError) Unwrap() error {
	return ErrMissingDependency
}
