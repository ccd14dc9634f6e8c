package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/exgen-dev/exgen/pkg/models"
)

// Request asks the engine to emit one artifact. Build it with NewRequest.
type Request struct {
	Kind    models.ArtifactKind
	Variant models.BackendVariant
	BaseDir string
	Params  models.Parameters
}

// NewRequest returns a Request owning a private copy of params.
func NewRequest(kind models.ArtifactKind, variant models.BackendVariant, baseDir string, params models.Parameters) Request {
	return Request{
		Kind:    kind,
		Variant: variant,
		BaseDir: baseDir,
		Params:  params.Clone(),
	}
}

// Outcome is the result state of one emission.
type Outcome int

const (
	// Created means the artifact did not exist and was written.
	Created Outcome = iota
	// SkippedAlreadyExists means an entry was already present and left untouched.
	SkippedAlreadyExists
	// Failed means the artifact was not written; Result.Err holds the reason.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case SkippedAlreadyExists:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result reports what happened to one artifact.
type Result struct {
	Kind    models.ArtifactKind
	Path    string // Absolute target path. Empty when planning never happened.
	Rel     string // Path relative to the base directory, slash separated.
	Outcome Outcome
	Err     error // Set only when Outcome is Failed.
}

// Name returns the most specific printable name of the artifact.
func (r Result) Name() string {
	if r.Rel != "" {
		return r.Rel
	}
	return r.Kind.String()
}

func relativeTo(baseDir, path string) string {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
