// Package template resolves the parameterized source templates of a
// generated Express project. Rendering is pure: the same kind, variant and
// parameters always produce byte-identical text.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrInvalidParameter indicates a required parameter is missing, empty or unsafe.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrTemplateNotFound indicates the named template is not in the template filesystem.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrNoTemplate indicates the artifact kind is not rendered from a template.
	ErrNoTemplate = errors.New("artifact kind has no template")

	// ErrUnknownKind indicates an artifact kind outside the known set.
	ErrUnknownKind = errors.New("unknown artifact kind")

	// ErrMissingTemplateKey indicates template execution referenced missing data.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates a template placeholder survived rendering.
	ErrUnexpandedToken = errors.New("unexpanded template token")
)
