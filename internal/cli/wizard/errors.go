// Package wizard collects scaffold choices from the user, either through
// interactive huh forms or from preset answers in headless mode.
package wizard

import "errors"

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels a form.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrMissingAnswer is returned when a required question has no answer
	// and the provider cannot prompt.
	ErrMissingAnswer = errors.New("missing answer")
	// ErrInvalidAnswer is returned when a preset answer fails validation.
	ErrInvalidAnswer = errors.New("invalid answer")
)
