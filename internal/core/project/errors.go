// Package project implements the user-invocable scaffold operations of an
// Express project: structure initialization, server bootstrap, route and
// model stubs, and dependency installation.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInstallerFailure indicates the dependency installer reported a failure.
	ErrInstallerFailure = errors.New("dependency installation failed")

	// ErrChoices indicates the choice provider could not supply an answer.
	ErrChoices = errors.New("collect choices")
)
