package project

import (
	"errors"
	"fmt"

	"github.com/exgen-dev/exgen/internal/core/scaffold"
)

// Report collects the per-artifact results of one operation.
type Report struct {
	Operation string
	Results   []scaffold.Result
	Output    string // Installer output, InstallDependencies only.
}

func newReport(op string) *Report {
	return &Report{Operation: op}
}

func (r *Report) add(res scaffold.Result) {
	r.Results = append(r.Results, res)
}

// Created returns the results whose artifact was written.
func (r *Report) Created() []scaffold.Result {
	return r.filter(scaffold.Created)
}

// Skipped returns the results whose artifact already existed.
func (r *Report) Skipped() []scaffold.Result {
	return r.filter(scaffold.SkippedAlreadyExists)
}

// Failed returns the results that could not be written.
func (r *Report) Failed() []scaffold.Result {
	return r.filter(scaffold.Failed)
}

// Err joins the errors of all failed results, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", res.Name(), res.Err))
	}
	return errors.Join(errs...)
}

func (r *Report) filter(o scaffold.Outcome) []scaffold.Result {
	var out []scaffold.Result
	for _, res := range r.Results {
		if res.Outcome == o {
			out = append(out, res)
		}
	}
	return out
}
