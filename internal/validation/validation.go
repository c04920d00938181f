// Package validation collects entity validation failures in either
// fail-fast or gather-all mode.
//
// A Report is created per Validate call. Entities add their own failures and
// merge what their children return; aggregates are flattened so the order of
// failures is the traversal order of the subtree, whatever the nesting.
package validation

import (
	"github.com/FocuswithJustin/xliffkit/core/errors"
)

// Mode selects how many failures a Report keeps.
type Mode int

const (
	// FailFast stops at the first failure.
	FailFast Mode = iota
	// GatherAll keeps every failure.
	GatherAll
)

// ModeFor maps the gatherAll flag of Validate to a Mode.
func ModeFor(gatherAll bool) Mode {
	if gatherAll {
		return GatherAll
	}
	return FailFast
}

// Report accumulates failures for one validation pass.
type Report struct {
	mode  Mode
	errs  errors.ValidationErrors
	fatal error
}

// New creates an empty report.
func New(mode Mode) *Report {
	return &Report{mode: mode}
}

// Mode returns the report mode.
func (r *Report) Mode() Mode { return r.mode }

// Add records a failure and reports whether the caller should stop.
func (r *Report) Add(err *errors.ValidationError) bool {
	if err == nil {
		return r.Stopped()
	}
	if r.Stopped() {
		return true
	}
	r.errs = append(r.errs, err)
	return r.Stopped()
}

// Merge folds a child's Validate result into the report. Errors that are not
// validation failures stop the report and are returned unchanged by Err.
func (r *Report) Merge(err error) bool {
	if err == nil || r.Stopped() {
		return r.Stopped()
	}
	merged, rest := errors.ValidationErrors(nil).Merge(err)
	if rest != nil {
		r.fatal = rest
		return true
	}
	for _, e := range merged {
		if r.Add(e) {
			return true
		}
	}
	return false
}

// Stopped reports whether no further failures will be recorded.
func (r *Report) Stopped() bool {
	if r.fatal != nil {
		return true
	}
	return r.mode == FailFast && len(r.errs) > 0
}

// Len returns the number of recorded failures.
func (r *Report) Len() int { return len(r.errs) }

// Errors returns the recorded failures in order.
func (r *Report) Errors() errors.ValidationErrors { return r.errs }

// Err returns nil when nothing failed. In fail-fast mode it returns the
// single *errors.ValidationError; in gather-all mode it returns the full
// errors.ValidationErrors aggregate.
func (r *Report) Err() error {
	if r.fatal != nil {
		return r.fatal
	}
	if len(r.errs) == 0 {
		return nil
	}
	if r.mode == FailFast {
		return r.errs[0]
	}
	return r.errs
}
