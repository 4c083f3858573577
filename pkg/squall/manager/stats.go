package manager

import (
	"fmt"
	"strings"
	"time"
)

// Stats aggregates the outcome of one Run. The zero value is what an
// empty run returns.
type Stats struct {
	// Total is the number of executed tests.
	Total int

	// Failed holds the batch positions of failed tests, in ascending
	// order.
	Failed []int

	// Batch is the index the run reported under.
	Batch int

	// RunID correlates the run's log lines.
	RunID string

	// Duration is the wall clock time of the whole run.
	Duration time.Duration
}

// Passed reports whether every executed test passed. True for an empty
// run.
func (s Stats) Passed() bool {
	return len(s.Failed) == 0
}

// Summary returns a short status line, e.g. "failed: 1; passed: 2; total: 3".
func (s Stats) Summary() string {
	var out []string

	if len(s.Failed) > 0 {
		out = append(out, fmt.Sprintf("failed: %d", len(s.Failed)))
	}

	out = append(out, fmt.Sprintf("passed: %d", s.Total-len(s.Failed)))
	out = append(out, fmt.Sprintf("total: %d", s.Total))

	return strings.Join(out, "; ")
}

// ExitError converts a failed run into an error for a command exit
// path. Returns nil when everything passed.
func (s Stats) ExitError() error {
	if s.Passed() {
		return nil
	}

	return fmt.Errorf("batch %d finished with %d failed test case(s)", s.Batch, len(s.Failed))
}
