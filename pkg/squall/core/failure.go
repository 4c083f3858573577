package core

import (
	"fmt"
	"runtime"
)

// Location identifies the source position where a check ran.
type Location struct {
	File string
	Line int
}

// Here captures the caller's source location. skip follows the
// runtime.Caller convention: 0 names the caller of Here itself.
func Here(skip int) *Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}
	return &Location{File: file, Line: line}
}

// ConditionFailure marks one checked condition that did not hold. Check
// helpers panic with it and the launcher recovers it; it never escapes
// a single test's execution.
type ConditionFailure struct {
	// Condition is the source text of the checked expression, empty when
	// the caller did not provide it.
	Condition string

	// Expected is the truth value the condition should have evaluated to.
	Expected bool

	// Location is the capture site, nil when unknown. File and Line are
	// each optional on their own; reporting resolves absent fields to
	// placeholders.
	Location *Location
}

func (f *ConditionFailure) Error() string {
	return fmt.Sprintf("assertion %q should have been %t but was %t", f.Condition, f.Expected, !f.Expected)
}
