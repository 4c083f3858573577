package report

import (
	"fmt"
	"strconv"
	"strings"

	"squall/pkg/squall/core"
)

// Placeholder strings substituted for absent diagnostic fields at print
// time.
const (
	UnspecifiedCondition = "<Unspecified condition literal>"
	UnspecifiedFile      = "<Unspecified file>"
	UnspecifiedLine      = "<Unspecified line>"
)

const headerRule = "------------------------------------------------------"

// Header returns the block announcing a test before its body runs.
func Header(name string) string {
	return fmt.Sprintf("%s\n\t%s\n%s\n", headerRule, name, headerRule)
}

// Outcome returns the single line diagnostic for a body that returned
// normally.
func Outcome(passed bool) string {
	if passed {
		return "Test succeeded.\n"
	}
	return "Test failed.\n"
}

// ConditionFailure renders the diagnostic block for a failed check.
// Absent fields resolve to their placeholders here, never earlier.
func ConditionFailure(f *core.ConditionFailure) string {
	cond := f.Condition
	if cond == "" {
		cond = UnspecifiedCondition
	}
	file, line := locationStrings(f.Location)

	var b strings.Builder
	fmt.Fprintf(&b, "Test failed:     Assertion %s should have been %t but was %t.\n", cond, f.Expected, !f.Expected)
	fmt.Fprintf(&b, "    File: %s\n", file)
	fmt.Fprintf(&b, "    Line: %s\n", line)
	return b.String()
}

// CategorizedFailure renders the diagnostic for an error recovered from
// a test body, labeled with its classification.
func CategorizedFailure(category, message string) string {
	return fmt.Sprintf("Test failed (%s): %s\n", category, message)
}

// UnknownFailure renders the diagnostic for a recovered value that
// carries no usable message.
func UnknownFailure() string {
	return "Test failed (unknown error).\n"
}

func locationStrings(loc *core.Location) (file, line string) {
	file = UnspecifiedFile
	line = UnspecifiedLine
	if loc == nil {
		return file, line
	}

	if loc.File != "" {
		file = loc.File
	}
	if loc.Line > 0 {
		line = strconv.Itoa(loc.Line)
	}
	return file, line
}
