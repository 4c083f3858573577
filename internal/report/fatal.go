package report

import (
	"fmt"
	"strings"

	"squall/pkg/squall/core"
)

// Placeholder strings for absent fatal assertion fields.
const (
	NoConditionLiteral = "<No condition literal specified>"
	NoErrorMessage     = "<No error message specified>"
)

// FatalBlock renders the diagnostic written right before the process
// terminates on a failed fatal assertion.
func FatalBlock(condText, message string, loc *core.Location) string {
	if condText == "" {
		condText = NoConditionLiteral
	}
	if message == "" {
		message = NoErrorMessage
	}
	file, line := locationStrings(loc)

	var b strings.Builder
	fmt.Fprintf(&b, "Assertion %s failed.\n", condText)
	fmt.Fprintf(&b, "    Message: %s\n", message)
	fmt.Fprintf(&b, "    File: %s\n", file)
	fmt.Fprintf(&b, "    Line: %s\n", line)
	return b.String()
}
