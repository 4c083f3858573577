package report

import (
	"fmt"
	"strings"
)

// Failure pairs a failed test's position in its batch with its display
// name.
type Failure struct {
	Index int
	Name  string
}

// BatchSummary renders the end of run report for a non empty batch.
func BatchSummary(total, batch int, failures []Failure) string {
	if len(failures) == 0 {
		return fmt.Sprintf("All tests (%d) passed for batch %d.\n", total, batch)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d out of %d test(s) failed for batch %d:\n", len(failures), total, batch)
	b.WriteString("Following test(s) failed:\n")
	for _, f := range failures {
		fmt.Fprintf(&b, "    %d (%s)\n", f.Index, f.Name)
	}
	b.WriteString("\n")
	return b.String()
}
