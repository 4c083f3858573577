package squall

import (
	"fmt"
	"io"
	"os"

	"squall/internal/report"
	"squall/pkg/squall/core"
)

// Swapped out when exercising the termination contract.
var (
	fatalOut io.Writer = os.Stderr
	exitFunc           = os.Exit
)

// FatalAssert terminates the process with exit code 1 when cond is
// false, after writing a diagnostic block to the standard error stream.
// It is an invariant check for conditions that must be structurally
// impossible, independent of the test reporting mechanism, and usable
// anywhere in the process, not just inside tests. condText and message
// may be empty; the call site is captured automatically.
func FatalAssert(cond bool, condText, message string) {
	if cond {
		return
	}

	fmt.Fprint(fatalOut, report.FatalBlock(condText, message, core.Here(1)))
	exitFunc(1)
}
