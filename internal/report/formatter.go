package report

import (
	"fmt"
	"strings"

	"golang.org/x/term"
)

const SEPARATOR_CHAR = "-"

// Returns the width of the terminal. If it cannot be determined, it returns
// a default value of 80.
func termWidth() int {
	width, _, err := term.GetSize(0)
	if err != nil {
		return 80
	}
	return width
}

// Prints a separator line to the console.
func PrintSeparator() {
	fmt.Printf("%s\n", strings.Repeat(SEPARATOR_CHAR, termWidth()))
}

// Prints the closing result line for a finished batch run.
//
// Example:
//
//	RUN RESULT: FAILED. 3 total; 1 failed; 2 passed; batch 0
func PrintResultLine(total, failed, batch int) {
	fmt.Printf("RUN RESULT: %s. %d total; %d failed; %d passed; batch %d\n",
		StatusOf(failed == 0).StringColor(),
		total,
		failed,
		total-failed,
		batch,
	)
}
