package devops

import (
	"fmt"
	"io"
	"os"

	"squall/pkg/squall/utils"
)

// Annotations go to stdout; the pipeline agent scans it for directives.
// Swapped out in tests.
var out io.Writer = os.Stdout

// LogError emits an Azure DevOps error annotation. The message is
// stripped of ANSI sequences; colored text breaks the pipeline summary
// view.
func LogError(msg string, a ...any) {
	fmt.Fprintf(out, "##vso[task.logissue type=error]%s\n", utils.StripANSI(fmt.Sprintf(msg, a...)))
}

// LogWarning emits an Azure DevOps warning annotation.
func LogWarning(msg string, a ...any) {
	fmt.Fprintf(out, "##vso[task.logissue type=warning]%s\n", utils.StripANSI(fmt.Sprintf(msg, a...)))
}
