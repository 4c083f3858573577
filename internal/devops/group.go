package devops

import "fmt"

// OpenGroup starts a collapsible section in the pipeline log view.
// Azure DevOps does not nest groups, so squall opens at most one around
// a batch report.
func OpenGroup(name string) {
	fmt.Fprintf(out, "##[group]%s\n", name)
}

// CloseGroup ends the current section.
func CloseGroup() {
	fmt.Fprintln(out, "##[endgroup]")
}
