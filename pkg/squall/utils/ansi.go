package utils

import (
	"regexp"
)

// ANSI escape code cleaner
var ANSI_CLEANER = regexp.MustCompile(`(\x9B|\x1B\[)[0-?]*[ -\/]*[@-~]`)

// StripANSI removes ANSI escape sequences from s. Pipeline annotations
// and log assertions need the plain text.
func StripANSI(s string) string {
	return ANSI_CLEANER.ReplaceAllString(s, "")
}
