package report

import (
	"github.com/fatih/color"
)

// Status classifies one executed test for log lines. The report sink
// text never carries it; it exists for the logger and the CLI result
// line.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
)

// StatusOf converts a launch outcome into a Status.
func StatusOf(passed bool) Status {
	if passed {
		return StatusPassed
	}
	return StatusFailed
}

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "PASSED"
	case StatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) StringColor() string {
	switch s {
	case StatusPassed:
		return color.GreenString(s.String())
	case StatusFailed:
		return color.RedString(s.String())
	default:
		return s.String()
	}
}

func (s Status) IsBad() bool {
	return s == StatusFailed
}
