package core

import "fmt"

// InvalidArgumentError reports an input value rejected by code under
// test. The launcher classifies it separately from other errors.
type InvalidArgumentError struct {
	Msg string
}

// NewInvalidArgumentf builds an InvalidArgumentError from a format string.
func NewInvalidArgumentf(format string, a ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Msg: fmt.Sprintf(format, a...)}
}

func (e *InvalidArgumentError) Error() string {
	return e.Msg
}
