package launch

import "fmt"

// PanicError preserves a value recovered from a test body together with
// the stack captured at the recovery point, for debug logging.
type PanicError struct {
	any
	Stack []byte
}

func NewPanicError(value any, stack []byte) *PanicError {
	return &PanicError{
		any:   value,
		Stack: stack,
	}
}

func (pe *PanicError) Error() string {
	return fmt.Sprintf("panic occurred: %v", pe.any)
}
