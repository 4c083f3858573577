package counter

import (
	"squall/pkg/squall"
	"squall/pkg/squall/core"
)

// Tests returns the example batch in registration order.
func Tests() []core.Test {
	return []core.Test{
		core.NewTest("counter lifecycle", CounterLifecycle),
		core.NewTest("second bump rejected", SecondBumpRejected),
		core.NewTest("negative set rejected", NegativeSetRejected),
	}
}

// CounterLifecycle walks a counter through bump and reset, checking
// every transition.
func CounterLifecycle() bool {
	c := &Counter{}
	squall.FailIf(!c.Bump(), "!c.Bump()")
	squall.SuccessRequires(c.Value() == 1, "c.Value() == 1")
	c.Reset()
	squall.FailIf(c.Value() != 0, "c.Value() != 0")
	return true
}

// SecondBumpRejected checks that only the first bump reports success.
func SecondBumpRejected() bool {
	c := &Counter{}
	squall.SuccessRequires(c.Bump(), "c.Bump()")
	squall.SuccessRequires(!c.Bump(), "!c.Bump()")
	return c.Value() == 2
}

// NegativeSetRejected checks that Set surfaces an invalid argument
// error for values below zero.
func NegativeSetRejected() bool {
	c := &Counter{}
	err := c.Set(-1)
	squall.SuccessRequires(err != nil, "err != nil")
	squall.FailIf(c.Value() != 0, "c.Value() != 0")
	return true
}
