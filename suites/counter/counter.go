// Package counter implements the example test table used by the
// squall-counter demo: a deliberately stateful object whose behavior
// changes between invocations.
package counter

import "squall/pkg/squall/core"

// Counter is the code under test. Bump succeeds only on the 0 to 1
// transition.
type Counter struct {
	value int
}

// Bump increments the counter and reports whether it moved from 0 to 1.
func (c *Counter) Bump() bool {
	c.value++
	return c.value == 1
}

// Reset returns the counter to 0.
func (c *Counter) Reset() {
	c.value = 0
}

// Value returns the current count.
func (c *Counter) Value() int {
	return c.value
}

// Set forces the counter to v. Negative values are rejected.
func (c *Counter) Set(v int) error {
	if v < 0 {
		return core.NewInvalidArgumentf("counter value must not be negative, got %d", v)
	}
	c.value = v
	return nil
}
