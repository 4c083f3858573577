// Package squall is a minimal in-process unit testing harness: tests
// are plain func() bool bodies collected into batches, executed
// sequentially, and reported as plain text on a report sink.
package squall

import (
	"squall/pkg/squall/core"
	"squall/pkg/squall/manager"
)

type Test = core.Test
type TestFunc = core.TestFunc
type ConditionFailure = core.ConditionFailure
type Location = core.Location

type Manager = manager.Manager
type Config = manager.Config
type Stats = manager.Stats

// NewManager creates a standalone manager with the given configuration.
func NewManager(cfg Config) *Manager {
	return manager.New(cfg)
}

// The process wide default manager, used by Register, Run and Flush.
var defaultManager = manager.New(manager.Config{})

// Default returns the process wide manager.
func Default() *Manager {
	return defaultManager
}

// Register adds a named test to the default manager's current batch.
func Register(name string, fn TestFunc) {
	defaultManager.AddFunc(name, fn)
}

// RegisterFunc adds fn to the default manager under a name derived from
// its symbol.
func RegisterFunc(fn TestFunc) {
	defaultManager.AddFunc(core.FuncName(fn), fn)
}

// Run executes the default manager's pending batch.
func Run() Stats {
	return defaultManager.Run()
}

// Flush runs the default manager only when tests are still pending.
// Defer it from main so that registered tests are never silently
// dropped at process end:
//
//	func main() {
//		defer squall.Flush()
//		...
//	}
func Flush() Stats {
	if defaultManager.Pending() == 0 {
		return Stats{}
	}
	return defaultManager.Run()
}
