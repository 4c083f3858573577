package core

import (
	"reflect"
	"runtime"
	"strings"
)

// UnnamedTest is the display label used for tests registered without a name.
const UnnamedTest = "<Unnamed test>"

// TestFunc is a test body. The return value reports whether the test passed.
type TestFunc = func() bool

// Test is one registered unit test. Tests are built by NewTest or the
// registration helpers and are immutable once registered.
type Test struct {
	// Fn is the body to execute.
	Fn TestFunc

	// Name is the display label. Empty means unnamed; reporting resolves
	// it to UnnamedTest.
	Name string
}

// NewTest pairs a body with its display name.
func NewTest(name string, fn TestFunc) Test {
	return Test{Fn: fn, Name: name}
}

// DisplayName returns the label to report the test under.
func (t Test) DisplayName() string {
	if t.Name == "" {
		return UnnamedTest
	}
	return t.Name
}

// FuncName derives a display name from the symbol of fn, trimmed of its
// package path. Returns "" when the symbol cannot be resolved.
func FuncName(fn TestFunc) string {
	if fn == nil {
		return ""
	}
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return ""
	}

	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
