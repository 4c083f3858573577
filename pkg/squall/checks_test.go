package squall

import (
	"strings"
	"testing"

	"squall/pkg/squall/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, f func()) *core.ConditionFailure {
	t.Helper()

	var failure *core.ConditionFailure
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a condition failure")
			var ok bool
			failure, ok = r.(*core.ConditionFailure)
			require.True(t, ok, "expected *core.ConditionFailure, got %T", r)
		}()
		f()
	}()

	return failure
}

func TestFailIf(t *testing.T) {
	assert.NotPanics(t, func() { FailIf(false, "never") })

	failure := capture(t, func() { FailIf(true, "c.Value() != 0") })
	assert.Equal(t, "c.Value() != 0", failure.Condition)
	assert.False(t, failure.Expected)
	require.NotNil(t, failure.Location)
	assert.True(t, strings.HasSuffix(failure.Location.File, "checks_test.go"))
	assert.Greater(t, failure.Location.Line, 0)
}

func TestSuccessRequires(t *testing.T) {
	assert.NotPanics(t, func() { SuccessRequires(true, "fine") })

	failure := capture(t, func() { SuccessRequires(false, "c.Value() == 1") })
	assert.Equal(t, "c.Value() == 1", failure.Condition)
	assert.True(t, failure.Expected)
	require.NotNil(t, failure.Location)
	assert.True(t, strings.HasSuffix(failure.Location.File, "checks_test.go"))
}

func TestCheckWithoutConditionText(t *testing.T) {
	failure := capture(t, func() { FailIf(true, "") })
	assert.Empty(t, failure.Condition)
	require.NotNil(t, failure.Location)
}
