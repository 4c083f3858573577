package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFilterEmptyMatchesAny(t *testing.T) {
	f := NewNameFilter(nil)
	assert.True(t, f.Match("anything"))
}

func TestNameFilterPinnedEmptyMatchesNothing(t *testing.T) {
	f := NewNameFilter(nil)
	f.Pin()
	assert.False(t, f.Match("anything"))
}

func TestNameFilterSelection(t *testing.T) {
	f := NewNameFilter([]string{"alpha", "beta"})
	assert.True(t, f.Match("alpha"))
	assert.True(t, f.Match("beta"))
	assert.False(t, f.Match("gamma"))
}

func TestNameFilterTrimsWhitespace(t *testing.T) {
	f := NewNameFilter([]string{" counter lifecycle "})
	assert.True(t, f.Match("counter lifecycle"))
	assert.True(t, f.Match("counter lifecycle "))
	assert.False(t, f.Match(""))
}

func TestNameFilterBlankEntriesAreNoSelection(t *testing.T) {
	f := NewNameFilter([]string{"  ", ""})
	assert.True(t, f.Match("anything"))

	f.Pin()
	assert.False(t, f.Match("anything"))
}
