package manager

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"squall/pkg/squall/core"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuiet(out io.Writer) *Manager {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(Config{Out: out, Log: log})
}

func TestRunAllPassing(t *testing.T) {
	var out bytes.Buffer
	m := newQuiet(&out)

	m.AddFunc("alpha", func() bool { return true })
	m.AddFunc("beta", func() bool { return true })
	m.AddFunc("gamma", func() bool { return true })
	stats := m.Run()

	assert.Equal(t, 3, stats.Total)
	assert.Empty(t, stats.Failed)
	assert.Equal(t, 0, stats.Batch)
	assert.True(t, stats.Passed())

	report := out.String()
	assert.True(t, strings.HasSuffix(report, "All tests (3) passed for batch 0.\n"))

	// Execution order is registration order.
	alpha := strings.Index(report, "\talpha\n")
	beta := strings.Index(report, "\tbeta\n")
	gamma := strings.Index(report, "\tgamma\n")
	require.GreaterOrEqual(t, alpha, 0)
	assert.Less(t, alpha, beta)
	assert.Less(t, beta, gamma)

	_, err := uuid.Parse(stats.RunID)
	assert.NoError(t, err)
}

func TestRunReportsFailuresAscending(t *testing.T) {
	var out bytes.Buffer
	m := newQuiet(&out)

	m.AddFunc("alpha", func() bool { return true })
	m.AddFunc("beta", func() bool { return false })
	m.AddFunc("gamma", func() bool { return true })
	m.AddFunc("delta", func() bool { panic(errors.New("broken pipe")) })
	stats := m.Run()

	assert.Equal(t, []int{1, 3}, stats.Failed)
	assert.False(t, stats.Passed())

	want := "2 out of 4 test(s) failed for batch 0:\n" +
		"Following test(s) failed:\n" +
		"    1 (beta)\n" +
		"    3 (delta)\n" +
		"\n"
	assert.True(t, strings.HasSuffix(out.String(), want))
}

func TestRunEmptyIsNoOp(t *testing.T) {
	var out bytes.Buffer
	m := newQuiet(&out)

	stats := m.Run()

	assert.Equal(t, Stats{}, stats)
	assert.Zero(t, out.Len())
	assert.Equal(t, 0, m.Batch())
}

func TestRunDrainsAndAdvances(t *testing.T) {
	var out bytes.Buffer
	m := newQuiet(&out)

	m.AddFunc("doomed", func() bool { return false })
	first := m.Run()

	assert.False(t, first.Passed())
	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, 1, m.Batch())

	m.AddFunc("fine", func() bool { return true })
	second := m.Run()

	assert.Equal(t, 1, second.Batch)
	assert.True(t, strings.HasSuffix(out.String(), "All tests (1) passed for batch 1.\n"))
	assert.Equal(t, 2, m.Batch())
}

func TestDuplicateRegistrationRunsTwice(t *testing.T) {
	var out bytes.Buffer
	m := newQuiet(&out)

	calls := 0
	tc := core.NewTest("twice", func() bool {
		calls++
		return calls == 1
	})
	m.Add(tc)
	m.Add(tc)
	stats := m.Run()

	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{1}, stats.Failed)
	assert.Contains(t, out.String(), "1 out of 2 test(s) failed for batch 0:")
	assert.Contains(t, out.String(), "    1 (twice)\n")
}

func TestUnnamedTestReported(t *testing.T) {
	var out bytes.Buffer
	m := newQuiet(&out)

	m.AddFunc("", func() bool { return false })
	m.Run()

	assert.Contains(t, out.String(), "\t"+core.UnnamedTest+"\n")
	assert.Contains(t, out.String(), "    0 ("+core.UnnamedTest+")\n")
}

func TestRunIDsDiffer(t *testing.T) {
	m := newQuiet(io.Discard)

	m.AddFunc("one", func() bool { return true })
	first := m.Run()
	m.AddFunc("two", func() bool { return true })
	second := m.Run()

	require.NotEmpty(t, first.RunID)
	require.NotEmpty(t, second.RunID)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestStatsSummary(t *testing.T) {
	assert.Equal(t, "passed: 2; total: 2", Stats{Total: 2}.Summary())
	assert.Equal(t, "failed: 1; passed: 2; total: 3", Stats{Total: 3, Failed: []int{2}}.Summary())
}

func TestStatsExitError(t *testing.T) {
	assert.NoError(t, Stats{Total: 2}.ExitError())

	err := Stats{Total: 5, Batch: 4, Failed: []int{0, 3}}.ExitError()
	require.Error(t, err)
	assert.Equal(t, "batch 4 finished with 2 failed test case(s)", err.Error())
}
