package manager

import (
	"fmt"
	"time"

	"squall/internal/launch"
	"squall/internal/report"

	"github.com/google/uuid"
)

// Run executes every pending test in registration order, writes the
// batch summary to the report sink, drains the batch and advances the
// batch counter. A run with no pending tests is a no-op: no output, no
// counter change. Run never fails; every per test error is absorbed by
// the launcher.
func (m *Manager) Run() Stats {
	if len(m.pending) == 0 {
		m.log.Debug("No tests pending, skipping run")
		return Stats{}
	}

	stats := Stats{
		Total: len(m.pending),
		Batch: m.batch,
		RunID: uuid.New().String(),
	}
	start := time.Now()

	log := m.log.WithField("run_id", stats.RunID)
	log.Infof("Running batch %d - %d test(s) collected.", stats.Batch, stats.Total)

	var failures []report.Failure
	for i, t := range m.pending {
		log.Infof("%s (started)", t.DisplayName())

		res := launch.Test(t, m.out)
		if res.Panic != nil {
			log.WithError(res.Panic).Debugf("Recovered panic stack:\n%s", res.Panic.Stack)
		}
		if !res.Passed {
			stats.Failed = append(stats.Failed, i)
			failures = append(failures, report.Failure{Index: i, Name: t.DisplayName()})
		}

		status := report.StatusOf(res.Passed)
		if status.IsBad() {
			log.Warnf("%s %s", t.DisplayName(), status.StringColor())
		} else {
			log.Infof("%s %s", t.DisplayName(), status.StringColor())
		}
	}

	fmt.Fprint(m.out, report.BatchSummary(stats.Total, stats.Batch, failures))

	m.pending = nil
	m.batch++

	stats.Duration = time.Since(start)
	log.Infof("Batch %d finished in %s - %s", stats.Batch, stats.Duration.Round(time.Millisecond), stats.Summary())
	return stats
}
