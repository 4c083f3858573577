package manager

import (
	"io"
	"os"

	"squall/pkg/squall/core"

	"github.com/sirupsen/logrus"
)

// Config carries the construction options for a Manager.
type Config struct {
	// Out receives the human readable test report. Defaults to os.Stdout.
	Out io.Writer

	// Log receives progress lines. Defaults to the logrus standard
	// logger. Progress lines are ambient; the report contract covers
	// only Out.
	Log logrus.FieldLogger
}

// Manager owns the pending tests of the current batch and the batch
// counter. It is not safe for concurrent use: Add and Run must be
// called from a single goroutine.
type Manager struct {
	out     io.Writer
	log     logrus.FieldLogger
	pending []core.Test
	batch   int
}

// New creates a Manager, substituting defaults for unset Config fields.
func New(cfg Config) *Manager {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}

	return &Manager{
		out:     cfg.Out,
		log:     cfg.Log,
		pending: make([]core.Test, 0),
	}
}

// Add appends a test to the current batch. Tests run in registration
// order; there is no deduplication, registering the same test twice
// runs it twice.
func (m *Manager) Add(t core.Test) {
	m.log.Debugf("Registering test '%s'", t.DisplayName())
	m.pending = append(m.pending, t)
}

// AddFunc appends fn under the given name.
func (m *Manager) AddFunc(name string, fn core.TestFunc) {
	m.Add(core.NewTest(name, fn))
}

// Pending returns the number of registered, not yet run tests.
func (m *Manager) Pending() int {
	return len(m.pending)
}

// Batch returns the current batch index.
func (m *Manager) Batch() int {
	return m.batch
}
