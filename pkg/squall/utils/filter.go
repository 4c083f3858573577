package utils

import "strings"

// NameFilter selects tests by display name. An empty selection matches
// every name until the filter is pinned.
type NameFilter struct {
	pinned bool
	names  map[string]struct{}
}

// NewNameFilter builds a filter from the given selection. Entries are
// trimmed of surrounding whitespace; blank entries do not count as a
// selection.
func NewNameFilter(selection []string) *NameFilter {
	f := &NameFilter{names: make(map[string]struct{}, len(selection))}
	for _, name := range selection {
		if name = strings.TrimSpace(name); name != "" {
			f.names[name] = struct{}{}
		}
	}
	return f
}

// Pin makes an empty selection match nothing. Manifests pin their
// selection; an empty manifest deliberately runs no tests.
func (f *NameFilter) Pin() {
	f.pinned = true
}

// Match reports whether a test with the given display name is selected.
// Surrounding whitespace never distinguishes names.
func (f *NameFilter) Match(name string) bool {
	if len(f.names) == 0 {
		return !f.pinned
	}

	_, ok := f.names[strings.TrimSpace(name)]
	return ok
}
