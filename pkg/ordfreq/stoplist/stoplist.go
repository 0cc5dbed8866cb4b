// Package stoplist holds the blacklist of common words and the noise filter
// that removes them, together with too-short and numeric tokens, before
// counting.
package stoplist

import (
	"sort"

	"github.com/cognicore/ordfreq/pkg/ordfreq/fuzzy"
)

// Manager holds the blacklist as a set of terms.
type Manager struct {
	stops map[string]struct{}
}

// NewManager creates a manager holding initialStops. Duplicates collapse.
func NewManager(initialStops []string) *Manager {
	stops := make(map[string]struct{}, len(initialStops))
	for _, s := range initialStops {
		stops[s] = struct{}{}
	}
	return &Manager{stops: stops}
}

// IsStop reports exact membership.
func (m *Manager) IsStop(token string) bool {
	_, ok := m.stops[token]
	return ok
}

// Add adds a term.
func (m *Manager) Add(token string) {
	m.stops[token] = struct{}{}
}

// Len returns the number of distinct terms.
func (m *Manager) Len() int {
	return len(m.stops)
}

// All returns every term in sorted order. The set itself is unordered;
// sorting makes snapshots and searches reproducible.
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// Sequences returns All split for fuzzy search.
func (m *Manager) Sequences() []fuzzy.Sequence {
	all := m.All()
	seqs := make([]fuzzy.Sequence, len(all))
	for i, s := range all {
		seqs[i] = fuzzy.Split(s)
	}
	return seqs
}
