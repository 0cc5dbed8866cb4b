package freq

import (
	"github.com/cognicore/ordfreq/pkg/ordfreq/fuzzy"
)

// Aggregator builds a Table from surviving tokens, one at a time.
// It owns its Table exclusively and is not safe for concurrent use;
// construct a new Aggregator for every run.
type Aggregator struct {
	matcher *fuzzy.Matcher
	table   *Table
	seqs    []fuzzy.Sequence // keys split for search, parallel to table.keys
}

// NewAggregator creates an empty aggregator. A nil matcher uses
// fuzzy.Default().
func NewAggregator(m *fuzzy.Matcher) *Aggregator {
	if m == nil {
		m = fuzzy.Default()
	}
	return &Aggregator{matcher: m, table: newTable()}
}

// Add counts token. It returns the canonical key the token was counted
// under and whether that key was created by this call.
func (a *Aggregator) Add(token string) (key string, created bool) {
	seq := fuzzy.Split(token)
	if hits := a.matcher.Search(seq, a.seqs); len(hits) > 0 {
		idx := hits[0].Index
		a.table.increment(idx)
		return a.table.keys[idx], false
	}

	a.table.insert(token)
	a.seqs = append(a.seqs, seq)
	return token, true
}

// AddAll counts every token in order.
func (a *Aggregator) AddAll(tokens []string) {
	for _, tok := range tokens {
		a.Add(tok)
	}
}

// Table returns the table built so far. Callers must treat it as read-only.
func (a *Aggregator) Table() *Table {
	return a.table
}
