// Package freq clusters near-duplicate tokens into canonical keys and counts
// them.
//
// Clustering is online and greedy: each token joins the most similar
// existing key that meets the cutoff, or founds a new key. Keys are never
// renamed, merged or removed, so the outcome depends on token order.
package freq

// Entry is one canonical key and its count.
type Entry struct {
	Key   string `json:"word"`
	Count int    `json:"count"`
}

// Table maps canonical keys to counts in insertion order.
// Only an Aggregator mutates a Table.
type Table struct {
	keys   []string
	counts map[string]int
	total  int
}

func newTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// insert adds a new key with count 1 and returns its index.
func (t *Table) insert(key string) int {
	t.keys = append(t.keys, key)
	t.counts[key] = 1
	t.total++
	return len(t.keys) - 1
}

func (t *Table) increment(idx int) {
	t.counts[t.keys[idx]]++
	t.total++
}

// Len returns the number of distinct keys.
func (t *Table) Len() int { return len(t.keys) }

// Total returns the sum of all counts.
func (t *Table) Total() int { return t.total }

// Count returns the count for key and whether it exists.
func (t *Table) Count(key string) (int, bool) {
	c, ok := t.counts[key]
	return c, ok
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Entries returns every key with its count, in insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.keys))
	for i, k := range t.keys {
		out[i] = Entry{Key: k, Count: t.counts[k]}
	}
	return out
}

// Map returns a copy of the counts.
func (t *Table) Map() map[string]int {
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}
