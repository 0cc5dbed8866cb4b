package freq

import "sort"

// DefaultTopK is the report size used when none is configured.
const DefaultTopK = 10

// TopK returns the k highest-count entries of t, count descending.
// Entries with equal counts keep their insertion order. k <= 0 yields an
// empty result.
func TopK(t *Table, k int) []Entry {
	if t == nil || k <= 0 {
		return []Entry{}
	}
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > k {
		entries = entries[:k]
	}
	return entries
}
