// Package fuzzy finds approximate string matches.
//
// Similarity is the Ratcliff/Obershelp ratio: twice the number of characters
// in the matching blocks found by recursive longest-common-block alignment,
// divided by the combined length of both strings. 1.0 means identical, values
// near 0 mean unrelated.
package fuzzy

import (
	"fmt"
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
)

const (
	// DefaultMaxMatches is the number of candidates returned by a search.
	DefaultMaxMatches = 3
	// DefaultCutoff is the minimum ratio for a candidate to count as a match.
	DefaultCutoff = 0.6
)

// Sequence is a string split into characters, ready for alignment.
// Splitting once and reusing the Sequence avoids re-splitting long-lived
// collections (blacklists, canonical keys) on every search.
type Sequence []string

// Split converts s into a Sequence of its characters (runes).
func Split(s string) Sequence {
	seq := make(Sequence, 0, len(s))
	for _, r := range s {
		seq = append(seq, string(r))
	}
	return seq
}

// String joins the sequence back into a string.
func (s Sequence) String() string {
	n := 0
	for _, c := range s {
		n += len(c)
	}
	b := make([]byte, 0, n)
	for _, c := range s {
		b = append(b, c...)
	}
	return string(b)
}

// Match is one search hit.
type Match struct {
	Index int     // position in the searched collection
	Ratio float64 // similarity to the query
}

// Matcher searches collections for close matches.
type Matcher struct {
	maxMatches int
	cutoff     float64
}

// NewMatcher creates a matcher returning at most maxMatches results with a
// ratio of at least cutoff.
func NewMatcher(maxMatches int, cutoff float64) (*Matcher, error) {
	if maxMatches <= 0 {
		return nil, fmt.Errorf("max matches must be > 0, got %d: %w", maxMatches, internalerr.ErrInvalidInput)
	}
	if cutoff < 0 || cutoff > 1 {
		return nil, fmt.Errorf("cutoff must be in [0, 1], got %v: %w", cutoff, internalerr.ErrInvalidInput)
	}
	return &Matcher{maxMatches: maxMatches, cutoff: cutoff}, nil
}

// Default returns a matcher with DefaultMaxMatches and DefaultCutoff.
func Default() *Matcher {
	return &Matcher{maxMatches: DefaultMaxMatches, cutoff: DefaultCutoff}
}

// MaxMatches returns the result limit.
func (m *Matcher) MaxMatches() int { return m.maxMatches }

// Cutoff returns the minimum ratio.
func (m *Matcher) Cutoff() float64 { return m.cutoff }

// Search returns up to MaxMatches candidates whose ratio to word is at least
// Cutoff, ordered by ratio descending. Equal ratios keep collection order.
func (m *Matcher) Search(word Sequence, candidates []Sequence) []Match {
	if len(candidates) == 0 {
		return nil
	}

	// seq2 holds the query so its index is built once per search.
	sm := difflib.NewMatcher(nil, word)

	var hits []Match
	for i, cand := range candidates {
		sm.SetSeq1(cand)
		if sm.RealQuickRatio() < m.cutoff || sm.QuickRatio() < m.cutoff {
			continue
		}
		if r := sm.Ratio(); r >= m.cutoff {
			hits = append(hits, Match{Index: i, Ratio: r})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Ratio > hits[j].Ratio
	})
	if len(hits) > m.maxMatches {
		hits = hits[:m.maxMatches]
	}
	return hits
}

// Any reports whether at least one candidate meets the cutoff. It stops at
// the first hit, so it is cheaper than Search for membership tests.
func (m *Matcher) Any(word Sequence, candidates []Sequence) bool {
	if len(candidates) == 0 {
		return false
	}
	sm := difflib.NewMatcher(nil, word)
	for _, cand := range candidates {
		sm.SetSeq1(cand)
		if sm.RealQuickRatio() < m.cutoff || sm.QuickRatio() < m.cutoff {
			continue
		}
		if sm.Ratio() >= m.cutoff {
			return true
		}
	}
	return false
}

// CloseMatches is the string form of Search: it returns the matching members
// of possibilities, best first.
func (m *Matcher) CloseMatches(word string, possibilities []string) []string {
	seqs := make([]Sequence, len(possibilities))
	for i, p := range possibilities {
		seqs[i] = Split(p)
	}
	hits := m.Search(Split(word), seqs)
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, possibilities[h.Index])
	}
	return out
}

// Ratio returns the similarity of a and b in [0, 1].
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(Split(a), Split(b)).Ratio()
}
