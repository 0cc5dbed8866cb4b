// Package report renders ranked word counts for people and machines.
package report

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/ordfreq/pkg/ordfreq"
	"github.com/cognicore/ordfreq/pkg/ordfreq/freq"
)

// Builder constructs reports with unique, time-ordered IDs
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Report is the outcome of one run, ready to render
type Report struct {
	ID          string        `json:"id"`
	Document    string        `json:"document"`
	GeneratedAt time.Time     `json:"generated_at"`
	Top         int           `json:"top"`
	Blacklist   string        `json:"blacklist"`
	Stats       ordfreq.Stats `json:"stats"`
	Entries     []freq.Entry  `json:"entries"`
}

// Build creates a report for document from res. k is the requested number
// of entries and blacklist describes where the blacklist came from.
func (b *Builder) Build(document string, k int, blacklist string, res ordfreq.Result) Report {
	b.mu.Lock()
	now := b.now()
	id := ulid.MustNew(ulid.Timestamp(now), b.entropy).String()
	b.mu.Unlock()

	entries := make([]freq.Entry, len(res.Top))
	copy(entries, res.Top)

	return Report{
		ID:          id,
		Document:    document,
		GeneratedAt: now.UTC(),
		Top:         k,
		Blacklist:   blacklist,
		Stats:       res.Stats,
		Entries:     entries,
	}
}
