package stoplist

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cognicore/ordfreq/pkg/ordfreq/fuzzy"
)

// DefaultMemoSize is the number of blacklist decisions a Filter remembers.
const DefaultMemoSize = 4096

// Verdict is the outcome of filtering one token.
type Verdict int

const (
	Keep Verdict = iota
	TooShort
	Numeric
	Blacklisted
)

func (v Verdict) String() string {
	switch v {
	case Keep:
		return "keep"
	case TooShort:
		return "too_short"
	case Numeric:
		return "numeric"
	case Blacklisted:
		return "blacklisted"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Filter decides whether a token is noise. Rules, first match wins:
// a single character, all decimal digits, or (after lowercasing) a fuzzy
// match for any blacklist term.
type Filter struct {
	exact     *Manager
	blacklist []fuzzy.Sequence
	matcher   *fuzzy.Matcher
	lower     cases.Caser
	memo      *lru.Cache[string, bool]
	memoSize  int
}

// FilterOption configures a Filter.
type FilterOption func(*Filter)

// WithMatcher replaces the default similarity matcher.
func WithMatcher(m *fuzzy.Matcher) FilterOption {
	return func(f *Filter) { f.matcher = m }
}

// WithMemoSize sets the decision memo capacity; 0 disables memoization.
func WithMemoSize(n int) FilterOption {
	return func(f *Filter) { f.memoSize = n }
}

// NewFilter creates a filter against the current contents of blacklist.
// Later changes to the Manager are not seen.
func NewFilter(blacklist *Manager, opts ...FilterOption) (*Filter, error) {
	f := &Filter{
		matcher:  fuzzy.Default(),
		lower:    cases.Lower(language.Und),
		memoSize: DefaultMemoSize,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.exact = NewManager(nil)
	if blacklist != nil {
		f.exact = NewManager(blacklist.All())
		f.blacklist = blacklist.Sequences()
	}
	if f.memoSize > 0 {
		memo, err := lru.New[string, bool](f.memoSize)
		if err != nil {
			return nil, fmt.Errorf("filter memo: %w", err)
		}
		f.memo = memo
	}
	return f, nil
}

// Check classifies token. For Keep the lowercased token is returned,
// otherwise the empty string.
func (f *Filter) Check(token string) (string, Verdict) {
	if utf8.RuneCountInString(token) <= 1 {
		return "", TooShort
	}
	if isDecimal(token) {
		return "", Numeric
	}

	word := f.lower.String(token)
	if f.blacklisted(word) {
		return "", Blacklisted
	}
	return word, Keep
}

// Discard reports whether token is noise.
func (f *Filter) Discard(token string) bool {
	_, v := f.Check(token)
	return v != Keep
}

func (f *Filter) blacklisted(word string) bool {
	// An exact term has ratio 1.0, so it matches at any cutoff.
	if f.exact.IsStop(word) {
		return true
	}
	if f.memo != nil {
		if hit, ok := f.memo.Get(word); ok {
			return hit
		}
	}
	hit := f.matcher.Any(fuzzy.Split(word), f.blacklist)
	if f.memo != nil {
		f.memo.Add(word, hit)
	}
	return hit
}

func isDecimal(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
