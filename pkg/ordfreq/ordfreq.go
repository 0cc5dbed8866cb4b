package ordfreq

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/cognicore/ordfreq/pkg/ordfreq/freq"
	"github.com/cognicore/ordfreq/pkg/ordfreq/fuzzy"
	"github.com/cognicore/ordfreq/pkg/ordfreq/ingest"
	"github.com/cognicore/ordfreq/pkg/ordfreq/stoplist"
)

// ProgressFunc is called after each token is filtered and counted.
type ProgressFunc func(done, total int)

// Engine is the word frequency facade: tokenize, filter noise, cluster and
// count, rank.
type Engine struct {
	tokenizer *ingest.Tokenizer
	filter    *stoplist.Filter
	matcher   *fuzzy.Matcher
	logger    *slog.Logger
	progress  ProgressFunc
}

// Options configures an Engine
type Options struct {
	Blacklist *stoplist.Manager
	Matcher   *fuzzy.Matcher // nil uses fuzzy.Default()
	MemoSize  int            // filter decision memo capacity; 0 disables
	Logger    *slog.Logger
	Progress  ProgressFunc
}

// New creates an Engine with the given dependencies
func New(opts Options) (*Engine, error) {
	matcher := opts.Matcher
	if matcher == nil {
		matcher = fuzzy.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	memo := opts.MemoSize
	if memo < 0 {
		memo = 0
	}
	filter, err := stoplist.NewFilter(opts.Blacklist, stoplist.WithMatcher(matcher), stoplist.WithMemoSize(memo))
	if err != nil {
		return nil, err
	}

	return &Engine{
		tokenizer: ingest.NewTokenizer(),
		filter:    filter,
		matcher:   matcher,
		logger:    logger,
		progress:  opts.Progress,
	}, nil
}

// Stats summarizes one run
type Stats struct {
	Tokens      int `json:"tokens"`
	TooShort    int `json:"too_short"`
	Numeric     int `json:"numeric"`
	Blacklisted int `json:"blacklisted"`
	Survivors   int `json:"survivors"`
	Distinct    int `json:"distinct"`
}

// Result is the outcome of one run
type Result struct {
	Table *freq.Table
	Top   []freq.Entry
	Stats Stats
}

// Analyze tokenizes text and runs AnalyzeTokens.
func (e *Engine) Analyze(ctx context.Context, text string, k int) (Result, error) {
	start := time.Now()
	tokens := e.tokenizer.Tokenize(text)
	e.logger.Info("tokenized", "tokens", len(tokens), "duration", time.Since(start))

	return e.AnalyzeTokens(ctx, tokens, k)
}

// AnalyzeTokens filters and counts tokens in order and returns the k most
// frequent canonical words. Tokens are processed strictly sequentially;
// cancelling ctx abandons the run and no partial result is returned.
func (e *Engine) AnalyzeTokens(ctx context.Context, tokens []string, k int) (Result, error) {
	start := time.Now()
	agg := freq.NewAggregator(e.matcher)
	stats := Stats{Tokens: len(tokens)}

	for i, tok := range tokens {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		word, verdict := e.filter.Check(tok)
		switch verdict {
		case stoplist.TooShort:
			stats.TooShort++
		case stoplist.Numeric:
			stats.Numeric++
		case stoplist.Blacklisted:
			stats.Blacklisted++
		case stoplist.Keep:
			stats.Survivors++
			agg.Add(word)
		}

		if e.progress != nil {
			e.progress(i+1, len(tokens))
		}
	}

	table := agg.Table()
	stats.Distinct = table.Len()
	e.logger.Info("aggregated",
		"survivors", stats.Survivors,
		"distinct", stats.Distinct,
		"blacklisted", stats.Blacklisted,
		"duration", time.Since(start),
	)

	start = time.Now()
	top := freq.TopK(table, k)
	e.logger.Info("ranked", "top", len(top), "duration", time.Since(start))

	return Result{Table: table, Top: top, Stats: stats}, nil
}
