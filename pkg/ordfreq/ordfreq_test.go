package ordfreq_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/ordfreq/pkg/ordfreq"
	"github.com/cognicore/ordfreq/pkg/ordfreq/freq"
	"github.com/cognicore/ordfreq/pkg/ordfreq/fuzzy"
	"github.com/cognicore/ordfreq/pkg/ordfreq/stoplist"
)

func newEngine(t *testing.T, blacklist ...string) *ordfreq.Engine {
	t.Helper()
	eng, err := ordfreq.New(ordfreq.Options{Blacklist: stoplist.NewManager(blacklist)})
	require.NoError(t, err)
	return eng
}

func TestAnalyzeMergesSpellingVariants(t *testing.T) {
	eng := newEngine(t)

	res, err := eng.Analyze(context.Background(), "Color colour COLORS", 10)
	require.NoError(t, err)
	assert.Equal(t, []freq.Entry{{Key: "color", Count: 3}}, res.Top)
}

func TestAnalyzeFirstSpellingIsCanonical(t *testing.T) {
	eng := newEngine(t)

	res, err := eng.Analyze(context.Background(), "colors colour color", 10)
	require.NoError(t, err)
	assert.Equal(t, []freq.Entry{{Key: "colors", Count: 3}}, res.Top)
}

func TestAnalyzeDropsBlacklisted(t *testing.T) {
	eng := newEngine(t, "the", "and")

	res, err := eng.Analyze(context.Background(), "The cat and the dog", 10)
	require.NoError(t, err)
	assert.Equal(t, []freq.Entry{{Key: "cat", Count: 1}, {Key: "dog", Count: 1}}, res.Top)
	assert.Equal(t, 3, res.Stats.Blacklisted)
}

func TestAnalyzeDropsShortAndNumeric(t *testing.T) {
	eng := newEngine(t)

	res, err := eng.Analyze(context.Background(), "a 42 I 2024 7up", 10)
	require.NoError(t, err)
	assert.Equal(t, []freq.Entry{{Key: "7up", Count: 1}}, res.Top)
	assert.Equal(t, ordfreq.Stats{
		Tokens:    5,
		TooShort:  2,
		Numeric:   2,
		Survivors: 1,
		Distinct:  1,
	}, res.Stats)
}

func TestAnalyzeConservesCounts(t *testing.T) {
	eng := newEngine(t, "the", "of", "and")
	text := strings.Repeat("The history of the colour and the colors of painting, 1890. ", 5)

	res, err := eng.Analyze(context.Background(), text, 10)
	require.NoError(t, err)

	s := res.Stats
	assert.Equal(t, s.Tokens, s.TooShort+s.Numeric+s.Blacklisted+s.Survivors)
	assert.Equal(t, s.Survivors, res.Table.Total())
	assert.Equal(t, s.Distinct, res.Table.Len())
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	text := "Alpha beta gamma alpah betta delta gamma epsilon alpha zeta"

	first, err := newEngine(t).Analyze(context.Background(), text, 10)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := newEngine(t).Analyze(context.Background(), text, 10)
		require.NoError(t, err)
		assert.Equal(t, first.Table.Entries(), again.Table.Entries())
		assert.Equal(t, first.Top, again.Top)
		assert.Equal(t, first.Stats, again.Stats)
	}
}

func TestAnalyzeTopK(t *testing.T) {
	eng := newEngine(t)
	text := "apple apple apple pear pear plum"

	res, err := eng.Analyze(context.Background(), text, 2)
	require.NoError(t, err)
	assert.Equal(t, []freq.Entry{{Key: "apple", Count: 3}, {Key: "pear", Count: 2}}, res.Top)

	res, err = eng.Analyze(context.Background(), text, 0)
	require.NoError(t, err)
	assert.Empty(t, res.Top)
	assert.Equal(t, 3, res.Table.Len(), "table is still available")
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	res, err := newEngine(t).Analyze(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Empty(t, res.Top)
	assert.Zero(t, res.Table.Len())
}

func TestAnalyzeCanceled(t *testing.T) {
	eng := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := eng.Analyze(ctx, "apple pear plum", 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res.Table)
	assert.Nil(t, res.Top)
}

func TestAnalyzeReportsProgress(t *testing.T) {
	var calls [][2]int
	eng, err := ordfreq.New(ordfreq.Options{
		Progress: func(done, total int) { calls = append(calls, [2]int{done, total}) },
	})
	require.NoError(t, err)

	_, err = eng.Analyze(context.Background(), "one two three", 10)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, calls)
}

func TestAnalyzeCustomMatcher(t *testing.T) {
	strict, err := fuzzy.NewMatcher(3, 0.95)
	require.NoError(t, err)
	eng, err := ordfreq.New(ordfreq.Options{Matcher: strict})
	require.NoError(t, err)

	res, err := eng.Analyze(context.Background(), "color colour", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Table.Len())
}

func TestAnalyzeWithoutMemo(t *testing.T) {
	eng, err := ordfreq.New(ordfreq.Options{
		Blacklist: stoplist.NewManager([]string{"the"}),
		MemoSize:  -1,
	})
	require.NoError(t, err)

	res, err := eng.Analyze(context.Background(), "the the cat", 10)
	require.NoError(t, err)
	assert.Equal(t, []freq.Entry{{Key: "cat", Count: 1}}, res.Top)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
