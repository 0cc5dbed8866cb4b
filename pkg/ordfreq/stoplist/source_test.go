package stoplist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/ordfreq/pkg/ordfreq/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLineFileStripsLineEndings(t *testing.T) {
	path := writeFile(t, "words.txt", "the\nand\r\n\nof")

	terms, err := LineFile{Path: path}.Terms()
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "and", "of"}, terms)
}

func TestLineFileKeepLineEndings(t *testing.T) {
	path := writeFile(t, "words.txt", "the\nand\r\n\nof")

	terms, err := LineFile{Path: path, KeepLineEndings: true}.Terms()
	require.NoError(t, err)
	assert.Equal(t, []string{"the\n", "and\r\n", "\n", "of"}, terms)
}

func TestLineFileMissing(t *testing.T) {
	_, err := LineFile{Path: "/nonexistent/words.txt"}.Terms()
	assert.ErrorIs(t, err, internalerr.ErrBlacklistUnavailable)
}

func TestYAMLFile(t *testing.T) {
	path := writeFile(t, "stoplist.yaml", "terms:\n  - the\n  - a\n  - and\n")

	terms, err := YAMLFile{Path: path}.Terms()
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "a", "and"}, terms)
}

func TestYAMLFileEmpty(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")

	terms, err := YAMLFile{Path: path}.Terms()
	require.NoError(t, err, "empty YAML should load")
	assert.Empty(t, terms)
}

func TestYAMLFileMalformed(t *testing.T) {
	path := writeFile(t, "bad.yaml", "terms: [unclosed\n")

	_, err := YAMLFile{Path: path}.Terms()
	assert.Error(t, err)
}

func TestBuildMergesSources(t *testing.T) {
	lines := writeFile(t, "words.txt", "the\nand\n")
	yml := writeFile(t, "extra.yaml", "terms:\n  - and\n  - said\n")

	mgr, err := Build(LineFile{Path: lines}, YAMLFile{Path: yml}, Static{"however"})
	require.NoError(t, err)
	assert.Equal(t, []string{"and", "however", "said", "the"}, mgr.All())
}

func TestBuildSkipsEmptyTerms(t *testing.T) {
	yml := writeFile(t, "extra.yaml", "terms:\n  - \"\"\n  - the\n  - \"\"\n")

	mgr, err := Build(YAMLFile{Path: yml}, Static{"", "and"})
	require.NoError(t, err)
	assert.Equal(t, []string{"and", "the"}, mgr.All())
	assert.False(t, mgr.IsStop(""))
}

func TestBuildFailsOnMissingSource(t *testing.T) {
	lines := writeFile(t, "words.txt", "the\n")

	_, err := Build(LineFile{Path: lines}, LineFile{Path: filepath.Join(t.TempDir(), "blacklist.txt")})
	assert.ErrorIs(t, err, internalerr.ErrBlacklistUnavailable)
}
