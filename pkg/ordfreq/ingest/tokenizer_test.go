package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizerBasic(t *testing.T) {
	tokens := NewTokenizer().Tokenize("Hello, world! Test-case 123.")
	assert.Equal(t, []string{"Hello", "world", "Test", "case", "123"}, tokens)
}

func TestTokenizerPreservesCase(t *testing.T) {
	tokens := NewTokenizer().Tokenize("BERT GPT Transformer")
	assert.Equal(t, []string{"BERT", "GPT", "Transformer"}, tokens)
}

func TestTokenizerKeepsShortAndNumeric(t *testing.T) {
	// Single characters and digit runs are noise, but that is not the
	// tokenizer's decision.
	tokens := NewTokenizer().Tokenize("a b 2023 x1")
	assert.Equal(t, []string{"a", "b", "2023", "x1"}, tokens)
}

func TestTokenizerEmptyInput(t *testing.T) {
	assert.Empty(t, NewTokenizer().Tokenize(""))
}

func TestTokenizerWhitespaceOnly(t *testing.T) {
	assert.Empty(t, NewTokenizer().Tokenize("   \t\n\r   "))
}

func TestTokenizerSpecialCharacters(t *testing.T) {
	tokens := NewTokenizer().Tokenize("hello@world.com test#tag snake_case")
	assert.Equal(t, []string{"hello", "world", "com", "test", "tag", "snake", "case"}, tokens)
}

func TestTokenizerUnicodeLetters(t *testing.T) {
	tokens := NewTokenizer().Tokenize("café résumé naïve")
	assert.Equal(t, []string{"café", "résumé", "naïve"}, tokens)
}

func TestTokenizerVeryLongWord(t *testing.T) {
	longWord := strings.Repeat("verylongword", 20)
	tokens := NewTokenizer().Tokenize("normal " + longWord + " text")

	require.Len(t, tokens, 3)
	assert.Equal(t, longWord, tokens[1], "long word survives intact")
}

func TestTokenizerMixedPunctuation(t *testing.T) {
	tokens := NewTokenizer().Tokenize("hello! world? test... end.")
	assert.Equal(t, []string{"hello", "world", "test", "end"}, tokens)
}

func TestTokenizerDocumentOrder(t *testing.T) {
	tokens := NewTokenizer().Tokenize("colors colour color")
	assert.Equal(t, []string{"colors", "colour", "color"}, tokens)
}

func TestTokenizerCount(t *testing.T) {
	tokenizer := NewTokenizer()

	for _, text := range []string{
		"",
		"one",
		"Hello, world! Test-case 123.",
		"  leading and trailing  ",
		"a-b-c-d",
	} {
		assert.Equal(t, len(tokenizer.Tokenize(text)), tokenizer.Count(text), "Count(%q)", text)
	}
}
