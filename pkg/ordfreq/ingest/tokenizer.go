package ingest

import (
	"strings"
	"unicode"
)

// Tokenizer splits text into word-like tokens.
type Tokenizer struct{}

// NewTokenizer creates a tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize returns the maximal runs of letters and digits in text, in
// document order and original case. Every other character is a boundary.
// Nothing is filtered here; noise removal happens downstream.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if isWordRune(r) {
			current.WriteRune(r)
		} else if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// Count returns the number of tokens in text without materializing them.
func (t *Tokenizer) Count(text string) int {
	n := 0
	inWord := false
	for _, r := range text {
		if isWordRune(r) {
			if !inWord {
				n++
			}
			inWord = true
		} else {
			inWord = false
		}
	}
	return n
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
