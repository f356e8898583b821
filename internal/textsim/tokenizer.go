// Package textsim implements TF-IDF weighting and cosine similarity
// for ranking short documents against a query.
package textsim

import (
	"strings"
	"unicode"
)

// minTokenLen is the shortest run of word characters kept as a token.
const minTokenLen = 2

// Tokenizer splits text into lowercase word tokens, dropping stop words.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stop word list.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize returns the tokens of text in order of appearance.
// A token is a maximal run of word characters at least two runes long.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	runes := 0

	flush := func() {
		if runes >= minTokenLen {
			word := current.String()
			if !t.IsStopword(word) {
				tokens = append(tokens, word)
			}
		}
		current.Reset()
		runes = 0
	}

	for _, r := range strings.ToLower(text) {
		if isWordRune(r) {
			current.WriteRune(r)
			runes++
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// IsStopword reports whether word is excluded from the vocabulary.
func (t *Tokenizer) IsStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}
