// Package engine implements the recommendation and retrieval core of the
// pathfinder service: relevance scoring, corpus assembly, lexical and
// semantic retrieval, learning path construction, and career roadmap
// resolution. All operations are pure functions of their inputs plus the
// injected external providers.
package engine

import (
	"strings"
	"unicode"
)

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "of": {}, "to": {}, "for": {}, "with": {}, "by": {},
	"in": {}, "on": {}, "at": {}, "from": {}, "as": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"been": {}, "it": {}, "this": {}, "that": {}, "these": {}, "those": {}, "we": {}, "our": {}, "you": {},
	"your": {}, "i": {}, "me": {}, "my": {}, "us": {}, "them": {}, "they": {}, "their": {}, "do": {},
	"does": {}, "did": {}, "what": {}, "how": {}, "why": {}, "when": {}, "where": {}, "which": {}, "can": {},
	"could": {}, "should": {}, "would": {}, "may": {}, "might": {}, "will": {}, "shall": {},
}

// Normalize lowercases and trims the given text. Empty input stays empty;
// it never fails.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Tokenize splits text into lowercase terms, dropping structural punctuation
// and English stopwords.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		clean := strings.ToLower(f)
		if clean == "" {
			continue
		}
		if _, ok := stopwords[clean]; ok {
			continue
		}
		tokens = append(tokens, clean)
	}
	return tokens
}

// containsFold reports whether needle appears as a substring of haystack,
// case-insensitively. An empty needle never matches.
func containsFold(haystack, needle string) bool {
	n := Normalize(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Normalize(haystack), n)
}

// anyContainsFold reports whether needle is a substring of any candidate.
func anyContainsFold(candidates []string, needle string) bool {
	for _, c := range candidates {
		if containsFold(c, needle) {
			return true
		}
	}
	return false
}
