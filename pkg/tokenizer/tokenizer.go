// Package tokenizer provides a reversible, whitespace-preserving tokenizer.
// Every character of the input is covered by exactly one token, so the token
// stream can be edited in place and reassembled into exact text.
package tokenizer

import "regexp"

// A token is either a maximal run of word characters (letters, digits,
// underscore) and apostrophes, or a single character of anything else
// (whitespace, punctuation, dashes, newlines). The two alternatives cover
// every input character with no overlap.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_']+|[^\p{L}\p{N}_']`)

// Tokenize splits text into tokens. The empty string yields no tokens.
func Tokenize(text string) []string {
	return tokenRe.FindAllString(text, -1)
}

// Detokenize reassembles tokens into text. Detokenize(Tokenize(s)) == s for
// every s.
func Detokenize(tokens []string) string {
	n := 0
	for _, tok := range tokens {
		n += len(tok)
	}
	buf := make([]byte, 0, n)
	for _, tok := range tokens {
		buf = append(buf, tok...)
	}
	return string(buf)
}
