package textsim

import (
	"strings"
	"unicode"
)

// MinTokenLength is the default minimum length for a token to survive
// tokenization. Shorter tokens are almost always noise in resume text.
const MinTokenLength = 3

// Tokenize lower-cases the text, strips non-word characters, splits on
// whitespace, and drops short tokens and stop-words. The result preserves
// document order and may contain duplicates.
func Tokenize(text string) []string {
	return TokenizeMinLength(text, MinTokenLength)
}

// TokenizeMinLength is Tokenize with an explicit minimum token length.
// Keyword analyzers use 4 to focus on content-bearing terms.
func TokenizeMinLength(text string, minLen int) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) < minLen {
			continue
		}
		if IsStopword(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// TokenSet returns the distinct tokens of the text as a set
func TokenSet(text string) map[string]struct{} {
	return toSet(Tokenize(text))
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
