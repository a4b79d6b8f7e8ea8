package corpus

import (
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC, drops invisible format characters (zero-width
// spaces, BOMs) and folds typographic quotes to ASCII.
func Normalize(s string) (string, error) {
	t := transform.Chain(
		norm.NFKC,
		runes.Remove(runes.In(unicode.Cf)),
		runes.Map(foldQuote),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return "", errors.Wrap(err, "normalize text")
	}
	return out, nil
}

func foldQuote(r rune) rune {
	switch r {
	case '\u2018', '\u2019', '\u02bc':
		return '\''
	case '\u201c', '\u201d':
		return '"'
	}
	return r
}

// Tokenize splits text into words and punctuation. Letters, digits and
// combining marks form words; an apostrophe or hyphen stays inside a word
// when a letter or digit follows it. Every other non-space rune is a token
// of its own.
func Tokenize(text string) []string {
	rs := []rune(text)
	var tokens []string
	start := -1

	flush := func(end int) {
		if start >= 0 {
			tokens = append(tokens, string(rs[start:end]))
			start = -1
		}
	}

	for i, r := range rs {
		switch {
		case isWordRune(r):
			if start < 0 {
				start = i
			}
		case (r == '\'' || r == '-') && start >= 0 && i+1 < len(rs) && isWordRune(rs[i+1]):
			// joined: don't, well-known
		case unicode.IsSpace(r):
			flush(i)
		default:
			flush(i)
			tokens = append(tokens, string(r))
		}
	}
	flush(len(rs))
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// SplitSentences groups tokens into sentences ending after ".", "!" or "?".
// The terminator stays with its sentence. Trailing tokens without a
// terminator form the last sentence.
func SplitSentences(tokens []string) [][]string {
	var sentences [][]string
	var cur []string
	for _, t := range tokens {
		cur = append(cur, t)
		switch t {
		case ".", "!", "?":
			sentences = append(sentences, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		sentences = append(sentences, cur)
	}
	return sentences
}
