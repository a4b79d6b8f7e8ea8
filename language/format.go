package language

import "strings"

// FormatSentence joins tokens with single spaces, except that the
// punctuation tokens . , ! ? ; : attach to the preceding text.
func FormatSentence(tokens []string) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 && !isAttached(t) {
			b.WriteByte(' ')
		}
		b.WriteString(t)
	}
	return b.String()
}

func isAttached(t string) bool {
	switch t {
	case ".", ",", "!", "?", ";", ":":
		return true
	}
	return false
}
