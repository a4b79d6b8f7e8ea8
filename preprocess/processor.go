// Package preprocess normalizes tokenized sentences before they are counted:
// lowercasing, stop word removal and stemming.
package preprocess

import (
	"strings"

	porterstemmer "github.com/kiteco/go-porterstemmer"
)

// TokenFunc transforms a token slice. It may modify ts in place.
type TokenFunc func(ts []string) []string

// Processor applies a list of TokenFuncs in order.
type Processor struct {
	filters []TokenFunc
}

// NewProcessor returns a Processor applying funcs in order.
func NewProcessor(funcs ...TokenFunc) *Processor {
	p := &Processor{}
	for _, fn := range funcs {
		if fn != nil {
			p.filters = append(p.filters, fn)
		}
	}
	return p
}

// New returns the standard pipeline: lowercase, then drop stop words when
// stop is non-empty, then stem when stem is set.
func New(stop StopWords, stem bool) *Processor {
	funcs := []TokenFunc{Lower}
	if len(stop) > 0 {
		funcs = append(funcs, RemoveStopWords(stop))
	}
	if stem {
		funcs = append(funcs, Stem)
	}
	return NewProcessor(funcs...)
}

// Apply runs the pipeline over ts.
func (p *Processor) Apply(ts []string) []string {
	for _, fn := range p.filters {
		ts = fn(ts)
	}
	return ts
}

// Process runs the pipeline over copies of each sentence and returns the
// results in order. Sentences emptied by filtering are kept as empty slices.
func (p *Processor) Process(sentences [][]string) [][]string {
	out := make([][]string, len(sentences))
	for i, s := range sentences {
		out[i] = p.Apply(append([]string{}, s...))
	}
	return out
}

// Lower converts all tokens to lower case.
func Lower(ts []string) []string {
	for i, t := range ts {
		ts[i] = strings.ToLower(t)
	}
	return ts
}

// RemoveStopWords returns a TokenFunc dropping tokens found in stop.
func RemoveStopWords(stop StopWords) TokenFunc {
	return func(ts []string) []string {
		kept := ts[:0]
		for _, t := range ts {
			if !stop.Contains(t) {
				kept = append(kept, t)
			}
		}
		return kept
	}
}

// Stem replaces each token with its Porter stem.
func Stem(ts []string) []string {
	for i, t := range ts {
		ts[i] = porterstemmer.StemString(t)
	}
	return ts
}
