package language

import (
	"sort"

	"github.com/pkg/errors"
)

// Order identifies an n-gram table.
type Order int

const (
	Unigram Order = 1
	Bigram  Order = 2
	Trigram Order = 3
)

func (o Order) String() string {
	switch o {
	case Unigram:
		return "unigram"
	case Bigram:
		return "bigram"
	case Trigram:
		return "trigram"
	}
	return "invalid"
}

// Valid reports whether o names one of the three tables.
func (o Order) Valid() bool {
	return o >= Unigram && o <= Trigram
}

// ParseOrder accepts "unigram", "bigram", "trigram" or the digits 1-3.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "1", "unigram":
		return Unigram, nil
	case "2", "bigram":
		return Bigram, nil
	case "3", "trigram":
		return Trigram, nil
	}
	return 0, errors.Errorf("unknown n-gram order %q", s)
}

// Pool selects which trigrams a selection policy ranks during trigram generation.
type Pool int

const (
	// FullTablePool computes the policy over the whole trigram table, then
	// keeps only the trigrams that continue the current context.
	FullTablePool Pool = iota
	// ContextPool computes the policy over the context continuations only.
	ContextPool
)

func (p Pool) String() string {
	if p == ContextPool {
		return "context"
	}
	return "full"
}

// ParsePool accepts "full" and "context". The empty string means FullTablePool.
func ParsePool(s string) (Pool, error) {
	switch s {
	case "", "full":
		return FullTablePool, nil
	case "context":
		return ContextPool, nil
	}
	return 0, errors.Errorf("unknown trigram pool %q", s)
}

// Config holds model construction parameters.
type Config struct {
	Smoothing   bool // add-one (Laplace) smoothing for every order
	Trigram     bool // build the trigram table and enable trigram queries
	TrigramPool Pool // candidate pool for trigram generation
}

// DefaultConfig returns plain relative frequencies without trigrams.
func DefaultConfig() Config {
	return Config{
		Smoothing:   false,
		Trigram:     false,
		TrigramPool: FullTablePool,
	}
}

// ErrEmptyCorpus is returned when the corpus has no tokens, which leaves
// every probability denominator at zero.
var ErrEmptyCorpus = errors.New("empty corpus: no tokens to estimate probabilities from")

// Entry is one n-gram with its probability.
type Entry struct {
	NGram []string
	Prob  float64
}

// NGramModel holds the count and probability tables of a trained model.
// It is immutable after construction and safe for concurrent queries.
type NGramModel struct {
	cfg Config
	n   int // total tokens
	v   int // vocabulary size

	unigramCounts map[string]int
	bigramCounts  map[[2]string]int
	trigramCounts map[[3]string]int

	unigramProbs map[string]float64
	bigramProbs  map[[2]string]float64
	trigramProbs map[[3]string]float64

	// ranked[o] lists table o by probability descending, key ascending.
	ranked [Trigram + 1][]Entry
	// contexts maps (w1, w2) to its trigram continuations in ranked order.
	contexts map[[2]string][]Entry
}

// New builds a model from preprocessed sentences.
func New(sentences [][]string, cfg Config) (*NGramModel, error) {
	b := NewBuilder(cfg)
	for _, s := range sentences {
		b.AddSentence(s)
	}
	return b.Build()
}

// Config returns the construction parameters.
func (m *NGramModel) Config() Config { return m.cfg }

// N returns the total number of tokens in the corpus.
func (m *NGramModel) N() int { return m.n }

// V returns the vocabulary size.
func (m *NGramModel) V() int { return m.v }

// Len returns the number of distinct n-grams of the given order.
func (m *NGramModel) Len(o Order) int {
	if !o.Valid() {
		return 0
	}
	return len(m.ranked[o])
}

func (m *NGramModel) UnigramCount(w string) int { return m.unigramCounts[w] }

func (m *NGramModel) BigramCount(w1, w2 string) int {
	return m.bigramCounts[[2]string{w1, w2}]
}

func (m *NGramModel) TrigramCount(w1, w2, w3 string) int {
	return m.trigramCounts[[3]string{w1, w2, w3}]
}

// UnigramProb returns P(w) and whether w was observed.
func (m *NGramModel) UnigramProb(w string) (float64, bool) {
	p, ok := m.unigramProbs[w]
	return p, ok
}

// BigramProb returns P(w2 | w1) and whether the pair was observed.
func (m *NGramModel) BigramProb(w1, w2 string) (float64, bool) {
	p, ok := m.bigramProbs[[2]string{w1, w2}]
	return p, ok
}

// TrigramProb returns P(w3 | w1 w2) and whether the triple was observed.
func (m *NGramModel) TrigramProb(w1, w2, w3 string) (float64, bool) {
	p, ok := m.trigramProbs[[3]string{w1, w2, w3}]
	return p, ok
}

// Vocab returns all words in the unigram vocabulary, sorted.
func (m *NGramModel) Vocab() []string {
	words := make([]string, 0, len(m.unigramCounts))
	for w := range m.unigramCounts {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
