package language

import (
	"sort"

	"github.com/pkg/errors"
)

// Builder accumulates sentences and builds an NGramModel.
// N-grams are counted within a sentence only; nothing spans two sentences.
type Builder struct {
	cfg      Config
	tokens   int
	unigrams map[string]int
	bigrams  map[[2]string]int
	trigrams map[[3]string]int
}

// NewBuilder creates a builder for the given configuration.
func NewBuilder(cfg Config) *Builder {
	b := &Builder{cfg: cfg}
	b.reset()
	return b
}

func (b *Builder) reset() {
	b.tokens = 0
	b.unigrams = make(map[string]int)
	b.bigrams = make(map[[2]string]int)
	b.trigrams = make(map[[3]string]int)
}

// AddSentence adds a tokenized sentence. No boundary markers are added.
func (b *Builder) AddSentence(words []string) {
	for i, w := range words {
		b.tokens++
		b.unigrams[w]++

		if i >= 1 {
			b.bigrams[[2]string{words[i-1], w}]++
		}
		if b.cfg.Trigram && i >= 2 {
			b.trigrams[[3]string{words[i-2], words[i-1], w}]++
		}
	}
}

// Build derives the probability tables and returns the model. The builder
// hands its tables to the model and starts over empty.
func (b *Builder) Build() (*NGramModel, error) {
	if b.tokens == 0 || len(b.unigrams) == 0 {
		return nil, errors.WithStack(ErrEmptyCorpus)
	}

	m := &NGramModel{
		cfg:           b.cfg,
		n:             b.tokens,
		v:             len(b.unigrams),
		unigramCounts: b.unigrams,
		bigramCounts:  b.bigrams,
		trigramCounts: b.trigrams,
		unigramProbs:  make(map[string]float64, len(b.unigrams)),
		bigramProbs:   make(map[[2]string]float64, len(b.bigrams)),
		trigramProbs:  make(map[[3]string]float64, len(b.trigrams)),
		contexts:      make(map[[2]string][]Entry),
	}
	b.reset()

	// add-one adds 1 to the numerator and V to the denominator
	var num, den float64
	if m.cfg.Smoothing {
		num, den = 1, float64(m.v)
	}

	n := float64(m.n)
	for w, c := range m.unigramCounts {
		m.unigramProbs[w] = (float64(c) + num) / (n + den)
	}

	for key, c := range m.bigramCounts {
		m.bigramProbs[key] = (float64(c) + num) / (float64(m.unigramCounts[key[0]]) + den)
	}

	if m.cfg.Trigram {
		for key, c := range m.trigramCounts {
			ctx := m.bigramCounts[[2]string{key[0], key[1]}]
			if ctx == 0 && !m.cfg.Smoothing {
				continue
			}
			m.trigramProbs[key] = (float64(c) + num) / (float64(ctx) + den)
		}
	}

	m.rank()
	return m, nil
}

// rank fills the sorted views used by ranking and generation queries.
func (m *NGramModel) rank() {
	unis := make([]Entry, 0, len(m.unigramProbs))
	for w, p := range m.unigramProbs {
		unis = append(unis, Entry{NGram: []string{w}, Prob: p})
	}
	bis := make([]Entry, 0, len(m.bigramProbs))
	for key, p := range m.bigramProbs {
		bis = append(bis, Entry{NGram: []string{key[0], key[1]}, Prob: p})
	}
	tris := make([]Entry, 0, len(m.trigramProbs))
	for key, p := range m.trigramProbs {
		tris = append(tris, Entry{NGram: []string{key[0], key[1], key[2]}, Prob: p})
	}

	sortByProb(unis)
	sortByProb(bis)
	sortByProb(tris)
	m.ranked[Unigram] = unis
	m.ranked[Bigram] = bis
	m.ranked[Trigram] = tris

	for _, e := range m.ranked[Trigram] {
		ctx := [2]string{e.NGram[0], e.NGram[1]}
		m.contexts[ctx] = append(m.contexts[ctx], e)
	}
}

// sortByProb orders entries by probability descending, breaking ties by key.
func sortByProb(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Prob != entries[j].Prob {
			return entries[i].Prob > entries[j].Prob
		}
		return compareNGrams(entries[i].NGram, entries[j].NGram) < 0
	})
}

// sortByKey orders entries lexicographically by n-gram.
func sortByKey(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return compareNGrams(entries[i].NGram, entries[j].NGram) < 0
	})
}

func compareNGrams(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}
