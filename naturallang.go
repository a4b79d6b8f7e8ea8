// Package naturallang trains an n-gram language model from a corpus and
// exposes ranked n-gram listings and sentence generation.
package naturallang

import (
	"github.com/pkg/errors"

	"github.com/joguns12/Natural-Lang/corpus"
	"github.com/joguns12/Natural-Lang/language"
	"github.com/joguns12/Natural-Lang/preprocess"
)

// CorpusReader preprocesses a corpus and holds the model trained on it.
type CorpusReader struct {
	StopWords preprocess.StopWords
	Stem      bool
	Config    language.Config

	stopSource string
	processor  *preprocess.Processor
	model      *language.NGramModel
}

// Option configures a CorpusReader.
type Option func(*CorpusReader)

// WithStopWords selects stop words by name: "none" (the default),
// "standard" for the built-in English list, or a path to a word list
// (.yaml/.yml files are read as a terms list).
func WithStopWords(source string) Option {
	return func(r *CorpusReader) {
		r.stopSource = source
		r.StopWords = nil
	}
}

// WithStopWordSet uses stop directly.
func WithStopWordSet(stop preprocess.StopWords) Option {
	return func(r *CorpusReader) {
		r.stopSource = ""
		r.StopWords = stop
	}
}

// WithStemming reduces tokens to their Porter stems.
func WithStemming(enabled bool) Option {
	return func(r *CorpusReader) {
		r.Stem = enabled
	}
}

// WithSmoothing enables add-one smoothing.
func WithSmoothing(enabled bool) Option {
	return func(r *CorpusReader) {
		r.Config.Smoothing = enabled
	}
}

// WithTrigram enables the trigram table.
func WithTrigram(enabled bool) Option {
	return func(r *CorpusReader) {
		r.Config.Trigram = enabled
	}
}

// WithTrigramPool sets the candidate pool for trigram generation.
func WithTrigramPool(pool language.Pool) Option {
	return func(r *CorpusReader) {
		r.Config.TrigramPool = pool
	}
}

// NewCorpusReader lowercases sentences, applies the stop word and stemming
// options and trains a model on the result. sentences is not modified.
func NewCorpusReader(sentences [][]string, opts ...Option) (*CorpusReader, error) {
	r := &CorpusReader{
		Config: language.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.stopSource != "" {
		stop, err := preprocess.ResolveStopWords(r.stopSource)
		if err != nil {
			return nil, errors.Wrap(err, "load stop words")
		}
		r.StopWords = stop
	}

	r.processor = preprocess.New(r.StopWords, r.Stem)
	processed := r.processor.Process(sentences)
	model, err := language.New(processed, r.Config)
	if err != nil {
		return nil, errors.Wrap(err, "train language model")
	}
	r.model = model
	return r, nil
}

// NewCorpusReaderFromFile reads raw text from path and trains on it.
func NewCorpusReaderFromFile(path string, opts ...Option) (*CorpusReader, error) {
	sentences, err := corpus.ReadFile(path, false)
	if err != nil {
		return nil, err
	}
	return NewCorpusReader(sentences, opts...)
}

// Preprocess runs tokens through the pipeline the corpus went through, so a
// generation head matches the model's tokens. tokens is not modified.
func (r *CorpusReader) Preprocess(tokens []string) []string {
	return r.processor.Apply(append([]string{}, tokens...))
}

// Model returns the trained model.
func (r *CorpusReader) Model() *language.NGramModel {
	return r.model
}

// Unigram lists unigrams; see language.NGramModel.Rank.
func (r *CorpusReader) Unigram(count int) []language.Entry {
	return r.model.Unigram(count)
}

// Bigram lists bigrams; see language.NGramModel.Rank.
func (r *CorpusReader) Bigram(count int) []language.Entry {
	return r.model.Bigram(count)
}

// Trigram lists trigrams, or nothing when trigrams are disabled.
func (r *CorpusReader) Trigram(count int) []language.Entry {
	return r.model.Trigram(count)
}

func (r *CorpusReader) UnigramGenerate(rng language.Rand, code language.Selection, head []string) string {
	return r.model.UnigramGenerate(rng, code, head)
}

func (r *CorpusReader) BigramGenerate(rng language.Rand, code language.Selection, head []string) string {
	return r.model.BigramGenerate(rng, code, head)
}

func (r *CorpusReader) TrigramGenerate(rng language.Rand, code language.Selection, head []string, length int) string {
	return r.model.TrigramGenerate(rng, code, head, length)
}
