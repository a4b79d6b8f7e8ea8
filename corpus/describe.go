package corpus

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Summary describes the shape of a tokenized corpus.
type Summary struct {
	Sentences  int
	Tokens     int
	Vocabulary int

	MeanLength   float64
	MedianLength float64
	MaxLength    float64
	P90Length    float64 // 90th percentile
}

// Describe summarizes sentences. It fails when there are no sentences.
func Describe(sentences [][]string) (Summary, error) {
	var s Summary
	if len(sentences) == 0 {
		return s, errors.New("describe: no sentences")
	}

	vocab := make(map[string]struct{})
	lengths := make([]float64, 0, len(sentences))
	for _, sent := range sentences {
		s.Tokens += len(sent)
		lengths = append(lengths, float64(len(sent)))
		for _, w := range sent {
			vocab[w] = struct{}{}
		}
	}
	s.Sentences = len(sentences)
	s.Vocabulary = len(vocab)

	var err error
	if s.MeanLength, err = stats.Mean(lengths); err != nil {
		return s, errors.Wrap(err, "mean sentence length")
	}
	if s.MedianLength, err = stats.Median(lengths); err != nil {
		return s, errors.Wrap(err, "median sentence length")
	}
	if s.MaxLength, err = stats.Max(lengths); err != nil {
		return s, errors.Wrap(err, "max sentence length")
	}
	if s.P90Length, err = stats.Percentile(lengths, 90); err != nil {
		return s, errors.Wrap(err, "90th percentile sentence length")
	}
	return s, nil
}
