package language

// Rank lists the n-grams of the given order.
//
// With topK == 0 the whole table is returned. With topK > 0 every n-gram whose
// probability is at least that of the topK-th most probable n-gram is
// returned, so ties at the cutoff can make the result longer than topK. A topK
// larger than the table applies no cutoff. The result is always sorted by
// n-gram, not by probability.
//
// Trigram ranking on a model built without trigrams returns nil.
func (m *NGramModel) Rank(o Order, topK int) []Entry {
	if !o.Valid() {
		return nil
	}
	ranked := m.ranked[o]
	if len(ranked) == 0 {
		return nil
	}

	keep := len(ranked)
	if topK > 0 && topK <= len(ranked) {
		cutoff := ranked[topK-1].Prob
		keep = topK
		for keep < len(ranked) && ranked[keep].Prob >= cutoff {
			keep++
		}
	}

	out := make([]Entry, keep)
	for i, e := range ranked[:keep] {
		out[i] = Entry{NGram: append([]string(nil), e.NGram...), Prob: e.Prob}
	}
	sortByKey(out)
	return out
}

// Unigram is Rank(Unigram, topK).
func (m *NGramModel) Unigram(topK int) []Entry { return m.Rank(Unigram, topK) }

// Bigram is Rank(Bigram, topK).
func (m *NGramModel) Bigram(topK int) []Entry { return m.Rank(Bigram, topK) }

// Trigram is Rank(Trigram, topK).
func (m *NGramModel) Trigram(topK int) []Entry { return m.Rank(Trigram, topK) }
