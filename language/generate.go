package language

// DefaultLength is the number of tokens appended by unigram and bigram
// generation, and the trigram default.
const DefaultLength = 10

// topN is the size of the TopWeighted pool.
const topN = 10

// Selection is the policy used to pick each generated token.
type Selection int

const (
	// Greedy picks uniformly among the n-grams tied at the table's highest probability.
	Greedy Selection = 0
	// Weighted samples the whole table proportionally to probability.
	Weighted Selection = 1
	// TopWeighted samples the 10 most probable n-grams proportionally to probability.
	TopWeighted Selection = 2
)

// Valid reports whether s is one of the three policies.
func (s Selection) Valid() bool {
	return s >= Greedy && s <= TopWeighted
}

// Rand is the randomness source for generation. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Generate produces one sentence of the given order, formatted with
// FormatSentence. Unigram and bigram generation append DefaultLength tokens
// to head; trigram generation appends up to length tokens, stopping early
// when nothing continues the last two tokens. An invalid code, or a trigram
// request on a model without trigrams, yields "".
func (m *NGramModel) Generate(rng Rand, o Order, code Selection, head []string, length int) string {
	if !code.Valid() {
		return ""
	}
	switch o {
	case Unigram:
		return m.UnigramGenerate(rng, code, head)
	case Bigram:
		return m.BigramGenerate(rng, code, head)
	case Trigram:
		return m.TrigramGenerate(rng, code, head, length)
	}
	return ""
}

// UnigramGenerate appends DefaultLength tokens drawn from the unigram table.
// The pool is the whole table at every step; the sentence so far is ignored.
func (m *NGramModel) UnigramGenerate(rng Rand, code Selection, head []string) string {
	if !code.Valid() {
		return ""
	}
	sent := append([]string(nil), head...)
	pool := policyPool(m.ranked[Unigram], code)
	for i := 0; i < DefaultLength && len(pool) > 0; i++ {
		e := choose(rng, pool, code)
		sent = append(sent, e.NGram[0])
	}
	return FormatSentence(sent)
}

// BigramGenerate appends the second token of DefaultLength bigrams drawn from
// the bigram table. Like UnigramGenerate it does not condition on context.
func (m *NGramModel) BigramGenerate(rng Rand, code Selection, head []string) string {
	if !code.Valid() {
		return ""
	}
	sent := append([]string(nil), head...)
	pool := policyPool(m.ranked[Bigram], code)
	for i := 0; i < DefaultLength && len(pool) > 0; i++ {
		e := choose(rng, pool, code)
		sent = append(sent, e.NGram[1])
	}
	return FormatSentence(sent)
}

// TrigramGenerate appends up to length tokens (DefaultLength when length <= 0),
// each the third token of a trigram whose first two tokens are the sentence's
// last two. Which trigrams the policy ranks depends on Config.TrigramPool.
func (m *NGramModel) TrigramGenerate(rng Rand, code Selection, head []string, length int) string {
	if !code.Valid() || !m.cfg.Trigram {
		return ""
	}
	if length <= 0 {
		length = DefaultLength
	}

	// the full-table pool does not depend on context
	var global []Entry
	if m.cfg.TrigramPool == FullTablePool {
		global = policyPool(m.ranked[Trigram], code)
	}

	sent := append([]string(nil), head...)
	for i := 0; i < length && len(sent) >= 2; i++ {
		ctx := [2]string{sent[len(sent)-2], sent[len(sent)-1]}
		cands := m.contexts[ctx]
		if len(cands) == 0 {
			break
		}

		var pool []Entry
		if m.cfg.TrigramPool == ContextPool {
			pool = policyPool(cands, code)
		} else {
			pool = withContext(global, ctx)
		}
		if len(pool) == 0 {
			break
		}
		e := choose(rng, pool, code)
		sent = append(sent, e.NGram[2])
	}
	return FormatSentence(sent)
}

// policyPool narrows entries, ranked by probability descending, to the
// n-grams the policy may pick from.
func policyPool(ranked []Entry, code Selection) []Entry {
	if len(ranked) == 0 {
		return nil
	}
	switch code {
	case Greedy:
		best := ranked[0].Prob
		n := 1
		for n < len(ranked) && ranked[n].Prob == best {
			n++
		}
		return ranked[:n]
	case TopWeighted:
		if len(ranked) > topN {
			return ranked[:topN]
		}
	}
	return ranked
}

// choose picks one entry from a non-empty pool.
func choose(rng Rand, pool []Entry, code Selection) Entry {
	if code == Greedy {
		return pool[rng.Intn(len(pool))]
	}
	return weighted(rng, pool)
}

// weighted samples an entry with probability proportional to its Prob.
func weighted(rng Rand, pool []Entry) Entry {
	var total float64
	for _, e := range pool {
		total += e.Prob
	}
	r := rng.Float64() * total
	for _, e := range pool {
		r -= e.Prob
		if r < 0 {
			return e
		}
	}
	return pool[len(pool)-1]
}

// withContext keeps the trigrams whose first two tokens are ctx.
func withContext(pool []Entry, ctx [2]string) []Entry {
	var out []Entry
	for _, e := range pool {
		if e.NGram[0] == ctx[0] && e.NGram[1] == ctx[1] {
			out = append(out, e)
		}
	}
	return out
}
