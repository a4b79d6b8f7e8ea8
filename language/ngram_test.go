package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in   string
		want Order
	}{
		{"unigram", Unigram},
		{"1", Unigram},
		{"bigram", Bigram},
		{"2", Bigram},
		{"trigram", Trigram},
		{"3", Trigram},
	}
	for _, tt := range tests {
		got, err := ParseOrder(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.True(t, got.Valid())
	}

	_, err := ParseOrder("4gram")
	assert.Error(t, err)
	assert.False(t, Order(0).Valid())
	assert.Equal(t, "bigram", Bigram.String())
	assert.Equal(t, "invalid", Order(7).String())
}

func TestParsePool(t *testing.T) {
	p, err := ParsePool("")
	require.NoError(t, err)
	assert.Equal(t, FullTablePool, p)

	p, err = ParsePool("context")
	require.NoError(t, err)
	assert.Equal(t, ContextPool, p)
	assert.Equal(t, "context", p.String())

	_, err = ParsePool("nearby")
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Smoothing)
	assert.False(t, cfg.Trigram)
	assert.Equal(t, FullTablePool, cfg.TrigramPool)

	m, err := New(catDog, cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, m.Config())
}

func TestModelNotMutatedByResults(t *testing.T) {
	m, err := New(catDog, Config{Trigram: true})
	require.NoError(t, err)

	got := m.Bigram(0)
	got[0].NGram[0] = "changed"
	got[0].Prob = 42

	again := m.Bigram(0)
	assert.Equal(t, []string{"cat", "sat"}, again[0].NGram)
	assert.InDelta(t, 1.0, again[0].Prob, 1e-12)

	head := []string{"the", "cat"}
	m.TrigramGenerate(fixedRand{}, Greedy, head, 3)
	assert.Equal(t, []string{"the", "cat"}, head)
}
