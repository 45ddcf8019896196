package corpus

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/strsim/core"
)

func sampleCorpus() [][]string {
	return [][]string{{"a", "b", "a"}, {"a", "c"}, {"a"}, {"b"}}
}

func TestBuild(t *testing.T) {
	table, err := Build(sampleCorpus())
	require.NoError(t, err)

	assert.Equal(t, 4, table.Size())
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 3, table.DocumentFrequency("a"))
	assert.Equal(t, 2, table.DocumentFrequency("b"))
	assert.Equal(t, 1, table.DocumentFrequency("c"))
	assert.Equal(t, 0, table.DocumentFrequency("z"))
	assert.True(t, table.Contains("c"))
	assert.False(t, table.Contains("z"))
}

func TestBuildEdgeCases(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, core.ErrNilInput)

	empty, err := Build([][]string{})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())
	assert.Equal(t, 0, empty.Len())

	withEmptyDoc, err := Build([][]string{{}, {"x"}})
	require.NoError(t, err)
	assert.Equal(t, 2, withEmptyDoc.Size())
	assert.Equal(t, 1, withEmptyDoc.DocumentFrequency("x"))
}

func TestInverseFrequency(t *testing.T) {
	table, err := Build(sampleCorpus())
	require.NoError(t, err)

	ratio, ok := table.InverseRatio("b")
	require.True(t, ok)
	assert.Equal(t, 2.0, ratio)

	_, ok = table.InverseRatio("z")
	assert.False(t, ok)

	assert.InDelta(t, math.Log(4.0/3), table.IDF("a"), 1e-12)
	assert.Equal(t, 0.0, table.IDF("z"))
}

func TestAllIsSorted(t *testing.T) {
	table, err := Build(sampleCorpus())
	require.NoError(t, err)

	var tokens []string
	var counts []int
	for tok, n := range table.All() {
		tokens = append(tokens, tok)
		counts = append(counts, n)
	}
	assert.Equal(t, []string{"a", "b", "c"}, tokens)
	assert.Equal(t, []int{3, 2, 1}, counts)

	// early exit
	for tok := range table.All() {
		assert.Equal(t, "a", tok)
		break
	}
}

func TestFromCounts(t *testing.T) {
	built, err := Build(sampleCorpus())
	require.NoError(t, err)

	restored, err := FromCounts(4, map[string]int{"a": 3, "b": 2, "c": 1})
	require.NoError(t, err)
	assert.Equal(t, built.Fingerprint(), restored.Fingerprint())

	other, err := FromCounts(5, map[string]int{"a": 3, "b": 2, "c": 1})
	require.NoError(t, err)
	assert.NotEqual(t, built.Fingerprint(), other.Fingerprint())

	_, err = FromCounts(2, map[string]int{"a": 3})
	assert.ErrorIs(t, err, core.ErrInvalidValue)

	_, err = FromCounts(2, map[string]int{"a": 0})
	assert.ErrorIs(t, err, core.ErrInvalidValue)

	_, err = FromCounts(-1, nil)
	assert.ErrorIs(t, err, core.ErrInvalidValue)
}

func TestFingerprint_TokenBoundaries(t *testing.T) {
	// one token holding separator bytes against two tokens with the same bytes overall
	joined, err := FromCounts(1, map[string]int{"a\x001\x00b": 1})
	require.NoError(t, err)
	split, err := FromCounts(1, map[string]int{"a": 1, "b": 1})
	require.NoError(t, err)
	assert.NotEqual(t, joined.Fingerprint(), split.Fingerprint())

	first, err := FromCounts(2, map[string]int{"x\x002\x00y": 2})
	require.NoError(t, err)
	second, err := FromCounts(2, map[string]int{"x": 2, "y": 2})
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint(), second.Fingerprint())
}

func TestFromCountsCopiesInput(t *testing.T) {
	counts := map[string]int{"a": 1}
	table, err := FromCounts(1, counts)
	require.NoError(t, err)

	counts["a"] = 99
	counts["b"] = 1
	assert.Equal(t, 1, table.DocumentFrequency("a"))
	assert.False(t, table.Contains("b"))
}

func TestConcurrentReads(t *testing.T) {
	table, err := Build(sampleCorpus())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = table.DocumentFrequency("a")
				_ = table.IDF("b")
				_ = table.Fingerprint()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, table.DocumentFrequency("a"))
}
