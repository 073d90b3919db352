package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irecore/internal/attribute"
	"irecore/internal/docid"
)

// TestSparseSeekScenarioS2WithTestify re-exercises scenario S2 (spec.md
// §8) through testify assertions: odd bits set over capacity 176.
func TestSparseSeekScenarioS2WithTestify(t *testing.T) {
	const capacity = 176
	s := New(capacity)
	for i := 1; i < capacity; i += 2 {
		s.Set(i)
	}
	it := NewIterator(s)

	for k := 1; k < capacity; k += 2 {
		got := it.Seek(docid.Min + docid.ID(k-1))
		require.Equal(t, docid.Min+docid.ID(k), got, "seek(%d)", k-1)
		got = it.Seek(docid.Min + docid.ID(k))
		require.Equal(t, docid.Min+docid.ID(k), got, "seek(%d)", k)
	}
	assert.False(t, it.Next(), "iterator must be exhausted after the last odd bit")
}

// TestCostEqualsPopcountWithTestify checks invariant 7 from spec.md §8:
// cost.estimate() == popcount(bs).
func TestCostEqualsPopcountWithTestify(t *testing.T) {
	s := New(64)
	for _, i := range []int{1, 2, 3, 5, 8, 13, 21, 34, 55} {
		s.Set(i)
	}
	it := NewIterator(s)
	cost := attribute.ViewGet(it.Attributes(), attribute.CostKey)
	require.NotNil(t, cost)
	assert.Equal(t, uint64(9), cost.Estimate)
}
