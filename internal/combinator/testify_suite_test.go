package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irecore/internal/attribute"
)

// TestExclusionScenarioS6WithTestify exercises S6 from spec.md §8 (A \ B)
// through testify assertions.
func TestExclusionScenarioS6WithTestify(t *testing.T) {
	a := newSliceDocIterator(ids(1, 2, 3, 4, 5))
	b := newSliceDocIterator(ids(2, 4))
	exc := NewExclusion(a, b)

	got := drain(exc)
	require.Len(t, got, 3)
	assert.Equal(t, ids(1, 3, 5), got)
}

// TestBoostKeepsDocOrderWithTestify checks Boost's doc sequence is
// unaffected by score scaling, using testify for the slice/attribute
// assertions.
func TestBoostKeepsDocOrderWithTestify(t *testing.T) {
	inner := newSliceDocIterator(ids(1, 2))
	attribute.Emplace(inner.store, attribute.ScoreKey, attribute.Score{
		Evaluate: func(buf []byte) { putFloat32Bucket(buf, 1.0) },
	})
	boosted := NewBoost(inner, 2.0)

	var docs []int
	for boosted.Next() {
		docs = append(docs, int(boosted.Value()))
		require.NotNil(t, boosted.Attributes())
	}
	assert.Equal(t, []int{1, 2}, docs)
}
