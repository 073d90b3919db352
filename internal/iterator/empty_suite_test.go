package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irecore/internal/attribute"
	"irecore/internal/docid"
)

// TestEmptySatisfiesS8 exercises scenario S8 from spec.md §8 through
// testify's assertion helpers rather than hand-rolled t.Fatalf checks.
func TestEmptySatisfiesS8(t *testing.T) {
	it := NewEmpty()
	require.False(t, it.Next(), "an empty iterator must never advance")
	assert.Equal(t, docid.EOF, it.Value())

	cost := attribute.ViewGet(it.Attributes(), attribute.CostKey)
	require.NotNil(t, cost, "empty iterator must expose a Cost attribute")
	assert.Equal(t, uint64(0), cost.Estimate)
}

// TestEmptyStaysExhaustedAcrossRepeatedCalls verifies every future call
// after EOF keeps reporting EOF/false, per the DocIterator contract.
func TestEmptyStaysExhaustedAcrossRepeatedCalls(t *testing.T) {
	it := NewEmpty()
	it.Next()

	for i := 0; i < 3; i++ {
		assert.False(t, it.Next())
		assert.Equal(t, docid.EOF, it.Value())
		assert.Equal(t, docid.EOF, it.Seek(docid.Min))
	}
}
