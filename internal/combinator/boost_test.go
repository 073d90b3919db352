package combinator

import (
	"math"
	"testing"

	"irecore/internal/attribute"
)

func TestBoostScalesScore(t *testing.T) {
	inner := newSliceDocIterator(ids(1, 2, 3))
	attribute.Emplace(inner.store, attribute.ScoreKey, attribute.Score{
		Evaluate: func(buf []byte) {
			putFloat32Bucket(buf, 2.0)
		},
	})

	b := NewBoost(inner, 3.0)
	if !b.Next() {
		t.Fatal("expected a first match")
	}
	score := attribute.ViewGet(b.Attributes(), attribute.ScoreKey)
	if score == nil {
		t.Fatal("missing score attribute on boosted iterator")
	}
	buf := make([]byte, 4)
	score.Evaluate(buf)
	if got := getFloat32Bucket(buf); math.Abs(float64(got-6.0)) > 1e-6 {
		t.Fatalf("boosted score = %v, want 6.0", got)
	}
}

func TestBoostPassesThroughValueAndCost(t *testing.T) {
	inner := newSliceDocIterator(ids(5, 9))
	b := NewBoost(inner, 2.0)
	b.Next()
	if b.Value() != 5 {
		t.Fatalf("Value() = %d, want 5", b.Value())
	}
	cost := attribute.ViewGet(b.Attributes(), attribute.CostKey)
	if cost == nil || cost.Estimate != 2 {
		t.Fatalf("cost = %+v, want 2", cost)
	}
}
