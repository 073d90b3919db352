package order

import (
	"testing"

	"irecore/internal/attribute"
)

func scoreWith(t *testing.T, s *BM25, stats Stats, freq uint64, norm float32) float32 {
	t.Helper()
	store := attribute.NewStore()
	attribute.Emplace(store, attribute.FrequencyKey, attribute.Frequency{Value: freq})
	attribute.Emplace(store, attribute.NormKey, attribute.Norm{Value: norm})
	view := attribute.ViewOf(store)

	prepared, err := s.PrepareScorer(nil, "body", stats, view)
	if err != nil {
		t.Fatalf("PrepareScorer: %v", err)
	}
	buf := make([]byte, s.BucketSize())
	prepared.Score(buf)
	return getFloat32(buf)
}

func TestBM25HigherFrequencyScoresHigher(t *testing.T) {
	s := NewBM25()
	stats := bm25Stats{docCount: 100, sumFieldLen: 100, docFreq: 10, totalFieldFr: 50}

	low := scoreWith(t, s, stats, 1, 1.0)
	high := scoreWith(t, s, stats, 5, 1.0)
	if !(high > low) {
		t.Fatalf("higher term frequency should score higher: low=%v high=%v", low, high)
	}
}

func TestBM25RarerTermScoresHigher(t *testing.T) {
	s := NewBM25()
	common := bm25Stats{docCount: 1000, sumFieldLen: 1000, docFreq: 900, totalFieldFr: 2000}
	rare := bm25Stats{docCount: 1000, sumFieldLen: 1000, docFreq: 2, totalFieldFr: 2000}

	commonScore := scoreWith(t, s, common, 2, 1.0)
	rareScore := scoreWith(t, s, rare, 2, 1.0)
	if !(rareScore > commonScore) {
		t.Fatalf("rarer term should score higher: common=%v rare=%v", commonScore, rareScore)
	}
}

func TestBM25LessIsStrictWeakOrder(t *testing.T) {
	s := NewBM25()
	var a, b [4]byte
	putFloat32(a[:], 1.0)
	putFloat32(b[:], 2.0)
	if !s.Less(a[:], b[:]) {
		t.Fatal("1.0 should be less than 2.0")
	}
	if s.Less(b[:], a[:]) == s.Less(a[:], b[:]) {
		t.Fatal("Less must be asymmetric for distinct values")
	}
	if s.Less(a[:], a[:]) {
		t.Fatal("Less must be irreflexive")
	}
}

func TestBM25RejectsWrongStatsType(t *testing.T) {
	s := NewBM25()
	if _, err := s.PrepareScorer(nil, "body", "not-bm25-stats", attribute.ViewOf(nil)); err == nil {
		t.Fatal("expected error for mismatched stats type")
	}
}
