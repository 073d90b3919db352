package combinator

import (
	"testing"

	"irecore/internal/attribute"
	"irecore/internal/docid"
	"irecore/internal/iterator"
)

func ids(vs ...int) []docid.ID {
	out := make([]docid.ID, len(vs))
	for i, v := range vs {
		out[i] = docid.ID(v)
	}
	return out
}

// S4 — Conjunction: A={1,3,5,7,9}, B={3,5,8,9,10} -> {3,5,9}, cost==5.
func TestConjunctionScenarioS4(t *testing.T) {
	a := newSliceDocIterator(ids(1, 3, 5, 7, 9))
	b := newSliceDocIterator(ids(3, 5, 8, 9, 10))
	c := NewConjunction([]iterator.DocIterator{a, b})

	cost := attribute.ViewGet(c.Attributes(), attribute.CostKey)
	if cost == nil || cost.Estimate != 5 {
		t.Fatalf("cost = %+v, want 5", cost)
	}

	got := drain(c)
	want := ids(3, 5, 9)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestConjunctionSeekAlignsAllInputs(t *testing.T) {
	a := newSliceDocIterator(ids(1, 3, 5, 7, 9))
	b := newSliceDocIterator(ids(3, 5, 8, 9, 10))
	c := NewConjunction([]iterator.DocIterator{a, b})

	if got := c.Seek(4); got != 5 {
		t.Fatalf("seek(4) = %d, want 5", got)
	}
	if got := c.Seek(6); got != 9 {
		t.Fatalf("seek(6) = %d, want 9", got)
	}
	if got := c.Seek(10); got != docid.EOF {
		t.Fatalf("seek(10) = %d, want EOF", got)
	}
}

func TestConjunctionEmptyInputCollapses(t *testing.T) {
	a := newSliceDocIterator(ids(1, 2, 3))
	empty := newSliceDocIterator(nil)
	c := NewConjunction([]iterator.DocIterator{a, empty})
	if c.Next() {
		t.Fatal("conjunction with an empty input must never match")
	}
}
