package combinator

import (
	"testing"

	"irecore/internal/iterator"
)

func TestMinMatchDisjunctionTwoOfThree(t *testing.T) {
	a := newSliceDocIterator(ids(1, 2, 3, 4))
	b := newSliceDocIterator(ids(2, 3, 5))
	c := newSliceDocIterator(ids(3, 4, 5))
	d := NewMinMatchDisjunction([]iterator.DocIterator{a, b, c}, 2)

	got := drain(d)
	// 2 -> a,b (2-of-3); 3 -> a,b,c (3-of-3); 4 -> a,c (2-of-3); 5 -> b,c (2-of-3); 1 alone dropped.
	want := ids(2, 3, 4, 5)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMinMatchDisjunctionAllOfN(t *testing.T) {
	a := newSliceDocIterator(ids(1, 2, 3))
	b := newSliceDocIterator(ids(2, 3))
	d := NewMinMatchDisjunction([]iterator.DocIterator{a, b}, 2)
	got := drain(d)
	want := ids(2, 3)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMinMatchDisjunctionClampsThreshold(t *testing.T) {
	a := newSliceDocIterator(ids(1))
	d := NewMinMatchDisjunction([]iterator.DocIterator{a}, 5)
	got := drain(d)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("got %v, want [1] (threshold clamped to input count)", got)
	}
}
