package combinator

import (
	"testing"

	"irecore/internal/docid"
)

// S6 — Exclusion: A={1,2,3,4,5}, B={2,4} -> {1,3,5}.
func TestExclusionScenarioS6(t *testing.T) {
	a := newSliceDocIterator(ids(1, 2, 3, 4, 5))
	b := newSliceDocIterator(ids(2, 4))
	e := NewExclusion(a, b)

	got := drain(e)
	want := ids(1, 3, 5)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestExclusionBEmpty(t *testing.T) {
	a := newSliceDocIterator(ids(1, 2, 3))
	b := newSliceDocIterator(nil)
	e := NewExclusion(a, b)
	got := drain(e)
	want := ids(1, 2, 3)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestExclusionSeek(t *testing.T) {
	a := newSliceDocIterator(ids(1, 2, 3, 4, 5))
	b := newSliceDocIterator(ids(2, 4))
	e := NewExclusion(a, b)

	if got := e.Seek(3); got != 3 {
		t.Fatalf("seek(3) = %d, want 3", got)
	}
	if got := e.Seek(4); got != 5 {
		t.Fatalf("seek(4) = %d, want 5 (4 is excluded)", got)
	}
	if got := e.Seek(6); got != docid.EOF {
		t.Fatalf("seek(6) = %d, want EOF", got)
	}
}
