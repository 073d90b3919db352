package segment

import (
	"testing"

	"irecore/internal/attribute"
	"irecore/internal/bytesref"
	"irecore/internal/docid"
	"irecore/internal/term"
)

func buildFixture() *Reader {
	field := term.NewSliceReader([]term.Term{
		{Value: bytesref.FromString("alpha"), Postings: []term.Posting{
			{Doc: 0, Freq: 1},
			{Doc: 2, Freq: 1},
		}},
	}, term.FeatureFrequency, 2)

	return NewBuilder("seg-1", 5).
		WithField(0, "body", field).
		Delete(1).
		Delete(3).
		Build()
}

func TestLiveDocsCount(t *testing.T) {
	r := buildFixture()
	if got := r.LiveDocsCount(); got != 3 {
		t.Fatalf("LiveDocsCount = %d, want 3", got)
	}
	if r.Live(1) || r.Live(3) {
		t.Fatal("deleted docs must not report live")
	}
	if !r.Live(0) || !r.Live(2) || !r.Live(4) {
		t.Fatal("undeleted docs must report live")
	}
}

func TestLiveIteratorSkipsDeleted(t *testing.T) {
	r := buildFixture()
	it := r.LiveIterator()
	var got []docid.ID
	for it.Next() {
		got = append(got, it.Value())
	}
	want := []docid.ID{docid.Min + 0, docid.Min + 2, docid.Min + 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFieldLookupByNameAndID(t *testing.T) {
	r := buildFixture()
	if _, ok := r.Field("body"); !ok {
		t.Fatal("expected field \"body\" to be registered")
	}
	if _, err := r.FieldByID(0); err != nil {
		t.Fatalf("FieldByID(0): %v", err)
	}
	if _, err := r.FieldByID(99); err == nil {
		t.Fatal("expected error for unknown field id")
	}
	if _, ok := r.Field("missing"); ok {
		t.Fatal("expected no field \"missing\"")
	}
}

func TestLiveIteratorSeekSkipsDeleted(t *testing.T) {
	r := buildFixture()
	it := r.LiveIterator()
	if got := it.Seek(docid.Min + 1); got != docid.Min+2 {
		t.Fatalf("seek(1) = %d, want %d (1 is deleted)", got, docid.Min+2)
	}
	if got := it.Seek(docid.Min); got != docid.Min+2 {
		t.Fatalf("seek(0) after seek landed on 2 must not move backward, got %d", got)
	}
	if got := it.Seek(docid.Min + 4); got != docid.Min+4 {
		t.Fatalf("seek(4) = %d, want %d", got, docid.Min+4)
	}
	if got := it.Seek(docid.Min + 5); got != docid.EOF {
		t.Fatalf("seek(5) = %d, want EOF", got)
	}
}

func TestLiveIteratorAttributesCarryCost(t *testing.T) {
	r := buildFixture()
	it := r.LiveIterator()
	cost := attribute.ViewGet(it.Attributes(), attribute.CostKey)
	if cost == nil || cost.Estimate != uint64(r.LiveDocsCount()) {
		t.Fatalf("cost = %+v, want estimate %d", cost, r.LiveDocsCount())
	}
}

func TestDocMaskClone(t *testing.T) {
	m := NewDocMask()
	m.Delete(7)
	clone := m.Clone()
	clone.Delete(8)
	if m.Deleted(8) {
		t.Fatal("original mask must not see mutation of its clone")
	}
	if !clone.Deleted(7) || !clone.Deleted(8) {
		t.Fatal("clone must carry forward the original's deletes plus its own")
	}
}
