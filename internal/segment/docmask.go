package segment

import (
	"github.com/RoaringBitmap/roaring/v2"

	"irecore/internal/docid"
)

// DocMask tracks documents removed from a segment since it was written
// (§4.7's live_docs_count / deletion bitmap). It wraps a Roaring Bitmap —
// the segment's own bit-per-doc set is typically dense and small, and
// Roaring's run/array/bitmap container switching keeps a mostly-empty
// mask cheap without a bespoke encoding.
type DocMask struct {
	rb *roaring.Bitmap
}

// NewDocMask creates an empty mask (no documents deleted).
func NewDocMask() *DocMask {
	return &DocMask{rb: roaring.New()}
}

// Delete marks local (segment-relative, 0-based) doc id as no longer live.
func (m *DocMask) Delete(local uint32) {
	m.rb.Add(local)
}

// Deleted reports whether local has been masked out.
func (m *DocMask) Deleted(local uint32) bool {
	return m.rb.Contains(local)
}

// Count returns the number of masked (deleted) documents.
func (m *DocMask) Count() uint64 {
	return m.rb.GetCardinality()
}

// Clone returns an independent copy of the mask, used when a snapshot
// pins a segment whose mask may keep accumulating deletes (§5).
func (m *DocMask) Clone() *DocMask {
	return &DocMask{rb: m.rb.Clone()}
}

// Iterator walks masked (deleted) local doc ids in ascending order,
// exposed as a docid.ID stream. It has no Seek or Attributes, so it is
// not an iterator.DocIterator and cannot be passed to the combinators.
func (m *DocMask) Iterator() *MaskIterator {
	return &MaskIterator{inner: m.rb.Iterator(), value: docid.Invalid}
}

// MaskIterator adapts roaring's iterator to the DocIterator value/Next
// shape used elsewhere in the core (it does not implement the full
// iterator.DocIterator contract — Attributes is intentionally absent,
// since a deletion mask carries no scoring attributes).
type MaskIterator struct {
	inner roaring.IntPeekable
	value docid.ID
}

func (it *MaskIterator) Value() docid.ID { return it.value }

func (it *MaskIterator) Next() bool {
	if !it.inner.HasNext() {
		it.value = docid.EOF
		return false
	}
	it.value = docid.Min + docid.ID(it.inner.Next())
	return true
}
