// Package index is the read-side index reader (§6): an ordered,
// point-in-time list of segments handed to filter preparation. Segment
// construction, the on-disk manifest/generation protocol, and the
// writer/flush/merge pipeline are explicitly out of scope (spec.md §1) —
// this package is trimmed to exactly the contract internal/filter needs
// (filter.IndexReader), the read side the teacher's own internal/index
// exposed once its manifest/generation machinery is set aside.
package index

import (
	"irecore/internal/segment"
)

// Index is an ordered, immutable list of segment readers, the unit of
// work filter.Filter.Prepare consumes. Ordering has no query-semantic
// meaning (spec.md §5: "no global order is implied") — it exists only so
// Segments returns a stable slice across calls.
type Index struct {
	segments []*segment.Reader
}

// New builds an Index over segs, in the given order. Callers that need a
// point-in-time, refcounted view across concurrent segment replacement
// should obtain segs from internal/snapshot rather than holding an Index
// across a generation change.
func New(segs []*segment.Reader) *Index {
	return &Index{segments: append([]*segment.Reader(nil), segs...)}
}

// Segments returns the index's segment list, satisfying
// internal/filter's IndexReader contract.
func (idx *Index) Segments() []*segment.Reader { return idx.segments }

// SegmentByID returns the segment with the given id, or false if none of
// the index's segments carry it.
func (idx *Index) SegmentByID(id string) (*segment.Reader, bool) {
	for _, seg := range idx.segments {
		if seg.ID() == id {
			return seg, true
		}
	}
	return nil, false
}

// DocCount sums DocCount() across every segment (live and deleted docs).
func (idx *Index) DocCount() uint64 {
	var total uint64
	for _, seg := range idx.segments {
		total += uint64(seg.DocCount())
	}
	return total
}

// LiveDocsCount sums LiveDocsCount() across every segment.
func (idx *Index) LiveDocsCount() uint64 {
	var total uint64
	for _, seg := range idx.segments {
		total += uint64(seg.LiveDocsCount())
	}
	return total
}
