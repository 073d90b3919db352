// Package term implements the ordered term traversal and postings access
// within one field (§4.6): TermIterator, TermReader, and the concrete
// in-memory Reader used by segment readers and by this module's own
// tests (the on-disk term dictionary codec itself is out of scope, per
// spec.md §1 — the directory/format contract is the seam).
package term

import (
	"fmt"
	"sort"

	"irecore/internal/attribute"
	"irecore/internal/bytesref"
	"irecore/internal/docid"
	"irecore/internal/iterator"
	"irecore/internal/position"
)

// Features is the set of attributes a field declares as indexed, mirroring
// spec.md §3's Field.features.
type Features uint8

const (
	FeatureFrequency Features = 1 << iota
	FeaturePositions
	FeatureOffsets
	FeaturePayloads
	FeatureNorms
)

// Has reports whether f includes every bit set in x.
func (f Features) Has(x Features) bool { return f&x == x }

// Subset reports whether f is a subset of superset — used to validate a
// Postings() request against the field's declared features (§4.6: "must
// be a subset of the field's features").
func (f Features) Subset(superset Features) bool { return superset&f == f }

// Posting is one (doc, positions) occurrence of a term, per spec.md §3.
type Posting struct {
	Doc       docid.ID
	Freq      uint64
	Positions []position.Value
	Offsets   []attribute.Offset
	Payloads  []attribute.Payload
}

// Term is a (value, ordered postings) pair.
type Term struct {
	Value    bytesref.Ref
	Postings []Posting
}

// SeekResult reports how SeekIterator.Seek landed relative to the
// requested term.
type SeekResult int

const (
	SeekFound SeekResult = iota
	SeekNotFoundLess
	SeekNotFoundGreater
)

// ErrUnsupportedFeature is returned when Postings is asked for a feature
// the field never declared.
var ErrUnsupportedFeature = fmt.Errorf("term: requested feature not declared on field")

// Iterator walks the terms of one field in lexicographic order.
type Iterator interface {
	Value() bytesref.Ref
	Next() bool
	Postings(features Features) (iterator.DocIterator, error)
}

// SeekIterator additionally supports seeking directly to a term value.
type SeekIterator interface {
	Iterator
	Seek(target bytesref.Ref) SeekResult
}

// Reader is the per-field entry point to ordered terms and their
// postings.
type Reader interface {
	Iterator() SeekIterator
	Size() uint64
	DocsCount() uint64
	Min() bytesref.Ref
	Max() bytesref.Ref
	Features() Features
}

// SliceReader is a Reader backed by an in-memory, pre-sorted slice of
// terms. It is the reference implementation used wherever this module
// needs a concrete term dictionary without depending on an on-disk codec.
type SliceReader struct {
	terms     []Term
	features  Features
	docsCount uint64
}

// NewSliceReader builds a Reader from terms, which must already be sorted
// ascending by Value (callers typically build this from a flush buffer or
// a test fixture). docsCount is the number of distinct live documents
// touching this field, used by Reader.DocsCount.
func NewSliceReader(terms []Term, features Features, docsCount uint64) *SliceReader {
	sorted := make([]Term, len(terms))
	copy(sorted, terms)
	sort.Slice(sorted, func(i, j int) bool {
		return bytesref.Less(sorted[i].Value, sorted[j].Value)
	})
	return &SliceReader{terms: sorted, features: features, docsCount: docsCount}
}

func (r *SliceReader) Size() uint64 { return uint64(len(r.terms)) }

func (r *SliceReader) DocsCount() uint64 { return r.docsCount }

func (r *SliceReader) Min() bytesref.Ref {
	if len(r.terms) == 0 {
		return bytesref.Nil
	}
	return r.terms[0].Value
}

func (r *SliceReader) Max() bytesref.Ref {
	if len(r.terms) == 0 {
		return bytesref.Nil
	}
	return r.terms[len(r.terms)-1].Value
}

func (r *SliceReader) Features() Features { return r.features }

func (r *SliceReader) Iterator() SeekIterator {
	return &sliceIterator{reader: r, idx: -1}
}

type sliceIterator struct {
	reader *SliceReader
	idx    int
}

func (it *sliceIterator) Value() bytesref.Ref {
	if it.idx < 0 || it.idx >= len(it.reader.terms) {
		return bytesref.Nil
	}
	return it.reader.terms[it.idx].Value
}

func (it *sliceIterator) Next() bool {
	it.idx++
	return it.idx < len(it.reader.terms)
}

// Seek performs a binary search for target among the reader's terms.
func (it *sliceIterator) Seek(target bytesref.Ref) SeekResult {
	terms := it.reader.terms
	i := sort.Search(len(terms), func(i int) bool {
		return !bytesref.Less(terms[i].Value, target)
	})
	it.idx = i
	if i < len(terms) && bytesref.Equal(terms[i].Value, target) {
		return SeekFound
	}
	if i >= len(terms) {
		// No term >= target remains; the dictionary is exhausted on the
		// low side of target.
		return SeekNotFoundLess
	}
	// Landed on the smallest term strictly greater than target.
	return SeekNotFoundGreater
}

// Postings opens a doc iterator over the current term's postings,
// attaching exactly the requested (and declared) attributes.
func (it *sliceIterator) Postings(features Features) (iterator.DocIterator, error) {
	if it.idx < 0 || it.idx >= len(it.reader.terms) {
		return iterator.NewEmpty(), nil
	}
	if !features.Subset(it.reader.features) {
		return nil, ErrUnsupportedFeature
	}
	return newPostingsIterator(it.reader.terms[it.idx].Postings, features), nil
}
