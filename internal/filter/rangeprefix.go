package filter

import (
	"context"

	"irecore/internal/bytesref"
	"irecore/internal/iterator"
	"irecore/internal/order"
	"irecore/internal/segment"
)

// RangeFilter matches documents whose field term falls within
// [Lower, Upper] (bounds inclusive/exclusive per the flags). A nil
// (bytesref.Nil) Lower or Upper means that side is unbounded.
type RangeFilter struct {
	Field                          string
	Lower, Upper                   bytesref.Ref
	LowerInclusive, UpperInclusive bool
	Boost                          float32
}

// NewRangeFilter builds a RangeFilter with an identity boost.
func NewRangeFilter(field string, lower, upper bytesref.Ref, lowerInclusive, upperInclusive bool) *RangeFilter {
	return &RangeFilter{
		Field: field, Lower: lower, Upper: upper,
		LowerInclusive: lowerInclusive, UpperInclusive: upperInclusive,
		Boost: 1.0,
	}
}

func (f *RangeFilter) match(v bytesref.Ref) bool {
	if !f.Lower.IsNil() {
		c := bytesref.Compare(v, f.Lower)
		if c < 0 || (c == 0 && !f.LowerInclusive) {
			return false
		}
	}
	if !f.Upper.IsNil() {
		c := bytesref.Compare(v, f.Upper)
		if c > 0 || (c == 0 && !f.UpperInclusive) {
			return false
		}
	}
	return true
}

func (f *RangeFilter) Prepare(ctx context.Context, idx IndexReader, ord *order.Order, boost float32) (Prepared, error) {
	stats, err := multiTermStats(ctx, idx.Segments(), f.Field, f.match, ord)
	if err != nil {
		return nil, err
	}
	return &preparedMultiTerm{field: f.Field, match: f.match, stats: stats, boost: boost * f.Boost}, nil
}

// PrefixFilter matches documents whose field term begins with Prefix.
type PrefixFilter struct {
	Field  string
	Prefix bytesref.Ref
	Boost  float32
}

// NewPrefixFilter builds a PrefixFilter with an identity boost.
func NewPrefixFilter(field string, prefix bytesref.Ref) *PrefixFilter {
	return &PrefixFilter{Field: field, Prefix: prefix, Boost: 1.0}
}

func (f *PrefixFilter) match(v bytesref.Ref) bool { return bytesref.StartsWith(v, f.Prefix) }

func (f *PrefixFilter) Prepare(ctx context.Context, idx IndexReader, ord *order.Order, boost float32) (Prepared, error) {
	stats, err := multiTermStats(ctx, idx.Segments(), f.Field, f.match, ord)
	if err != nil {
		return nil, err
	}
	return &preparedMultiTerm{field: f.Field, match: f.match, stats: stats, boost: boost * f.Boost}, nil
}

// preparedMultiTerm is the shared Prepared implementation for any filter
// that resolves to a set of matching terms (range, prefix, wildcard,
// fuzzy): Execute re-expands match against each segment's own dictionary
// and merges the results with a Disjunction.
type preparedMultiTerm struct {
	field string
	match func(bytesref.Ref) bool
	stats []order.Stats
	boost float32
}

func (p *preparedMultiTerm) Execute(seg *segment.Reader, ord *order.Order) (iterator.DocIterator, error) {
	return executeMultiTerm(seg, p.field, p.match, p.stats, ord, p.boost)
}
