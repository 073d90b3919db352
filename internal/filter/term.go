package filter

import (
	"context"

	"irecore/internal/bytesref"
	"irecore/internal/iterator"
	"irecore/internal/order"
	"irecore/internal/segment"
	"irecore/internal/term"
)

// TermFilter matches documents whose field contains exactly Value.
type TermFilter struct {
	Field string
	Value bytesref.Ref
	Boost float32
}

// NewTermFilter builds a TermFilter with an identity boost.
func NewTermFilter(field string, value bytesref.Ref) *TermFilter {
	return &TermFilter{Field: field, Value: value, Boost: 1.0}
}

func (f *TermFilter) Prepare(ctx context.Context, idx IndexReader, ord *order.Order, boost float32) (Prepared, error) {
	stats, err := collectTermStats(ctx, idx.Segments(), f.Field, f.Value, ord)
	if err != nil {
		return nil, err
	}
	return &preparedTerm{field: f.Field, value: f.Value, stats: stats, boost: boost * f.Boost}, nil
}

// preparedTerm is Prepared for TermFilter: it carries the corpus
// statistics gathered once in Prepare and re-seeks each segment's term
// dictionary independently in Execute.
type preparedTerm struct {
	field string
	value bytesref.Ref
	stats []order.Stats
	boost float32
}

func (p *preparedTerm) Execute(seg *segment.Reader, ord *order.Order) (iterator.DocIterator, error) {
	fr, ok := seg.Field(p.field)
	if !ok {
		return iterator.NewEmpty(), nil
	}
	it := fr.Iterator()
	if it.Seek(p.value) != term.SeekFound {
		return iterator.NewEmpty(), nil
	}
	features := term.FeatureFrequency & fr.Features()
	postings, err := it.Postings(features)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return applyBoost(postings, p.boost), nil
	}
	prepared, err := ord.PrepareScorers(seg, p.field, p.stats, postings.Attributes())
	if err != nil {
		return nil, err
	}
	return applyBoost(attachScore(postings, prepared, ord), p.boost), nil
}
