package filter

import (
	"context"

	"irecore/internal/iterator"
	"irecore/internal/order"
	"irecore/internal/segment"
)

// AllFilter matches every live document in every segment.
type AllFilter struct {
	Boost float32
}

// NewAllFilter builds an AllFilter with an identity boost.
func NewAllFilter() *AllFilter { return &AllFilter{Boost: 1.0} }

func (f *AllFilter) Prepare(ctx context.Context, idx IndexReader, ord *order.Order, boost float32) (Prepared, error) {
	var stats []order.Stats
	if ord != nil {
		collectors := ord.PrepareCollectors()
		for _, seg := range idx.Segments() {
			for _, c := range collectors {
				c.CollectField(uint64(seg.LiveDocsCount()), uint64(seg.LiveDocsCount()))
			}
		}
		stats = make([]order.Stats, len(collectors))
		for i, c := range collectors {
			stats[i] = c.Finish()
		}
	}
	return &preparedAll{stats: stats, boost: boost * f.Boost}, nil
}

type preparedAll struct {
	stats []order.Stats
	boost float32
}

func (p *preparedAll) Execute(seg *segment.Reader, ord *order.Order) (iterator.DocIterator, error) {
	it := seg.LiveIterator()
	if ord == nil {
		return applyBoost(it, p.boost), nil
	}
	// AllFilter has no single field to score against; scorers that need
	// one (e.g. BM25) still prepare against corpus-wide stats, just with
	// an empty field name.
	prepared, err := ord.PrepareScorers(seg, "", p.stats, it.Attributes())
	if err != nil {
		return nil, err
	}
	return applyBoost(attachScore(it, prepared, ord), p.boost), nil
}

// EmptyFilter matches no documents.
type EmptyFilter struct{}

// NewEmptyFilter builds an EmptyFilter.
func NewEmptyFilter() *EmptyFilter { return &EmptyFilter{} }

func (f *EmptyFilter) Prepare(ctx context.Context, idx IndexReader, ord *order.Order, boost float32) (Prepared, error) {
	return preparedEmpty{}, nil
}

type preparedEmpty struct{}

func (preparedEmpty) Execute(seg *segment.Reader, ord *order.Order) (iterator.DocIterator, error) {
	return iterator.NewEmpty(), nil
}
