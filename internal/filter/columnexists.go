package filter

import (
	"context"

	"irecore/internal/attribute"
	"irecore/internal/docid"
	"irecore/internal/iterator"
	"irecore/internal/order"
	"irecore/internal/segment"
)

// ColumnExistsFilter matches documents that carry a value in a given
// columnstore field, grounding spec.md's "by-column-existence" primitive
// that the distillation named but never elaborated (§4.9a).
type ColumnExistsFilter struct {
	Column string
	Boost  float32
}

// NewColumnExistsFilter builds a ColumnExistsFilter with an identity boost.
func NewColumnExistsFilter(column string) *ColumnExistsFilter {
	return &ColumnExistsFilter{Column: column, Boost: 1.0}
}

func (f *ColumnExistsFilter) Prepare(ctx context.Context, idx IndexReader, ord *order.Order, boost float32) (Prepared, error) {
	return &preparedColumnExists{column: f.Column, boost: boost * f.Boost}, nil
}

type preparedColumnExists struct {
	column string
	boost  float32
}

func (p *preparedColumnExists) Execute(seg *segment.Reader, ord *order.Order) (iterator.DocIterator, error) {
	col, ok := seg.Column(p.column)
	if !ok {
		return iterator.NewEmpty(), nil
	}
	it := newColumnExistsIterator(seg, col)
	return applyBoost(it, p.boost), nil
}

// columnExistsIterator walks a segment's live local doc ids, in order,
// emitting only those for which col has a value.
type columnExistsIterator struct {
	seg   *segment.Reader
	col   segment.Column
	next  uint32
	value docid.ID
	store *attribute.Store
}

func newColumnExistsIterator(seg *segment.Reader, col segment.Column) *columnExistsIterator {
	store := attribute.NewStore()
	attribute.Emplace(store, attribute.CostKey, attribute.Cost{Estimate: uint64(seg.LiveDocsCount())})
	return &columnExistsIterator{seg: seg, col: col, next: 0, value: docid.Invalid, store: store}
}

func (it *columnExistsIterator) Value() docid.ID { return it.value }

func (it *columnExistsIterator) Attributes() attribute.View { return attribute.ViewOf(it.store) }

func (it *columnExistsIterator) Next() bool {
	if it.value == docid.EOF {
		return false
	}
	for it.next < it.seg.DocCount() {
		local := it.next
		it.next++
		if !it.seg.Live(local) {
			continue
		}
		if _, ok := it.col.Value(local); ok {
			it.value = docid.Min + docid.ID(local)
			return true
		}
	}
	it.value = docid.EOF
	return false
}

func (it *columnExistsIterator) Seek(target docid.ID) docid.ID {
	if it.value == docid.EOF {
		return docid.EOF
	}
	if it.value != docid.Invalid && target <= it.value {
		return it.value
	}
	if target == docid.Invalid {
		if it.value != docid.Invalid {
			return it.value
		}
		target = docid.Min
	}
	it.next = target
	if it.Next() {
		return it.value
	}
	return docid.EOF
}
