package combinator

import (
	"irecore/internal/attribute"
	"irecore/internal/docid"
)

// sliceDocIterator is a minimal DocIterator over a plain ascending slice
// of doc ids, used only to exercise the combinators in isolation from any
// concrete term/segment machinery.
type sliceDocIterator struct {
	ids   []docid.ID
	idx   int
	value docid.ID
	store *attribute.Store
}

func newSliceDocIterator(ids []docid.ID) *sliceDocIterator {
	store := attribute.NewStore()
	attribute.Emplace(store, attribute.CostKey, attribute.Cost{Estimate: uint64(len(ids))})
	return &sliceDocIterator{ids: ids, idx: -1, value: docid.Invalid, store: store}
}

func (it *sliceDocIterator) Value() docid.ID { return it.value }

func (it *sliceDocIterator) Attributes() attribute.View { return attribute.ViewOf(it.store) }

func (it *sliceDocIterator) Next() bool {
	if it.value == docid.EOF {
		return false
	}
	it.idx++
	if it.idx >= len(it.ids) {
		it.value = docid.EOF
		return false
	}
	it.value = it.ids[it.idx]
	return true
}

func (it *sliceDocIterator) Seek(target docid.ID) docid.ID {
	if it.value == docid.EOF {
		return docid.EOF
	}
	if target != docid.Invalid && target <= it.value && it.idx >= 0 {
		return it.value
	}
	for it.idx+1 < len(it.ids) {
		it.idx++
		if it.ids[it.idx] >= target || target == docid.Invalid {
			it.value = it.ids[it.idx]
			return it.value
		}
	}
	it.idx = len(it.ids)
	it.value = docid.EOF
	return docid.EOF
}

func drain(it interface {
	Value() docid.ID
	Next() bool
}) []docid.ID {
	var out []docid.ID
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}
