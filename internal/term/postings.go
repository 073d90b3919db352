package term

import (
	"irecore/internal/attribute"
	"irecore/internal/docid"
	"irecore/internal/position"
)

// postingsIterator is the DocIterator produced by Iterator.Postings: a
// plain ascending scan over one term's posting list, attaching frequency,
// document, and (when requested) a lazily-built position sub-iterator.
type postingsIterator struct {
	postings []Posting
	features Features
	idx      int
	value    docid.ID
	store    *attribute.Store
}

func newPostingsIterator(postings []Posting, features Features) *postingsIterator {
	store := attribute.NewStore()
	attribute.Emplace(store, attribute.CostKey, attribute.Cost{Estimate: uint64(len(postings))})
	if features.Has(FeatureFrequency) {
		attribute.Add(store, attribute.FrequencyKey)
	}
	attribute.Add(store, attribute.DocumentKey)
	if features.Has(FeaturePositions) {
		attribute.Add(store, attribute.PositionKey)
	}
	return &postingsIterator{
		postings: postings,
		features: features,
		idx:      -1,
		value:    docid.Invalid,
		store:    store,
	}
}

func (it *postingsIterator) Value() docid.ID { return it.value }

func (it *postingsIterator) Attributes() attribute.View { return attribute.ViewOf(it.store) }

func (it *postingsIterator) sync() {
	p := it.postings[it.idx]
	it.value = p.Doc
	attribute.Emplace(it.store, attribute.DocumentKey, attribute.Document{Value: p.Doc})
	if it.features.Has(FeatureFrequency) {
		attribute.Emplace(it.store, attribute.FrequencyKey, attribute.Frequency{Value: p.Freq})
	}
	if it.features.Has(FeaturePositions) {
		var offsets []attribute.Offset
		var payloads []attribute.Payload
		if it.features.Has(FeatureOffsets) {
			offsets = p.Offsets
		}
		if it.features.Has(FeaturePayloads) {
			payloads = p.Payloads
		}
		attribute.Emplace(it.store, attribute.PositionKey, attribute.Position{
			Value: position.NewIterator(p.Positions, offsets, payloads),
		})
	}
}

func (it *postingsIterator) Next() bool {
	if it.value == docid.EOF {
		return false
	}
	it.idx++
	if it.idx >= len(it.postings) {
		it.idx = len(it.postings)
		it.value = docid.EOF
		return false
	}
	it.sync()
	return true
}

func (it *postingsIterator) Seek(target docid.ID) docid.ID {
	if it.value == docid.EOF {
		return docid.EOF
	}
	if it.idx >= 0 && (target == docid.Invalid || target <= it.value) {
		return it.value
	}
	// Linear scan forward; posting lists here are in-memory test/reference
	// fixtures, not large enough to warrant a skip-list search.
	for it.idx+1 < len(it.postings) {
		it.idx++
		if it.postings[it.idx].Doc >= target || target == docid.Invalid {
			it.sync()
			return it.value
		}
	}
	it.idx = len(it.postings)
	it.value = docid.EOF
	return docid.EOF
}
