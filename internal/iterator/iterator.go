// Package iterator defines the doc iterator contract (§4.3): the single
// capability every concrete iterator — bitset-backed, positional,
// combinator, or scorer-wrapped — implements in place of a deep
// polymorphic hierarchy, per Design Notes §9.
package iterator

import (
	"irecore/internal/attribute"
	"irecore/internal/docid"
)

// DocIterator is the capability shared by every doc-id stream in the
// core. Before the first Next/Seek, Value() returns docid.Invalid.
//
// Next advances to the next matching id strictly greater than the
// current value, returning false and setting the value to docid.EOF once
// exhausted. Once EOF is reached, all future calls return false / EOF.
//
// Seek(target) advances to the first id >= target without ever moving
// backward: if target <= Value(), it returns the current value
// unchanged. Seek(EOF) yields EOF. Seek(Invalid) yields Min if the
// iterator has not yet advanced, else the current value (§4.3).
//
// Implementations are not safe for concurrent mutation (§5): a single
// doc iterator belongs to one query thread.
type DocIterator interface {
	Value() docid.ID
	Next() bool
	Seek(target docid.ID) docid.ID
	Attributes() attribute.View
}

// Empty is the sentinel iterator that returns EOF immediately and
// exposes an attribute view holding only a zero Cost, per spec.md §4.3.
type Empty struct {
	value docid.ID
	store *attribute.Store
}

// NewEmpty creates an Empty iterator with a Cost attribute of 0, matching
// scenario S8 in spec.md §8.
func NewEmpty() *Empty {
	store := attribute.NewStore()
	attribute.Emplace(store, attribute.CostKey, attribute.Cost{Estimate: 0})
	return &Empty{value: docid.Invalid, store: store}
}

func (e *Empty) Value() docid.ID { return e.value }

func (e *Empty) Next() bool {
	e.value = docid.EOF
	return false
}

func (e *Empty) Seek(target docid.ID) docid.ID {
	e.value = docid.EOF
	return docid.EOF
}

func (e *Empty) Attributes() attribute.View { return attribute.ViewOf(e.store) }
