package combinator

import (
	"irecore/internal/attribute"
	"irecore/internal/docid"
	"irecore/internal/iterator"
)

// Exclusion computes A \ B: every doc id from A that B does not also
// contain (§4.10). Its cost is A's cost — B is only ever probed with
// Seek, never iterated independently.
type Exclusion struct {
	a, b  iterator.DocIterator
	value docid.ID
	store *attribute.Store
}

// NewExclusion builds A \ B.
func NewExclusion(a, b iterator.DocIterator) *Exclusion {
	e := &Exclusion{a: a, b: b, value: docid.Invalid, store: attribute.NewStore()}
	attribute.Emplace(e.store, attribute.CostKey, attribute.Cost{Estimate: cost(a)})
	return e
}

func (e *Exclusion) Value() docid.ID { return e.value }

func (e *Exclusion) Attributes() attribute.View { return attribute.ViewOf(e.store) }

// skipExcluded advances e.a past any id that B also contains.
func (e *Exclusion) skipExcluded() bool {
	for e.a.Value() != docid.EOF {
		bv := e.b.Value()
		if bv == docid.Invalid || bv < e.a.Value() {
			bv = e.b.Seek(e.a.Value())
		}
		if bv != e.a.Value() {
			e.value = e.a.Value()
			return true
		}
		if !e.a.Next() {
			break
		}
	}
	e.value = docid.EOF
	return false
}

func (e *Exclusion) Next() bool {
	if e.value == docid.EOF {
		return false
	}
	if !e.a.Next() {
		e.value = docid.EOF
		return false
	}
	return e.skipExcluded()
}

func (e *Exclusion) Seek(target docid.ID) docid.ID {
	if e.value == docid.EOF {
		return docid.EOF
	}
	if target != docid.Invalid && target <= e.value && e.value != docid.Invalid {
		return e.value
	}
	if e.a.Seek(target) == docid.EOF {
		e.value = docid.EOF
		return docid.EOF
	}
	e.skipExcluded()
	return e.value
}
