package combinator

import (
	"container/heap"

	"irecore/internal/attribute"
	"irecore/internal/docid"
	"irecore/internal/iterator"
)

// MinMatchDisjunction emits a doc id only when at least MinMatch of its
// inputs agree on it (K-of-N, §4.10). It reuses the same min-heap shape as
// Disjunction but discards groups smaller than the threshold instead of
// treating every shared value as a match.
type MinMatchDisjunction struct {
	h        iterHeap
	minMatch int
	value    docid.ID
	store    *attribute.Store
}

// NewMinMatchDisjunction builds a K-of-N disjunction. minMatch is clamped
// to at least 1 and at most len(inputs).
func NewMinMatchDisjunction(inputs []iterator.DocIterator, minMatch int) *MinMatchDisjunction {
	if minMatch < 1 {
		minMatch = 1
	}
	if minMatch > len(inputs) {
		minMatch = len(inputs)
	}
	d := &MinMatchDisjunction{minMatch: minMatch, value: docid.Invalid, store: attribute.NewStore()}
	for _, in := range inputs {
		if in.Next() {
			d.h = append(d.h, in)
		}
	}
	heap.Init(&d.h)
	d.refreshCost()
	return d
}

func (d *MinMatchDisjunction) refreshCost() {
	var total uint64
	for _, in := range d.h {
		total += cost(in)
	}
	attribute.Emplace(d.store, attribute.CostKey, attribute.Cost{Estimate: total})
}

func (d *MinMatchDisjunction) Value() docid.ID { return d.value }

func (d *MinMatchDisjunction) Attributes() attribute.View { return attribute.ViewOf(d.store) }

// popGroup pops and advances every input tied at the heap's current
// minimum, returning that minimum value and how many inputs shared it.
func (d *MinMatchDisjunction) popGroup() (docid.ID, int) {
	if len(d.h) == 0 {
		return docid.EOF, 0
	}
	v := d.h[0].Value()
	n := 0
	for len(d.h) > 0 && d.h[0].Value() == v {
		n++
		top := d.h[0]
		if top.Next() {
			heap.Fix(&d.h, 0)
		} else {
			heap.Pop(&d.h)
		}
	}
	return v, n
}

func (d *MinMatchDisjunction) Next() bool {
	for len(d.h) > 0 {
		v, n := d.popGroup()
		if n >= d.minMatch {
			d.value = v
			d.refreshCost()
			return true
		}
	}
	d.value = docid.EOF
	return false
}

func (d *MinMatchDisjunction) Seek(target docid.ID) docid.ID {
	if target != docid.Invalid && target <= d.value && d.value != docid.Invalid {
		return d.value
	}
	if target == docid.Invalid {
		if d.value != docid.Invalid {
			return d.value
		}
		target = docid.Min
	}
	for len(d.h) > 0 && d.h[0].Value() < target {
		top := d.h[0]
		if got := top.Seek(target); got != docid.EOF {
			heap.Fix(&d.h, 0)
		} else {
			heap.Pop(&d.h)
		}
	}
	for len(d.h) > 0 {
		if d.h[0].Value() != target {
			// Every remaining input already sits at or past target but
			// not exactly on it; fall back to scanning forward via Next.
			break
		}
		v, n := d.popGroup()
		if n >= d.minMatch {
			d.value = v
			d.refreshCost()
			return d.value
		}
	}
	if d.Next() {
		return d.value
	}
	d.value = docid.EOF
	return docid.EOF
}
