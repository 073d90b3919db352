package combinator

import (
	"container/heap"

	"irecore/internal/attribute"
	"irecore/internal/docid"
	"irecore/internal/iterator"
)

// Disjunction is logical OR over its inputs, merged by a min-heap keyed on
// each input's current value (§4.10).
type Disjunction struct {
	h     iterHeap
	value docid.ID
	store *attribute.Store
}

// NewDisjunction builds a Disjunction over inputs. Inputs already
// exhausted (never produce a value) are dropped from the heap.
func NewDisjunction(inputs []iterator.DocIterator) *Disjunction {
	d := &Disjunction{value: docid.Invalid, store: attribute.NewStore()}
	for _, in := range inputs {
		if in.Next() {
			d.h = append(d.h, in)
		}
	}
	heap.Init(&d.h)
	d.refreshCost()
	return d
}

func (d *Disjunction) refreshCost() {
	var total uint64
	for _, in := range d.h {
		total += cost(in)
	}
	attribute.Emplace(d.store, attribute.CostKey, attribute.Cost{Estimate: total})
}

func (d *Disjunction) Value() docid.ID { return d.value }

func (d *Disjunction) Attributes() attribute.View { return attribute.ViewOf(d.store) }

// Next pops every input currently equal to the heap's minimum (they
// constitute the current match), advances each past it, and re-pushes
// those still live.
func (d *Disjunction) Next() bool {
	if len(d.h) == 0 {
		d.value = docid.EOF
		return false
	}
	d.value = d.h[0].Value()
	for len(d.h) > 0 && d.h[0].Value() == d.value {
		top := d.h[0]
		if top.Next() {
			heap.Fix(&d.h, 0)
		} else {
			heap.Pop(&d.h)
		}
	}
	d.refreshCost()
	return true
}

// Seek advances every input to at least target, then consumes the group of
// inputs sitting on the new minimum the same way Next does, so a following
// Next moves strictly past the returned id.
func (d *Disjunction) Seek(target docid.ID) docid.ID {
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
	if len(d.h) == 0 {
		d.refreshCost()
		d.value = docid.EOF
		return docid.EOF
	}
	d.value = d.h[0].Value()
	for len(d.h) > 0 && d.h[0].Value() == d.value {
		top := d.h[0]
		if top.Next() {
			heap.Fix(&d.h, 0)
		} else {
			heap.Pop(&d.h)
		}
	}
	d.refreshCost()
	return d.value
}

// iterHeap is a min-heap of doc iterators ordered by current value.
type iterHeap []iterator.DocIterator

func (h iterHeap) Len() int           { return len(h) }
func (h iterHeap) Less(i, j int) bool { return h[i].Value() < h[j].Value() }
func (h iterHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *iterHeap) Push(x any)        { *h = append(*h, x.(iterator.DocIterator)) }
func (h *iterHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
