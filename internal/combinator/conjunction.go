// Package combinator implements the doc-iterator algebra (§4.10):
// Conjunction, Disjunction, min-match (K-of-N) disjunction, Exclusion, and
// Boost — all composing over the iterator.DocIterator contract so a
// combinator is itself a valid input to another combinator.
package combinator

import (
	"sort"

	"irecore/internal/attribute"
	"irecore/internal/docid"
	"irecore/internal/iterator"
)

// Conjunction is logical AND over its inputs: it emits a doc id only when
// every input is positioned on it. Inputs are sorted ascending by cost at
// construction so the cheapest one leads (§4.10).
type Conjunction struct {
	inputs []iterator.DocIterator
	lead   iterator.DocIterator
	value  docid.ID
	store  *attribute.Store
	cost   uint64
}

// NewConjunction builds a Conjunction over inputs, which must be
// non-empty. A single empty input collapses the whole conjunction: its
// Cost is 0 and it reports EOF immediately.
func NewConjunction(inputs []iterator.DocIterator) *Conjunction {
	sorted := make([]iterator.DocIterator, len(inputs))
	copy(sorted, inputs)
	sort.Slice(sorted, func(i, j int) bool {
		return cost(sorted[i]) < cost(sorted[j])
	})

	c := &Conjunction{
		inputs: sorted,
		lead:   sorted[0],
		value:  docid.Invalid,
		store:  attribute.NewStore(),
		cost:   cost(sorted[0]),
	}
	attribute.Emplace(c.store, attribute.CostKey, attribute.Cost{Estimate: c.cost})
	return c
}

func cost(it iterator.DocIterator) uint64 {
	if c := attribute.ViewGet(it.Attributes(), attribute.CostKey); c != nil {
		return c.Estimate
	}
	return 0
}

func (c *Conjunction) Value() docid.ID { return c.value }

func (c *Conjunction) Attributes() attribute.View { return attribute.ViewOf(c.store) }

func (c *Conjunction) Next() bool {
	if c.value == docid.EOF {
		return false
	}
	if !c.lead.Next() {
		c.value = docid.EOF
		return false
	}
	return c.align(c.lead.Value())
}

func (c *Conjunction) Seek(target docid.ID) docid.ID {
	if c.value == docid.EOF {
		return docid.EOF
	}
	if target != docid.Invalid && target <= c.value && c.value != docid.Invalid {
		return c.value
	}
	got := c.lead.Seek(target)
	if got == docid.EOF {
		c.value = docid.EOF
		return docid.EOF
	}
	if !c.align(got) {
		return docid.EOF
	}
	return c.value
}

// align seeks every non-lead input to target, re-seeking the lead whenever
// an input lands past it, until every input agrees on one doc id.
func (c *Conjunction) align(target docid.ID) bool {
	for {
		agreed := true
		for _, in := range c.inputs {
			if in == c.lead {
				continue
			}
			got := in.Seek(target)
			if got == docid.EOF {
				c.value = docid.EOF
				return false
			}
			if got > target {
				target = c.lead.Seek(got)
				if target == docid.EOF {
					c.value = docid.EOF
					return false
				}
				agreed = false
				break
			}
		}
		if agreed {
			c.value = target
			return true
		}
	}
}
