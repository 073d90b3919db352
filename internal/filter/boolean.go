package filter

import (
	"context"
	"fmt"

	"irecore/internal/combinator"
	"irecore/internal/iterator"
	"irecore/internal/order"
	"irecore/internal/segment"
)

// Occur is how a BooleanFilter clause participates in the match.
type Occur int

const (
	// Must requires the clause to match (conjunction member).
	Must Occur = iota
	// Should contributes to the min-match disjunction group; at least
	// MinimumShouldMatch of them must match unless Musts are also
	// present, in which case the Musts alone decide the match and the
	// Shoulds are not part of the resulting iterator (so they add no
	// score either).
	Should
	// MustNot excludes documents the clause matches.
	MustNot
)

// Clause pairs a sub-filter with how it participates in a BooleanFilter.
type Clause struct {
	Occur  Occur
	Filter Filter
}

// BooleanFilter composes Musts (AND), Shoulds (min-match OR), and
// MustNots (AND NOT) — grounded in the teacher's BooleanQuery/BooleanOp
// (§4.9a).
type BooleanFilter struct {
	Clauses            []Clause
	MinimumShouldMatch int
	Boost              float32
}

// NewBooleanFilter builds a BooleanFilter with an identity boost and a
// MinimumShouldMatch of 1 (ignored when Musts are present).
func NewBooleanFilter(clauses ...Clause) *BooleanFilter {
	return &BooleanFilter{Clauses: clauses, MinimumShouldMatch: 1, Boost: 1.0}
}

func (f *BooleanFilter) Prepare(ctx context.Context, idx IndexReader, ord *order.Order, boost float32) (Prepared, error) {
	p := &preparedBoolean{minimumShouldMatch: f.MinimumShouldMatch, boost: boost * f.Boost}
	for _, c := range f.Clauses {
		sub, err := c.Filter.Prepare(ctx, idx, ord, 1.0)
		if err != nil {
			return nil, fmt.Errorf("filter: boolean clause: %w", err)
		}
		switch c.Occur {
		case Must:
			p.musts = append(p.musts, sub)
		case Should:
			p.shoulds = append(p.shoulds, sub)
		case MustNot:
			p.mustNots = append(p.mustNots, sub)
		default:
			return nil, fmt.Errorf("filter: unknown occur value %d", c.Occur)
		}
	}
	return p, nil
}

type preparedBoolean struct {
	musts, shoulds, mustNots []Prepared
	minimumShouldMatch       int
	boost                    float32
}

func (p *preparedBoolean) Execute(seg *segment.Reader, ord *order.Order) (iterator.DocIterator, error) {
	positive, err := p.positiveIterator(seg, ord)
	if err != nil {
		return nil, err
	}

	if len(p.mustNots) > 0 {
		excluded, err := executeAll(p.mustNots, seg, ord)
		if err != nil {
			return nil, err
		}
		if len(excluded) > 0 {
			negative := excluded[0]
			if len(excluded) > 1 {
				negative = combinator.NewDisjunction(excluded)
			}
			positive = combinator.NewExclusion(positive, negative)
		}
	}
	return applyBoost(positive, p.boost), nil
}

// positiveIterator combines Musts and Shoulds: the conjunction of Musts
// when any are present, otherwise a min-match group of Shoulds, or an
// empty iterator when both are empty (so a filter with only MustNot
// clauses matches nothing).
func (p *preparedBoolean) positiveIterator(seg *segment.Reader, ord *order.Order) (iterator.DocIterator, error) {
	musts, err := executeAll(p.musts, seg, ord)
	if err != nil {
		return nil, err
	}
	shoulds, err := executeAll(p.shoulds, seg, ord)
	if err != nil {
		return nil, err
	}

	switch {
	case len(musts) == 0 && len(shoulds) == 0:
		return iterator.NewEmpty(), nil
	case len(musts) > 0 && len(shoulds) == 0:
		return conjunctionOrSingle(musts), nil
	case len(musts) == 0 && len(shoulds) > 0:
		return minMatchOrSingle(shoulds, p.minimumShouldMatch), nil
	default:
		// Once a Must is present the Musts alone decide the match
		// (§4.9a): Shoulds do not gate it, MinimumShouldMatch is not
		// applied, and the Should iterators are left out of the result.
		return conjunctionOrSingle(musts), nil
	}
}

func executeAll(prepared []Prepared, seg *segment.Reader, ord *order.Order) ([]iterator.DocIterator, error) {
	out := make([]iterator.DocIterator, 0, len(prepared))
	for _, p := range prepared {
		it, err := p.Execute(seg, ord)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func conjunctionOrSingle(its []iterator.DocIterator) iterator.DocIterator {
	if len(its) == 1 {
		return its[0]
	}
	return combinator.NewConjunction(its)
}

func minMatchOrSingle(its []iterator.DocIterator, minMatch int) iterator.DocIterator {
	if len(its) == 1 {
		return its[0]
	}
	return combinator.NewMinMatchDisjunction(its, minMatch)
}
