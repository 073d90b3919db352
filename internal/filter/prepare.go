package filter

import (
	"irecore/internal/attribute"
	"irecore/internal/combinator"
	"irecore/internal/docid"
	"irecore/internal/iterator"
	"irecore/internal/order"
)

// scoredIterator wraps an inner doc iterator, attaching a Score attribute
// computed by scoreFn while passing inner's Cost, Frequency, Document,
// Position and Norm attributes through unchanged; inner's other
// attributes are not exposed. Used by every filter that prepares an Order.
type scoredIterator struct {
	inner   iterator.DocIterator
	scoreFn attribute.ScoreFn
	store   *attribute.Store
}

func newScoredIterator(inner iterator.DocIterator, scoreFn attribute.ScoreFn) *scoredIterator {
	s := &scoredIterator{inner: inner, scoreFn: scoreFn, store: attribute.NewStore()}
	s.rebuild()
	return s
}

func (s *scoredIterator) rebuild() {
	s.store.Clear()
	passThroughAttributes(s.store, s.inner.Attributes())
	if s.scoreFn != nil {
		attribute.Emplace(s.store, attribute.ScoreKey, attribute.Score{Evaluate: s.scoreFn})
	}
}

// passThroughAttributes copies the attributes a scorer or combinator
// might need to read out of src into dst, leaving dst's own Score (if
// any) for the caller to set separately.
func passThroughAttributes(dst *attribute.Store, src attribute.View) {
	if c := attribute.ViewGet(src, attribute.CostKey); c != nil {
		attribute.Emplace(dst, attribute.CostKey, *c)
	}
	if f := attribute.ViewGet(src, attribute.FrequencyKey); f != nil {
		attribute.Emplace(dst, attribute.FrequencyKey, *f)
	}
	if d := attribute.ViewGet(src, attribute.DocumentKey); d != nil {
		attribute.Emplace(dst, attribute.DocumentKey, *d)
	}
	if p := attribute.ViewGet(src, attribute.PositionKey); p != nil {
		attribute.Emplace(dst, attribute.PositionKey, *p)
	}
	if n := attribute.ViewGet(src, attribute.NormKey); n != nil {
		attribute.Emplace(dst, attribute.NormKey, *n)
	}
}

func (s *scoredIterator) Value() docid.ID { return s.inner.Value() }

func (s *scoredIterator) Attributes() attribute.View { return attribute.ViewOf(s.store) }

func (s *scoredIterator) Next() bool {
	ok := s.inner.Next()
	s.rebuild()
	return ok
}

func (s *scoredIterator) Seek(target docid.ID) docid.ID {
	v := s.inner.Seek(target)
	s.rebuild()
	return v
}

// attachScore binds ord's prepared scorers to inner, returning inner
// unchanged when ord is nil (a pure filter with no ranking requested).
func attachScore(inner iterator.DocIterator, prepared []order.PreparedScorer, ord *order.Order) iterator.DocIterator {
	if ord == nil || len(prepared) == 0 {
		return inner
	}
	return newScoredIterator(inner, ord.ScoreFn(prepared))
}

// applyBoost wraps it in combinator.Boost unless factor is the identity.
func applyBoost(it iterator.DocIterator, factor float32) iterator.DocIterator {
	if factor == 1.0 {
		return it
	}
	return combinator.NewBoost(it, factor)
}
