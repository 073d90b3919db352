package filter

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"irecore/internal/attribute"
	"irecore/internal/bytesref"
	"irecore/internal/combinator"
	"irecore/internal/iterator"
	"irecore/internal/order"
	"irecore/internal/segment"
	"irecore/internal/term"
)

// expandTerms walks fr's term dictionary in ascending order, returning
// every value match accepts. Used by the multi-term filters (range,
// prefix, wildcard, fuzzy) that resolve to a set of terms rather than one.
func expandTerms(fr term.Reader, match func(bytesref.Ref) bool) []bytesref.Ref {
	var out []bytesref.Ref
	it := fr.Iterator()
	for it.Next() {
		if v := it.Value(); match(v) {
			out = append(out, v.Clone())
		}
	}
	return out
}

// multiTermStats collects corpus statistics for a multi-term filter: the
// union of every matching term's postings, across every segment, folded
// into one aggregate docFreq/totalTermFreq per §4.9a's treatment of
// prefix/wildcard/fuzzy/range as "one resolved disjunction of terms".
func multiTermStats(ctx context.Context, segs []*segment.Reader, field string, match func(bytesref.Ref) bool, ord *order.Order) ([]order.Stats, error) {
	if ord == nil {
		return nil, nil
	}
	collectors := ord.PrepareCollectors()
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(16)
	for _, seg := range segs {
		seg := seg
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fr, ok := seg.Field(field)
			if !ok {
				return nil
			}
			var docFreq, totalTF uint64
			for _, v := range expandTerms(fr, match) {
				it := fr.Iterator()
				if it.Seek(v) != term.SeekFound {
					continue
				}
				features := term.FeatureFrequency & fr.Features()
				postings, err := it.Postings(features)
				if err != nil {
					return err
				}
				for postings.Next() {
					docFreq++
					if fq := attribute.ViewGet(postings.Attributes(), attribute.FrequencyKey); fq != nil {
						totalTF += fq.Value
					}
				}
			}

			mu.Lock()
			defer mu.Unlock()
			for _, c := range collectors {
				c.CollectField(fr.DocsCount(), fr.DocsCount())
				c.CollectTerm(docFreq, totalTF)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := make([]order.Stats, len(collectors))
	for i, c := range collectors {
		stats[i] = c.Finish()
	}
	return stats, nil
}

// executeMultiTerm resolves match against seg's field dictionary and
// returns a Disjunction over all matching terms' postings (Empty if
// none match), with ord's score attached to the merged iterator.
func executeMultiTerm(seg *segment.Reader, field string, match func(bytesref.Ref) bool, stats []order.Stats, ord *order.Order, boost float32) (iterator.DocIterator, error) {
	fr, ok := seg.Field(field)
	if !ok {
		return iterator.NewEmpty(), nil
	}
	matches := expandTerms(fr, match)
	if len(matches) == 0 {
		return iterator.NewEmpty(), nil
	}

	features := term.FeatureFrequency & fr.Features()
	var inputs []iterator.DocIterator
	for _, v := range matches {
		it := fr.Iterator()
		if it.Seek(v) != term.SeekFound {
			continue
		}
		postings, err := it.Postings(features)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, postings)
	}
	if len(inputs) == 0 {
		return iterator.NewEmpty(), nil
	}

	var merged iterator.DocIterator = inputs[0]
	if len(inputs) > 1 {
		merged = combinator.NewDisjunction(inputs)
	}
	if ord != nil {
		prepared, err := ord.PrepareScorers(seg, field, stats, merged.Attributes())
		if err != nil {
			return nil, err
		}
		merged = attachScore(merged, prepared, ord)
	}
	return applyBoost(merged, boost), nil
}
