package filter

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"irecore/internal/attribute"
	"irecore/internal/bytesref"
	"irecore/internal/order"
	"irecore/internal/segment"
	"irecore/internal/term"
)

// collectTermStats fans out, one goroutine per segment (bounded, per
// §5's "per-segment prepare work may run independently and concurrently"),
// collecting field-level and single-term corpus statistics for every
// scorer in ord. A segment missing the field, or not containing value,
// simply contributes nothing. Returns nil when ord is nil.
func collectTermStats(ctx context.Context, segs []*segment.Reader, field string, value bytesref.Ref, ord *order.Order) ([]order.Stats, error) {
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
			if !value.IsNil() {
				it := fr.Iterator()
				if it.Seek(value) == term.SeekFound {
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
			}

			mu.Lock()
			defer mu.Unlock()
			for _, c := range collectors {
				c.CollectField(fr.DocsCount(), fr.DocsCount())
				if !value.IsNil() {
					c.CollectTerm(docFreq, totalTF)
				}
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
