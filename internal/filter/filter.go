// Package filter implements query preparation and execution (§4.9): a
// Filter captures one query-time predicate (term/range/prefix/wildcard/
// phrase/boolean/...), Prepare resolves it once against the whole index
// (corpus-statistics collection, term-dictionary expansion), and the
// resulting Prepared value is executed once per segment to produce a doc
// iterator combinators can compose over.
package filter

import (
	"context"

	"irecore/internal/iterator"
	"irecore/internal/order"
	"irecore/internal/segment"
)

// IndexReader is the minimal view over an index a Filter needs to
// prepare: the ordered set of segments to fan out corpus-statistics
// collection across. The concrete index package implements this.
type IndexReader interface {
	Segments() []*segment.Reader
}

// Filter is a query-time predicate, not yet bound to any segment.
type Filter interface {
	// Prepare resolves the filter against idx: collecting corpus-wide
	// statistics for ord's scorers and (for term-expanding filters like
	// Prefix/Wildcard/Fuzzy) the set of matching terms. boost scales
	// whatever score the prepared filter eventually produces.
	Prepare(ctx context.Context, idx IndexReader, ord *order.Order, boost float32) (Prepared, error)
}

// Prepared is a Filter bound to the statistics gathered during Prepare,
// ready to be executed against any one segment of the index it was
// prepared from.
type Prepared interface {
	// Execute returns a doc iterator over seg's matches, with ord's score
	// attached as a lazily-evaluated Score attribute when ord is non-nil.
	Execute(seg *segment.Reader, ord *order.Order) (iterator.DocIterator, error)
}
