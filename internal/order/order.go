// Package order implements the scorer/order system (§4.8): fixed-size
// score buckets, corpus-statistics collection during preparation, and the
// per-posting scorer that a prepared filter attaches to a doc iterator's
// attribute view as a lazily-evaluated score function.
package order

import (
	"irecore/internal/attribute"
	"irecore/internal/segment"
)

// Stats is the opaque corpus statistics a Scorer's Collector produces and
// that same Scorer's PrepareScorer later consumes. Its shape is private
// to each scorer implementation.
type Stats any

// Collector accumulates corpus-wide statistics during filter preparation
// (§4.9's prepare pass), before any segment is actually scored.
type Collector interface {
	// CollectField folds in one segment's aggregate field statistics
	// (total live docs carrying the field, and the summed field length
	// across them, used by length-normalizing scorers like BM25). The
	// filters in internal/filter pass the document count for both
	// arguments, since the term dictionary records no field lengths.
	CollectField(liveDocs uint64, sumFieldLength uint64)

	// CollectTerm folds in one resolved term's corpus-wide document
	// frequency and total term frequency.
	CollectTerm(docFreq uint64, totalTermFreq uint64)

	// Finish closes the collector and returns the statistics snapshot
	// PrepareScorer will be called with.
	Finish() Stats
}

// PreparedScorer is scorer state bound to one term's postings within one
// segment — ready to score whatever document the owning doc iterator is
// currently positioned on.
type PreparedScorer interface {
	// Score writes the current document's score into buf, which is
	// exactly BucketSize() bytes. Called only when the attached score
	// attribute's Evaluate is invoked — it may never be called at all.
	Score(buf []byte)
}

// Scorer is one component of a composed Order.
type Scorer interface {
	// BucketSize is the fixed number of bytes this scorer writes.
	BucketSize() int

	// PrepareCollector starts a fresh corpus-statistics accumulation for
	// one prepare() pass.
	PrepareCollector() Collector

	// PrepareScorer instantiates per-posting scoring state for one term
	// within one segment's field, given the corpus statistics gathered
	// during preparation and the doc iterator's attribute view (typically
	// read for Frequency/Norm/Document at scoring time).
	PrepareScorer(seg *segment.Reader, field string, stats Stats, attrs attribute.View) (PreparedScorer, error)

	// Less is a strict weak order over two buckets of this scorer's own
	// encoding.
	Less(a, b []byte) bool
}

// Order is an ordered composition of scorers. Buckets are laid out
// contiguously in declaration order within a flat score buffer.
type Order struct {
	scorers []Scorer
	offsets []int
	size    int
}

// New composes scorers, left to right, into one Order.
func New(scorers ...Scorer) *Order {
	o := &Order{scorers: scorers, offsets: make([]int, len(scorers))}
	off := 0
	for i, s := range scorers {
		o.offsets[i] = off
		off += s.BucketSize()
	}
	o.size = off
	return o
}

// BucketSize returns the total flat buffer size this order requires.
func (o *Order) BucketSize() int { return o.size }

// NewBuffer allocates a zeroed score buffer of the right size.
func (o *Order) NewBuffer() []byte { return make([]byte, o.size) }

// PrepareCollectors starts one collector per scorer, in order.
func (o *Order) PrepareCollectors() []Collector {
	cs := make([]Collector, len(o.scorers))
	for i, s := range o.scorers {
		cs[i] = s.PrepareCollector()
	}
	return cs
}

// PrepareScorers instantiates one PreparedScorer per scorer, given the
// parallel per-scorer Stats produced by Collector.Finish.
func (o *Order) PrepareScorers(seg *segment.Reader, field string, stats []Stats, attrs attribute.View) ([]PreparedScorer, error) {
	out := make([]PreparedScorer, len(o.scorers))
	for i, s := range o.scorers {
		p, err := s.PrepareScorer(seg, field, stats[i], attrs)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// ScoreFn builds an attribute.ScoreFn that runs every prepared scorer in
// order, each writing into its own slice of buf. prepared must have the
// same length and order as o.scorers (i.e. come from PrepareScorers).
func (o *Order) ScoreFn(prepared []PreparedScorer) attribute.ScoreFn {
	return func(buf []byte) {
		for i, p := range prepared {
			start := o.offsets[i]
			end := start + o.scorers[i].BucketSize()
			p.Score(buf[start:end])
		}
	}
}

// Less applies the composed order's strict weak ordering: the first
// scorer that distinguishes a from b decides; ties fall through to the
// next scorer; full ties report false (neither before the other).
func (o *Order) Less(a, b []byte) bool {
	for i, s := range o.scorers {
		start := o.offsets[i]
		end := start + s.BucketSize()
		as, bs := a[start:end], b[start:end]
		if s.Less(as, bs) {
			return true
		}
		if s.Less(bs, as) {
			return false
		}
	}
	return false
}
