package filter

import (
	"context"

	"irecore/internal/attribute"
	"irecore/internal/bytesref"
	"irecore/internal/docid"
	"irecore/internal/iterator"
	"irecore/internal/order"
	"irecore/internal/position"
	"irecore/internal/segment"
	"irecore/internal/term"
)

// PhraseFilter matches documents where, for some position p0 of the
// first term, each later term i occurs within Slop positions of p0+i in
// either direction (0 = exactly adjacent and in order; with Slop > 0 a
// term may precede its expected place), grounded in
// original_source's phrase matcher and supplemented per §4.9a since the
// distillation named "phrase" without pinning a slop model.
type PhraseFilter struct {
	Field string
	Terms []bytesref.Ref
	Slop  int
	Boost float32
}

// NewPhraseFilter builds a PhraseFilter with an identity boost.
func NewPhraseFilter(field string, terms []bytesref.Ref, slop int) *PhraseFilter {
	return &PhraseFilter{Field: field, Terms: terms, Slop: slop, Boost: 1.0}
}

func (f *PhraseFilter) Prepare(ctx context.Context, idx IndexReader, ord *order.Order, boost float32) (Prepared, error) {
	lead := bytesref.Nil
	if len(f.Terms) > 0 {
		lead = f.Terms[0]
	}
	// Corpus statistics are approximated from the phrase's first term —
	// exact phrase document frequency would require a full co-occurrence
	// scan during prepare, which this module's in-memory term dictionary
	// does not index separately.
	stats, err := collectTermStats(ctx, idx.Segments(), f.Field, lead, ord)
	if err != nil {
		return nil, err
	}
	return &preparedPhrase{field: f.Field, terms: f.Terms, slop: f.Slop, stats: stats, boost: boost * f.Boost}, nil
}

type preparedPhrase struct {
	field string
	terms []bytesref.Ref
	slop  int
	stats []order.Stats
	boost float32
}

func (p *preparedPhrase) Execute(seg *segment.Reader, ord *order.Order) (iterator.DocIterator, error) {
	if len(p.terms) == 0 {
		return iterator.NewEmpty(), nil
	}
	fr, ok := seg.Field(p.field)
	if !ok || !fr.Features().Has(term.FeaturePositions) {
		return iterator.NewEmpty(), nil
	}

	postings := make([]iterator.DocIterator, 0, len(p.terms))
	for _, t := range p.terms {
		it := fr.Iterator()
		if it.Seek(t) != term.SeekFound {
			// Any term absent from this segment means the phrase cannot
			// match here at all.
			return iterator.NewEmpty(), nil
		}
		pit, err := it.Postings((term.FeatureFrequency | term.FeaturePositions) & fr.Features())
		if err != nil {
			return nil, err
		}
		postings = append(postings, pit)
	}

	phrase := newPhraseIterator(postings, p.slop)
	if ord == nil {
		return applyBoost(phrase, p.boost), nil
	}
	prepared, err := ord.PrepareScorers(seg, p.field, p.stats, phrase.Attributes())
	if err != nil {
		return nil, err
	}
	return applyBoost(attachScore(phrase, prepared, ord), p.boost), nil
}

// phraseIterator intersects a fixed, ordered set of per-term postings
// iterators and additionally requires their positions to line up within
// slop, per PhraseFilter's sloppy-phrase model. Term order in postings
// is the phrase order, not a cost-ascending order — position alignment
// depends on each term's fixed offset within the phrase.
type phraseIterator struct {
	postings []iterator.DocIterator
	slop     int
	value    docid.ID
	store    *attribute.Store
}

func newPhraseIterator(postings []iterator.DocIterator, slop int) *phraseIterator {
	p := &phraseIterator{postings: postings, slop: slop, value: docid.Invalid, store: attribute.NewStore()}
	p.refreshCost()
	return p
}

func (p *phraseIterator) refreshCost() {
	min := uint64(0)
	for i, it := range p.postings {
		c := uint64(0)
		if est := attribute.ViewGet(it.Attributes(), attribute.CostKey); est != nil {
			c = est.Estimate
		}
		if i == 0 || c < min {
			min = c
		}
	}
	attribute.Emplace(p.store, attribute.CostKey, attribute.Cost{Estimate: min})
}

func (p *phraseIterator) Value() docid.ID { return p.value }

func (p *phraseIterator) Attributes() attribute.View { return attribute.ViewOf(p.store) }

func (p *phraseIterator) Next() bool {
	if p.value == docid.EOF {
		return false
	}
	start := docid.Min
	if p.value != docid.Invalid {
		start = p.value + 1
	}
	return p.advance(start)
}

func (p *phraseIterator) Seek(target docid.ID) docid.ID {
	if p.value == docid.EOF {
		return docid.EOF
	}
	if target != docid.Invalid && target <= p.value && p.value != docid.Invalid {
		return p.value
	}
	if target == docid.Invalid {
		if p.value != docid.Invalid {
			return p.value
		}
		target = docid.Min
	}
	if p.advance(target) {
		return p.value
	}
	return docid.EOF
}

// advance finds the next doc id >= target where every posting agrees
// (Conjunction's align-to-lead loop) and the positions line up, skipping
// forward past any doc that fails the position check.
func (p *phraseIterator) advance(target docid.ID) bool {
	for {
		got, ok := p.alignTo(target)
		if !ok {
			p.value = docid.EOF
			return false
		}
		if p.positionsAlign() {
			p.value = got
			p.refreshCost()
			return true
		}
		target = got + 1
	}
}

func (p *phraseIterator) alignTo(target docid.ID) (docid.ID, bool) {
	lead := p.postings[0]
	got := lead.Seek(target)
	if got == docid.EOF {
		return docid.EOF, false
	}
	target = got
	for {
		agreed := true
		for _, in := range p.postings[1:] {
			g := in.Seek(target)
			if g == docid.EOF {
				return docid.EOF, false
			}
			if g > target {
				target = lead.Seek(g)
				if target == docid.EOF {
					return docid.EOF, false
				}
				agreed = false
				break
			}
		}
		if agreed {
			return target, true
		}
	}
}

// positionsAlign reports whether, for some position p0 of the first
// term, every other term i has an occurrence within slop of p0+i.
func (p *phraseIterator) positionsAlign() bool {
	allPositions := make([][]position.Value, len(p.postings))
	for i, it := range p.postings {
		pa := attribute.ViewGet(it.Attributes(), attribute.PositionKey)
		if pa == nil {
			return false
		}
		posIt, ok := pa.Value.(*position.Iterator)
		if !ok {
			return false
		}
		for posIt.Next() {
			allPositions[i] = append(allPositions[i], posIt.Value())
		}
	}
	for _, p0 := range allPositions[0] {
		if p.matchesFrom(p0, allPositions) {
			return true
		}
	}
	return false
}

func (p *phraseIterator) matchesFrom(p0 position.Value, allPositions [][]position.Value) bool {
	for i := 1; i < len(allPositions); i++ {
		want := int64(p0) + int64(i)
		found := false
		for _, pv := range allPositions[i] {
			diff := int64(pv) - want
			if diff < 0 {
				diff = -diff
			}
			if diff <= int64(p.slop) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
