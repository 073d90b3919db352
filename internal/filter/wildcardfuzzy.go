package filter

import (
	"context"
	"fmt"

	"irecore/internal/automaton"
	"irecore/internal/bytesref"
	"irecore/internal/order"
)

// WildcardFilter matches documents whose field term matches Pattern,
// which may contain '*' (zero or more characters) and '?' (exactly one),
// compiled to a DFA via internal/automaton (§4.9a).
type WildcardFilter struct {
	Field   string
	Pattern []byte
	Boost   float32
}

// NewWildcardFilter compiles pattern once at construction time so a
// malformed pattern is reported immediately rather than deferred to
// Prepare.
func NewWildcardFilter(field string, pattern []byte) (*WildcardFilter, error) {
	if _, err := automaton.NewWildcardAutomaton(pattern); err != nil {
		return nil, fmt.Errorf("filter: wildcard pattern: %w", err)
	}
	return &WildcardFilter{Field: field, Pattern: pattern, Boost: 1.0}, nil
}

func (f *WildcardFilter) Prepare(ctx context.Context, idx IndexReader, ord *order.Order, boost float32) (Prepared, error) {
	a, err := automaton.NewWildcardAutomaton(f.Pattern)
	if err != nil {
		return nil, fmt.Errorf("filter: wildcard pattern: %w", err)
	}
	match := func(v bytesref.Ref) bool { return automaton.Accepts(a, v.Bytes()) }
	stats, err := multiTermStats(ctx, idx.Segments(), f.Field, match, ord)
	if err != nil {
		return nil, err
	}
	return &preparedMultiTerm{field: f.Field, match: match, stats: stats, boost: boost * f.Boost}, nil
}

// FuzzyFilter matches documents whose field term is within MaxEdits of
// Target (Levenshtein distance, bounded to automaton.MaxEditDistance),
// supplemented from original_source (§4.9a): edit-distance matching is
// standard in the system this module's spec was distilled from, and
// nothing in the spec's Non-goals excludes it.
type FuzzyFilter struct {
	Field    string
	Target   []byte
	MaxEdits int
	Boost    float32
}

// NewFuzzyFilter validates target/maxEdits once up front.
func NewFuzzyFilter(field string, target []byte, maxEdits int) (*FuzzyFilter, error) {
	if _, err := automaton.NewLevenshteinAutomaton(target, maxEdits); err != nil {
		return nil, fmt.Errorf("filter: fuzzy target: %w", err)
	}
	return &FuzzyFilter{Field: field, Target: target, MaxEdits: maxEdits, Boost: 1.0}, nil
}

func (f *FuzzyFilter) Prepare(ctx context.Context, idx IndexReader, ord *order.Order, boost float32) (Prepared, error) {
	a, err := automaton.NewLevenshteinAutomaton(f.Target, f.MaxEdits)
	if err != nil {
		return nil, fmt.Errorf("filter: fuzzy target: %w", err)
	}
	match := func(v bytesref.Ref) bool { return automaton.Accepts(a, v.Bytes()) }
	stats, err := multiTermStats(ctx, idx.Segments(), f.Field, match, ord)
	if err != nil {
		return nil, err
	}
	return &preparedMultiTerm{field: f.Field, match: match, stats: stats, boost: boost * f.Boost}, nil
}
