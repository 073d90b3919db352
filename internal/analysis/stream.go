package analysis

import (
	"irecore/internal/attribute"
	"irecore/internal/bytesref"
)

// Stream adapts an Analyzer's batch []Token output into the
// attribute-bearing, token-at-a-time walk the rest of the pipeline
// consumes (§4.1): each call to Next advances to the next token and
// populates a single attribute.Store with TermAttribute, Offset, and
// Increment, exactly the attribute set spec.md §3 names for the analysis
// boundary.
//
// Increment is derived from the gap between consecutive tokens'
// Position fields rather than always being 1, so an analyzer that drops
// tokens (e.g. stopwords) without renumbering still produces the correct
// positional gaps. A first token at Position 0 yields Increment 0 (Open
// Question (i)): the stream's internal "last position" starts at 0, so
// there is no special-cased start condition.
type Stream struct {
	tokens       []Token
	idx          int
	lastPosition int
	store        *attribute.Store
}

// NewStream wraps tokens (as produced by Analyzer.Analyze) for
// attribute-at-a-time consumption.
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens, store: attribute.NewStore()}
}

// Next advances to the next token, returning false once the stream is
// exhausted. Attributes() reflects the newly-current token after a call
// that returns true.
func (s *Stream) Next() bool {
	if s.idx >= len(s.tokens) {
		return false
	}
	tok := s.tokens[s.idx]
	s.idx++

	increment := uint32(tok.Position - s.lastPosition)
	s.lastPosition = tok.Position

	attribute.Emplace(s.store, attribute.TermAttributeKey, attribute.TermAttribute{
		Value: bytesref.FromString(tok.Term),
	})
	attribute.Emplace(s.store, attribute.OffsetKey, attribute.Offset{
		Start: uint32(tok.StartByte),
		End:   uint32(tok.EndByte),
	})
	attribute.Emplace(s.store, attribute.IncrementKey, attribute.Increment{Value: increment})
	return true
}

// Attributes returns a view over the current token's attributes.
func (s *Stream) Attributes() attribute.View { return attribute.ViewOf(s.store) }

// Analyze runs a registered analyzer over text and returns the resulting
// attribute stream, combining Registry lookup with Stream construction
// for the common case of "analyze this field's text with its configured
// analyzer."
func Analyze(r *Registry, field, analyzerName, text string) (*Stream, error) {
	a, err := r.Get(analyzerName)
	if err != nil {
		return nil, err
	}
	return NewStream(a.Analyze(field, text)), nil
}
