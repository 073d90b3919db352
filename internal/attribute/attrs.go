package attribute

import (
	"irecore/internal/bytesref"
	"irecore/internal/docid"
)

// Offset is the byte-offset attribute of the current token.
type Offset struct {
	Start, End uint32
}

// OffsetInvalid marks an unset offset endpoint.
const OffsetInvalid uint32 = 0xFFFFFFFF

// Clear resets both endpoints to 0, per spec.md §3.
func (o *Offset) Clear() { o.Start, o.End = 0, 0 }

// OffsetKey is the attribute identity for Offset.
var OffsetKey = NewKey[Offset]("offset")

// Increment is the position-delta attribute: how far the current token is
// from the previous one. Default 1; 0 means "same position as previous".
type Increment struct {
	Value uint32
}

// IncrementKey is the attribute identity for Increment.
var IncrementKey = NewKey[Increment]("increment")

// DefaultIncrement is the value a producer should emit absent any
// explicit positional gap.
const DefaultIncrement uint32 = 1

// TermAttribute carries the current token's raw bytes, borrowed for the
// lifetime of the enclosing call (§3).
type TermAttribute struct {
	Value bytesref.Ref
}

// TermAttributeKey is the attribute identity for TermAttribute.
var TermAttributeKey = NewKey[TermAttribute]("term_attribute")

// Payload carries arbitrary per-position bytes.
type Payload struct {
	Value bytesref.Ref
}

// Clear sets the payload to nil, per spec.md §3.
func (p *Payload) Clear() { p.Value = bytesref.Nil }

// PayloadKey is the attribute identity for Payload.
var PayloadKey = NewKey[Payload]("payload")

// Document carries the current document id.
type Document struct {
	Value docid.ID
}

// DocumentKey is the attribute identity for Document.
var DocumentKey = NewKey[Document]("document")

// Frequency carries the occurrence count of a term in the current
// document.
type Frequency struct {
	Value uint64
}

// FrequencyKey is the attribute identity for Frequency.
var FrequencyKey = NewKey[Frequency]("frequency")

// Norm carries the field-length normalization factor for the current
// document; default 1.0.
type Norm struct {
	Value float32
}

// DefaultNorm is the norm value absent any columnar override.
const DefaultNorm float32 = 1.0

// NormKey is the attribute identity for Norm.
var NormKey = NewKey[Norm]("norm")

// Cost carries a monotonic upper bound on remaining matches — a
// scheduler hint consumed by combinators (§4.10).
type Cost struct {
	Estimate uint64
}

// CostKey is the attribute identity for Cost.
var CostKey = NewKey[Cost]("cost")

// GranularityPrefix is a marker attribute (no value) indicating the token
// stream prefixes term bytes with a precision byte.
type GranularityPrefix struct{}

// GranularityPrefixKey is the attribute identity for GranularityPrefix.
var GranularityPrefixKey = NewKey[GranularityPrefix]("granularity_prefix")

// PrecisionExact is the granularity-prefix byte meaning "exact value".
// Coarser granularities use any byte > PrecisionExact.
const PrecisionExact byte = 0x00

// ScoreFn writes the current document's score into buf and is attached
// to a doc iterator's attribute view under ScoreKey. Evaluation is lazy:
// combinators may never call it.
type ScoreFn func(buf []byte)

// Score wraps a ScoreFn so it can be stored as an attribute value.
type Score struct {
	Evaluate ScoreFn
}

// ScoreKey is the attribute identity for Score.
var ScoreKey = NewKey[Score]("score")

// Position is attached by iterators that expose an intra-document
// position sub-iterator (§4.5). The concrete sub-iterator type lives in
// package position; it is stored here as an any to avoid an import cycle
// and recovered by callers that know the concrete type.
type Position struct {
	Value any
}

// PositionKey is the attribute identity for Position.
var PositionKey = NewKey[Position]("position")
