// Package position implements the intra-document position sub-iterator
// (§4.5), including the skewed comparator that lets Seek(0) succeed from
// the pre-first state.
package position

import (
	"irecore/internal/attribute"
)

// Value is a position within the current document.
type Value = uint32

const (
	// Invalid is the pre-first sentinel.
	Invalid Value = 0xFFFFFFFF

	// NoMore is the terminal value once the position stream is
	// exhausted.
	NoMore Value = Invalid - 1
)

// less implements the skewed comparator: less(a,b) ≡ (a+1) < (b+1),
// computed in uint32 so that Invalid+1 wraps to 0 and Invalid orders
// before every real position despite its raw numeric value being huge.
func less(a, b Value) bool {
	return a+1 < b+1
}

// Iterator walks the positions of a term's occurrence in the current
// document in ascending order.
type Iterator struct {
	positions []Value
	offsets   []attribute.Offset
	payloads  []attribute.Payload
	pos       int // index into positions; -1 before first
	value     Value
	store     *attribute.Store
}

// NewIterator creates a position iterator over positions (already sorted
// ascending). offsets and payloads are optional parallel slices; pass nil
// when the field does not carry that feature.
func NewIterator(positions []Value, offsets []attribute.Offset, payloads []attribute.Payload) *Iterator {
	it := &Iterator{
		positions: positions,
		offsets:   offsets,
		payloads:  payloads,
		pos:       -1,
		value:     Invalid,
		store:     attribute.NewStore(),
	}
	attribute.Add(it.store, attribute.OffsetKey)
	attribute.Add(it.store, attribute.PayloadKey)
	return it
}

func (it *Iterator) Value() Value { return it.value }

func (it *Iterator) Attributes() attribute.View { return attribute.ViewOf(it.store) }

func (it *Iterator) syncAttributes() {
	if it.pos < 0 || it.pos >= len(it.positions) {
		return
	}
	off := attribute.Offset{Start: attribute.OffsetInvalid, End: attribute.OffsetInvalid}
	if it.offsets != nil {
		off = it.offsets[it.pos]
	}
	attribute.Emplace(it.store, attribute.OffsetKey, off)

	pl := attribute.Payload{}
	if it.payloads != nil {
		pl = it.payloads[it.pos]
	}
	attribute.Emplace(it.store, attribute.PayloadKey, pl)
}

// Next advances to the next position strictly greater than the current
// one, per the ordinary (non-skewed) doc-iterator contract shape.
func (it *Iterator) Next() bool {
	if it.value == NoMore {
		return false
	}
	it.pos++
	if it.pos >= len(it.positions) {
		it.value = NoMore
		return false
	}
	it.value = it.positions[it.pos]
	it.syncAttributes()
	return true
}

// Seek advances to the first position p with !less(p, target), i.e. the
// first p such that p+1 >= target+1 under the skewed comparator. From the
// pre-first state (value == Invalid) the search starts at the first
// position, so Seek(0) lands on position 0 if present; and because
// Invalid+1 wraps to 0, Seek(Invalid) lands on the first position from
// the pre-first state and returns the current position once advanced
// (§4.5, §8 property 10).
func (it *Iterator) Seek(target Value) Value {
	if it.value == NoMore {
		return NoMore
	}
	if !less(it.value, target) && it.value != Invalid {
		return it.value
	}
	for it.pos+1 < len(it.positions) {
		it.pos++
		if !less(it.positions[it.pos], target) {
			it.value = it.positions[it.pos]
			it.syncAttributes()
			return it.value
		}
	}
	it.pos = len(it.positions)
	it.value = NoMore
	return NoMore
}
