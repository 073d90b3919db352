package bitset

import (
	"math/bits"

	"irecore/internal/attribute"
	"irecore/internal/docid"
)

// Iterator walks the set bits of a Set in ascending doc-id order.
type Iterator struct {
	set   *Set
	base  docid.ID // docid.Min
	value docid.ID
	word  int // index of the word last examined by Next
	bit   int // bit offset within that word already consumed, -1 before first
	store *attribute.Store
}

// NewIterator creates a bitset doc iterator over set. The Cost attribute's
// Estimate is the set's popcount, computed eagerly (§4.4).
func NewIterator(set *Set) *Iterator {
	store := attribute.NewStore()
	attribute.Emplace(store, attribute.CostKey, attribute.Cost{Estimate: set.Count()})
	return &Iterator{
		set:   set,
		base:  docid.Min,
		value: docid.Invalid,
		word:  -1,
		bit:   -1,
		store: store,
	}
}

func (it *Iterator) Value() docid.ID { return it.value }

func (it *Iterator) Attributes() attribute.View { return attribute.ViewOf(it.store) }

// Next scans forward from just past the current position, skipping zero
// words, and emits the next set bit's doc id.
func (it *Iterator) Next() bool {
	if it.value == docid.EOF {
		return false
	}

	startBitGlobal := it.bit + 1
	wordIdx := it.word
	if wordIdx < 0 {
		wordIdx = 0
		startBitGlobal = 0
	}

	for wordIdx < len(it.set.words) {
		w := it.set.words[wordIdx]
		// Mask off bits already consumed within this word.
		if wordIdx == it.word {
			if startBitGlobal < WordBits {
				w &^= (uint64(1) << uint(startBitGlobal)) - 1
			} else {
				w = 0
			}
		}
		if w != 0 {
			b := bits.TrailingZeros64(w)
			globalBit := wordIdx*WordBits + b
			if globalBit >= it.set.capacity {
				break
			}
			it.word = wordIdx
			it.bit = b
			it.value = it.base + docid.ID(globalBit)
			return true
		}
		wordIdx++
		startBitGlobal = 0
	}

	it.word = len(it.set.words)
	it.value = docid.EOF
	return false
}

// Seek advances to the first set bit at or after target, per §4.4/§4.3.
func (it *Iterator) Seek(target docid.ID) docid.ID {
	if it.value == docid.EOF {
		return docid.EOF
	}

	if target == docid.Invalid {
		if it.word < 0 {
			// Pre-first: behave as if seeking to Min.
			target = it.base
		} else {
			return it.value
		}
	} else if target <= it.value && it.word >= 0 {
		return it.value
	}

	if target < it.base {
		target = it.base
	}
	offset := int(target - it.base)
	if offset >= it.set.capacity {
		it.word = len(it.set.words)
		it.value = docid.EOF
		return docid.EOF
	}

	wordIdx := offset / WordBits
	bitOff := offset % WordBits

	w := it.set.words[wordIdx] &^ ((uint64(1) << uint(bitOff)) - 1)
	for {
		if w != 0 {
			b := bits.TrailingZeros64(w)
			globalBit := wordIdx*WordBits + b
			if globalBit >= it.set.capacity {
				break
			}
			it.word = wordIdx
			it.bit = b
			it.value = it.base + docid.ID(globalBit)
			return it.value
		}
		wordIdx++
		if wordIdx >= len(it.set.words) {
			break
		}
		w = it.set.words[wordIdx]
	}

	it.word = len(it.set.words)
	it.value = docid.EOF
	return docid.EOF
}
