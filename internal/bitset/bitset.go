// Package bitset implements the dense, fixed-capacity doc-id set and its
// word-granular doc iterator (§4.4). Bit index 0 corresponds to
// docid.Min; bit i corresponds to docid.Min+i.
package bitset

import (
	"fmt"
	"math/bits"
)

// WordBits is the number of bits per backing word.
const WordBits = 64

// Set is a finite, fixed-capacity set of document ids represented as
// packed 64-bit words. It is exclusively owned by its holding iterator
// unless an external caller supplies a prebuilt Set, in which case the
// iterator only borrows it (§5).
type Set struct {
	words    []uint64
	capacity int
}

// New creates a Set with room for the given number of bits, all clear.
func New(capacity int) *Set {
	if capacity < 0 {
		panic("bitset: negative capacity")
	}
	n := (capacity + WordBits - 1) / WordBits
	return &Set{words: make([]uint64, n), capacity: capacity}
}

// Capacity returns the number of addressable bit positions.
func (s *Set) Capacity() int { return s.capacity }

// Words exposes the backing words directly, for callers building a Set in
// bulk (e.g. a Memset caller or a Roaring-bitmap bridge).
func (s *Set) Words() []uint64 { return s.words }

func (s *Set) checkIndex(i int) {
	if i < 0 || i >= s.capacity {
		panic(fmt.Sprintf("bitset: index %d out of range [0,%d)", i, s.capacity))
	}
}

// Set marks bit i as present.
func (s *Set) Set(i int) {
	s.checkIndex(i)
	s.words[i/WordBits] |= 1 << uint(i%WordBits)
}

// Clear marks bit i as absent.
func (s *Set) Clear(i int) {
	s.checkIndex(i)
	s.words[i/WordBits] &^= 1 << uint(i%WordBits)
}

// Reset sets or clears bit i according to b.
func (s *Set) Reset(i int, b bool) {
	if b {
		s.Set(i)
	} else {
		s.Clear(i)
	}
}

// Get reports whether bit i is set.
func (s *Set) Get(i int) bool {
	s.checkIndex(i)
	return s.words[i/WordBits]&(1<<uint(i%WordBits)) != 0
}

// Memset overwrites the entire backing word slice. len(words) must equal
// the number of words implied by the set's capacity; excess bits beyond
// capacity in the final word are the caller's responsibility to leave
// clear.
func (s *Set) Memset(words []uint64) {
	if len(words) != len(s.words) {
		panic(fmt.Sprintf("bitset: memset word count %d, want %d", len(words), len(s.words)))
	}
	copy(s.words, words)
}

// Count returns the population count (number of set bits).
func (s *Set) Count() uint64 {
	var n uint64
	for _, w := range s.words {
		n += uint64(bits.OnesCount64(w))
	}
	return n
}
