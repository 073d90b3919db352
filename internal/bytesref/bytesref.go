// Package bytesref implements the non-owning byte-slice reference used
// throughout the index core for term values, payloads, and token text.
package bytesref

import (
	"github.com/cespare/xxhash/v2"
)

// Ref is a non-owning view over a byte span. Zero value is the Nil ref.
type Ref struct {
	b []byte
}

// Nil is the distinguished empty, non-present reference. It compares as the
// unique least element under Compare and is distinct from a present but
// zero-length reference: both have Len() == 0, but Compare, Equal, IsNil
// and Hash tell them apart.
var Nil = Ref{}

// New wraps b without copying. The caller must not mutate b while the Ref
// is alive.
func New(b []byte) Ref { return Ref{b: b} }

// FromString copies s's bytes into a new slice and wraps that copy, so
// the Ref never aliases s's storage.
func FromString(s string) Ref { return Ref{b: []byte(s)} }

// Bytes returns the underlying byte slice. Callers must not mutate it.
func (r Ref) Bytes() []byte { return r.b }

// Len returns the byte length of the reference.
func (r Ref) Len() int { return len(r.b) }

// Empty reports whether the reference has zero length.
func (r Ref) Empty() bool { return len(r.b) == 0 }

// IsNil reports whether r is the distinguished Nil reference (ptr == nil).
func (r Ref) IsNil() bool { return r.b == nil }

// String copies the reference into an owned string.
func (r Ref) String() string { return string(r.b) }

// Clone returns an owned copy of the reference, safe to retain beyond the
// lifetime of the original backing buffer.
func (r Ref) Clone() Ref {
	if r.b == nil {
		return Nil
	}
	cp := make([]byte, len(r.b))
	copy(cp, r.b)
	return Ref{b: cp}
}

// Compare returns -1, 0, or 1 using unsigned lexicographic byte comparison.
// Nil sorts before every non-nil reference, including the empty one.
func Compare(a, b Ref) int {
	if a.b == nil && b.b == nil {
		return 0
	}
	if a.b == nil {
		return -1
	}
	if b.b == nil {
		return 1
	}
	n := len(a.b)
	if len(b.b) < n {
		n = len(b.b)
	}
	for i := 0; i < n; i++ {
		if a.b[i] != b.b[i] {
			if a.b[i] < b.b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a.b) < len(b.b):
		return -1
	case len(a.b) > len(b.b):
		return 1
	default:
		return 0
	}
}

// Less reports whether a sorts strictly before b.
func Less(a, b Ref) bool { return Compare(a, b) < 0 }

// Equal reports byte-for-byte equality, treating Nil as equal only to Nil.
func Equal(a, b Ref) bool {
	if a.b == nil || b.b == nil {
		return a.b == nil && b.b == nil
	}
	return string(a.b) == string(b.b)
}

// StartsWith reports whether r begins with prefix. Every reference starts
// with itself and with Nil/empty prefixes.
func StartsWith(r, prefix Ref) bool {
	if prefix.Len() == 0 {
		return true
	}
	if r.Len() < prefix.Len() {
		return false
	}
	for i := 0; i < prefix.Len(); i++ {
		if r.b[i] != prefix.b[i] {
			return false
		}
	}
	return true
}

// Hash computes a stable 64-bit hash over the byte span using XXH64.
// Equal references always hash equal.
func Hash(r Ref) uint64 {
	if r.b == nil {
		return 0
	}
	return xxhash.Sum64(r.b)
}
