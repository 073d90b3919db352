package combinator

import "math"

// getFloat32Bucket and putFloat32Bucket decode/encode a 4-byte score
// bucket using the same little-endian layout package order uses. Boost is
// a generic iterator wrapper and deliberately does not import order (that
// would make every combinator depend on the scorer package); duplicating
// this small codec keeps the two packages independent.
func getFloat32Bucket(b []byte) float32 {
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(v)
}

func putFloat32Bucket(b []byte, f float32) {
	v := math.Float32bits(f)
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
