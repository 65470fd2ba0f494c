package buffer

import "math"

// IntBits reinterprets the bit pattern of i as a float32.
// The result is not a numeric conversion: IntBits(1) is a denormal, and
// some inputs produce NaN patterns. Shaders read the slot back as an
// integer, so the bits must survive unchanged.
func IntBits(i int32) float32 {
	return math.Float32frombits(uint32(i))
}

// BitsInt is the inverse of IntBits.
func BitsInt(f float32) int32 {
	return int32(math.Float32bits(f))
}
