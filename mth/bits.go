package mth

import "math/bits"

func BitLength64(num uint64) uint64 { return uint64(BitLength(num)) }
func BitLength(num uint64) int {
	return bits.Len64(num)
}

// Log2Uint64 efficiently computes log base 2 of num
func Log2Uint64(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}

// IsPow2 determins if the unsigned value size is a perfect power of 2.
func IsPow2(size uint64) bool {
	return size != 0 && bits.OnesCount64(size) == 1
}
