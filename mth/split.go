package mth

// SplitPoint returns k, the largest power of two strictly less than n.
//
// This is the split rule shared by root computation and proof generation: a
// sub range of n > 1 leaves always partitions into [0, k) and [k, n). For
// every n > 1, 1 <= k < n and k is a power of two, so the left sub tree is
// always perfect and any imbalance is pushed to the right.
//
//	n:  2  3  4  5  6  7  8  9 ... 16  17
//	k:  1  2  2  4  4  4  4  8 ...  8  16
//
// SplitPoint is a single bit length computation, cheap enough to recompute
// on every recursive call. It is undefined for n < 2; callers guarantee the
// range they are splitting holds at least two leaves.
func SplitPoint(n uint64) uint64 {
	return uint64(1) << (BitLength64(n-1) - 1)
}
