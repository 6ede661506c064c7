package mth

// GetRoot computes the Merkle Tree Hash committing the leaf sequence.
//
// The base case is explicit: a single leaf is returned unchanged, with no
// combine applied. For n > 1 the result is
//
//	combine(GetRoot(leaves[:k]), GetRoot(leaves[k:]))
//
// with k = SplitPoint(n). There is no root for an empty sequence and no
// sentinel value standing in for one; GetRoot returns ErrEmptyTree.
func GetRoot(leaves [][]byte, combiner Combiner) ([]byte, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	return rangeRoot(leaves, combiner), nil
}

// rangeRoot computes the root of a non empty sub range. The left sub tree
// root is always the first combine argument. Recursion depth is the bit
// length of the range size, so the stack is fine for any leaf count that
// fits in memory.
func rangeRoot(leaves [][]byte, combiner Combiner) []byte {
	n := uint64(len(leaves))
	if n == 1 {
		return leaves[0]
	}
	k := SplitPoint(n)
	return combiner.Combine(rangeRoot(leaves[:k], combiner), rangeRoot(leaves[k:], combiner))
}
