package mth

import "fmt"

// InclusionProof collects the audit path for the leaf at index i.
//
// The path is the ordered sequence of sibling sub tree roots needed to
// recompute the tree root starting from leaves[i]. The sibling nearest the
// leaf is first and the sibling nearest the root is always last. No
// left/right direction bits are stored; see Combiner for why that is sound.
//
// For the 7 leaf tree
//
//	3               root
//	              /      \
//	2        abcd          efg
//	        /    \        /   \
//	1     ab      cd    ef     \
//	     /  \    /  \   / \     \
//	0   a    b  c    d e   f     g
//
// the path for f (i=5) is [e, g, H(abcd)] and the path for g (i=6) is
// [H(ef), H(abcd)]. A single leaf tree yields the empty path, the leaf is
// already the root.
func InclusionProof(leaves [][]byte, combiner Combiner, i uint64) ([][]byte, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	if i >= uint64(len(leaves)) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(leaves))
	}
	return auditPath(i, leaves, combiner), nil
}

// auditPath descends the split recursion into the sub range holding i and
// appends the root of the opposite sub range while unwinding. Exactly one
// entry is produced per split, so the path length equals the recursion
// depth at which i's sub range narrowed to a single leaf.
func auditPath(i uint64, leaves [][]byte, combiner Combiner) [][]byte {
	n := uint64(len(leaves))
	if n == 1 {
		return nil
	}
	k := SplitPoint(n)
	if i < k {
		return append(auditPath(i, leaves[:k], combiner), rangeRoot(leaves[k:], combiner))
	}
	return append(auditPath(i-k, leaves[k:], combiner), rangeRoot(leaves[:k], combiner))
}
