package mth

import "bytes"

// LeafIndex returns the index of the first leaf equal to value. When the
// tree holds duplicate leaf values the lowest index wins, matching plain
// linear scan semantics. Lookups against an empty tree return ErrEmptyTree;
// a value that is present nowhere returns ErrLeafNotFound.
func LeafIndex(leaves [][]byte, value []byte) (uint64, error) {
	if len(leaves) == 0 {
		return 0, ErrEmptyTree
	}
	for i, leaf := range leaves {
		if bytes.Equal(leaf, value) {
			return uint64(i), nil
		}
	}
	return 0, ErrLeafNotFound
}
