package mth

import "bytes"

// VerifyInclusion returns true if folding leaf through proof reproduces
// root. No tree is required; the caller supplies the trusted root and the
// combiner the tree was built with.
//
// The fold is acc = combine(acc, sibling) for each sibling in path order.
// Nothing here knows which side a sibling was on at its level, so the
// result is only sound for a commutative combiner (see Combiner).
//
// There are no error states. A proof of the wrong shape for the claimed
// tree simply fails to reproduce the root; callers that want shape
// validation can compare the proof length against the audit path length for
// the claimed index and tree size.
func VerifyInclusion(leaf []byte, proof [][]byte, root []byte, combiner Combiner) bool {
	acc := leaf
	for _, sibling := range proof {
		acc = combiner.Combine(acc, sibling)
	}
	return bytes.Equal(acc, root)
}
