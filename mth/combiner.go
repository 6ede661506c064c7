package mth

import (
	"bytes"
	"hash"

	sha256 "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
)

// Combiner derives a parent node value from the values of its two children.
//
// Implementations MUST be commutative: Combine(a, b) == Combine(b, a) for
// all values produced by the tree. GetRoot always supplies the left sub tree
// root as the first argument, but audit paths carry no direction bits, so
// VerifyInclusion folds siblings without knowing which side they were on.
// With a combiner that is sensitive to argument order, verification is
// unsound for any leaf whose sibling was on the other side of a combine.
// Every combiner shipped with this package hashes the pair in canonical
// byte order to meet the contract.
type Combiner interface {
	Combine(a, b []byte) []byte
}

// CombinerFunc adapts an ordinary function to the Combiner interface. The
// commutativity contract documented on Combiner applies to the function.
type CombinerFunc func(a, b []byte) []byte

func (f CombinerFunc) Combine(a, b []byte) []byte { return f(a, b) }

// HashPairSorted returns H(min(a, b) || max(a, b)), ordering the pair by
// byte comparison so the digest is independent of argument order.
// ** the hasher is reset **
func HashPairSorted(hasher hash.Hash, a []byte, b []byte) []byte {
	if bytes.Compare(b, a) < 0 {
		a, b = b, a
	}
	hasher.Reset()
	hasher.Write(a)
	hasher.Write(b)
	return hasher.Sum(nil)
}

// pairHasher obtains a fresh hash state for every combine, so one combiner
// value can be shared by concurrent readers of the same tree.
type pairHasher struct {
	fresh func() hash.Hash
}

func (p pairHasher) Combine(a, b []byte) []byte {
	return HashPairSorted(p.fresh(), a, b)
}

// NewPairHasher returns the default Combiner, sorted pair SHA-256.
func NewPairHasher() Combiner {
	return pairHasher{fresh: sha256.New}
}

// NewBlake3PairHasher returns a sorted pair BLAKE3 Combiner with a 32 byte
// digest, for trees that prefer the faster keyless hash.
func NewBlake3PairHasher() Combiner {
	return pairHasher{fresh: func() hash.Hash { return blake3.New() }}
}
