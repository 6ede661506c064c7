package mth

import "fmt"

// Options configure a Tree.
type Options struct {
	// Combiner derives parent node values. It MUST be commutative, see the
	// Combiner contract. Defaults to sorted pair SHA-256.
	Combiner Combiner
}

// Option configures Options.
type Option func(*Options)

// WithCombiner overrides the default combiner for a tree. Proofs are only
// verifiable with the combiner the tree was built with.
func WithCombiner(c Combiner) Option {
	return func(o *Options) { o.Combiner = c }
}

// Tree is a Merkle Tree Hash over a fixed leaf sequence. The sequence is
// frozen when New returns and the tree holds no other state, so all queries
// are pure reads and a single Tree can be shared by any number of
// goroutines without synchronization.
type Tree struct {
	leaves   [][]byte
	combiner Combiner
}

// New creates a tree committing leaves, in order. The outer slice is copied
// so later appends or reorders by the caller cannot change the tree shape;
// the leaf values themselves are referenced, not copied, and must not be
// modified for the life of the tree.
//
// An empty sequence is accepted here; every query on such a tree fails with
// ErrEmptyTree.
func New(leaves [][]byte, withOpts ...Option) *Tree {
	opts := &Options{
		Combiner: NewPairHasher(),
	}
	for _, o := range withOpts {
		o(opts)
	}
	t := &Tree{
		leaves:   make([][]byte, len(leaves)),
		combiner: opts.Combiner,
	}
	copy(t.leaves, leaves)
	return t
}

// LeafCount returns the number of leaves committed by the tree.
func (t *Tree) LeafCount() uint64 {
	return uint64(len(t.leaves))
}

// Leaf returns the leaf value at index i.
func (t *Tree) Leaf(i uint64) ([]byte, error) {
	if len(t.leaves) == 0 {
		return nil, ErrEmptyTree
	}
	if i >= uint64(len(t.leaves)) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(t.leaves))
	}
	return t.leaves[i], nil
}

// Root returns the Merkle Tree Hash committing the leaf sequence. For a
// single leaf tree this is the leaf value itself.
func (t *Tree) Root() ([]byte, error) {
	return GetRoot(t.leaves, t.combiner)
}

// InclusionProof returns the audit path for the leaf at index i.
func (t *Tree) InclusionProof(i uint64) ([][]byte, error) {
	return InclusionProof(t.leaves, t.combiner, i)
}

// InclusionProofLeaf returns the audit path for the first leaf equal to
// value. It is identical to calling InclusionProof with the index returned
// by LeafIndex.
func (t *Tree) InclusionProofLeaf(value []byte) ([][]byte, error) {
	i, err := t.LeafIndex(value)
	if err != nil {
		return nil, err
	}
	return t.InclusionProof(i)
}

// LeafIndex returns the index of the first leaf equal to value.
func (t *Tree) LeafIndex(value []byte) (uint64, error) {
	return LeafIndex(t.leaves, value)
}
