package mth

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"

	sha256 "github.com/minio/sha256-simd"
)

// hashNum produces the leaf for tests that exercise the shipped digest
// combiners: the sha256 of the big endian leaf ordinal.
func hashNum(num uint64) []byte {
	b := [8]byte{}
	binary.BigEndian.PutUint64(b[:], num)
	sum := sha256.Sum256(b[:])
	return sum[:]
}

// TestVerifyLeavesAllSizes checks that every leaf of every tree size up to
// 39 verifies against the root, with both shipped combiners.
func TestVerifyLeavesAllSizes(t *testing.T) {
	var leaves [][]byte
	for num := uint64(0); num < 39; num++ {
		leaves = append(leaves, hashNum(num))
	}

	combiners := map[string]Combiner{
		"sha256": NewPairHasher(),
		"blake3": NewBlake3PairHasher(),
	}

	for name, combiner := range combiners {
		t.Run(name, func(t *testing.T) {
			for n := uint64(1); n <= uint64(len(leaves)); n++ {
				tree := New(leaves[:n], WithCombiner(combiner))
				root, err := tree.Root()
				require.NoError(t, err)

				for i := uint64(0); i < n; i++ {
					proof, err := tree.InclusionProof(i)
					require.NoError(t, err)
					assert.True(t, VerifyInclusion(leaves[i], proof, root, combiner), "i=%d n=%d", i, n)
				}
			}
		})
	}
}

func TestVerifyRejectsMismatches(t *testing.T) {
	var leaves [][]byte
	for num := uint64(0); num < 7; num++ {
		leaves = append(leaves, hashNum(num))
	}
	combiner := NewPairHasher()
	tree := New(leaves, WithCombiner(combiner))

	root, err := tree.Root()
	require.NoError(t, err)
	proof, err := tree.InclusionProof(5)
	require.NoError(t, err)

	// the wrong leaf for the path
	assert.False(t, VerifyInclusion(leaves[4], proof, root, combiner))

	// a tampered leaf
	tampered := append([]byte{}, leaves[5]...)
	tampered[0] ^= 1
	assert.False(t, VerifyInclusion(tampered, proof, root, combiner))

	// a truncated path; wrong shape is a mismatch, not an error
	assert.False(t, VerifyInclusion(leaves[5], proof[:len(proof)-1], root, combiner))

	// an extended path
	assert.False(t, VerifyInclusion(leaves[5], append(append([][]byte{}, proof...), hashNum(99)), root, combiner))

	// the wrong root
	assert.False(t, VerifyInclusion(leaves[5], proof, hashNum(98), combiner))
}

// TestVerifySingleLeafTree pins the explicit base case: the leaf value is
// the root, the path is empty and no hashing is applied.
func TestVerifySingleLeafTree(t *testing.T) {
	leaf := hashNum(1)
	tree := New([][]byte{leaf})

	root, err := tree.Root()
	require.NoError(t, err)
	assert.Equal(t, leaf, root)

	proof, err := tree.InclusionProof(0)
	require.NoError(t, err)
	assert.Empty(t, proof)

	assert.True(t, VerifyInclusion(leaf, nil, root, NewPairHasher()))
}

// TestHashPairSorted checks the low level pair hash is independent of
// argument order.
func TestHashPairSorted(t *testing.T) {
	hasher := sha256.New()
	a, b := hashNum(1), hashNum(2)
	assert.Equal(t, HashPairSorted(hasher, a, b), HashPairSorted(hasher, b, a))

	bhasher := blake3.New()
	assert.Equal(t, HashPairSorted(bhasher, a, b), HashPairSorted(bhasher, b, a))
	assert.NotEqual(t, HashPairSorted(hasher, a, b), HashPairSorted(bhasher, a, b))
}
