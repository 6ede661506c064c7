package mth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathDepth walks the split rule for index i in a tree of n leaves and
// counts the splits. The audit path must contain exactly one sibling per
// split.
func pathDepth(i, n uint64) int {
	depth := 0
	for n > 1 {
		k := SplitPoint(n)
		if i < k {
			n = k
		} else {
			i -= k
			n -= k
		}
		depth++
	}
	return depth
}

func TestInclusionProofLength(t *testing.T) {
	var leaves [][]byte
	for b := byte(0); b < 130; b++ {
		leaves = append(leaves, []byte{b})
	}

	for n := uint64(1); n <= uint64(len(leaves)); n++ {
		for i := uint64(0); i < n; i++ {
			proof, err := InclusionProof(leaves[:n], thCombiner, i)
			require.NoError(t, err)
			assert.Equal(t, pathDepth(i, n), len(proof), "i=%d n=%d", i, n)
		}
	}
}

func TestInclusionProofIndexOutOfRange(t *testing.T) {
	leaves := thLeaves("a", "b", "c")

	_, err := InclusionProof(leaves, thCombiner, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = InclusionProof(leaves, thCombiner, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	tree := New(leaves, WithCombiner(thCombiner))
	_, err = tree.InclusionProof(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestLeafIndexFirstOccurrenceWins(t *testing.T) {
	// "a" appears at 0 and 2; lookup by value must resolve to 0 and the
	// proof must be the proof for index 0, not index 2.
	tree := New(thLeaves("a", "b", "a"), WithCombiner(thCombiner))

	i, err := tree.LeafIndex([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), i)

	byValue, err := tree.InclusionProofLeaf([]byte("a"))
	require.NoError(t, err)
	byIndex, err := tree.InclusionProof(0)
	require.NoError(t, err)
	assert.Equal(t, byIndex, byValue)
	assert.Equal(t, []string{"b", "a"}, pathStrings(byValue))
}

func TestLeafIndexNotFound(t *testing.T) {
	tree := New(thLeaves("a", "b"), WithCombiner(thCombiner))

	_, err := tree.LeafIndex([]byte("c"))
	assert.ErrorIs(t, err, ErrLeafNotFound)

	_, err = tree.InclusionProofLeaf([]byte("c"))
	assert.ErrorIs(t, err, ErrLeafNotFound)
}
