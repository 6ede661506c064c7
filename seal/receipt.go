package seal

import (
	"github.com/treeproof/go-treeproof/mth"
)

// Receipt bundles a leaf with the audit path committing it to a tree of a
// particular size. A receipt is portable: together with a trusted root for
// the same leaf count (typically from a signed tree head) it verifies
// offline, without the tree.
type Receipt struct {
	Leaf      []byte   `cbor:"1,keyasint"`
	LeafIndex uint64   `cbor:"2,keyasint"`
	Proof     [][]byte `cbor:"3,keyasint"`
	LeafCount uint64   `cbor:"4,keyasint"`
}

// NewReceipt collects the audit path for the leaf at index i of tree.
func NewReceipt(tree *mth.Tree, i uint64) (Receipt, error) {
	leaf, err := tree.Leaf(i)
	if err != nil {
		return Receipt{}, err
	}
	proof, err := tree.InclusionProof(i)
	if err != nil {
		return Receipt{}, err
	}
	return Receipt{
		Leaf:      leaf,
		LeafIndex: i,
		Proof:     proof,
		LeafCount: tree.LeafCount(),
	}, nil
}

// Verify returns true if the receipt's leaf and path reproduce root. The
// combiner must be the one the tree was built with.
func (r Receipt) Verify(root []byte, combiner mth.Combiner) bool {
	return mth.VerifyInclusion(r.Leaf, r.Proof, root, combiner)
}

// Encode marshals the receipt with the codec's deterministic encoding.
func (r Receipt) Encode(codec CBORCodec) ([]byte, error) {
	return codec.MarshalCBOR(r)
}

// DecodeReceipt unmarshals a receipt encoded by Encode.
func DecodeReceipt(codec CBORCodec, b []byte) (Receipt, error) {
	var r Receipt
	if err := codec.UnmarshalInto(b, &r); err != nil {
		return Receipt{}, err
	}
	return r, nil
}
