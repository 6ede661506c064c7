package seal

// TreeState defines the details included in a signed commitment to a tree
// head.
type TreeState struct {
	// The leaf count fixes the shape of the tree, and with it the path from
	// every leaf to the root, so committing to it binds the whole
	// structure, not just the digest.
	LeafCount uint64 `cbor:"1,keyasint"`
	Root      []byte `cbor:"2,keyasint"`
	// Timestamp is the unix time (milliseconds) read at the time the root
	// was signed. Including it allows the same root to be re-signed.
	Timestamp int64 `cbor:"3,keyasint"`
}
