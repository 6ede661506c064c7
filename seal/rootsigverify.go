package seal

import (
	"fmt"

	"github.com/veraison/go-cose"
)

// DecodeSignedState decodes the TreeState carried by a signed tree head
// message. The returned state will not verify as decoded; the root was
// detached after signing. See VerifySignedState for how to complete
// verification.
func DecodeSignedState(codec CBORCodec, msg []byte) (*cose.Sign1Message, TreeState, error) {
	signed := &cose.Sign1Message{}
	if err := signed.UnmarshalCBOR(msg); err != nil {
		return nil, TreeState{}, err
	}

	var unverified TreeState
	if err := codec.UnmarshalInto(signed.Payload, &unverified); err != nil {
		return nil, TreeState{}, err
	}
	return signed, unverified, nil
}

// VerifySignedState applies the recomputed root to the decoded state and
// verifies the signature over the result.
//
// Verification of a signed tree head is a 3 step process:
//  1. Use DecodeSignedState to obtain the TreeState from the signed
//     message. This state does not verify on its own, the root was
//     detached after signing.
//  2. Use TreeState.LeafCount to recompute the root over the log contents
//     at that size.
//  3. Call this function with the recomputed root to complete the
//     verification.
func VerifySignedState(
	verifier cose.Verifier, codec CBORCodec, signed *cose.Sign1Message, unverified TreeState, root []byte, external []byte,
) error {
	if len(root) == 0 {
		return ErrRootMissing
	}

	unverified.Root = root
	payload, err := codec.MarshalCBOR(unverified)
	if err != nil {
		return err
	}
	signed.Payload = payload

	if err = signed.Verify(external, verifier); err != nil {
		return fmt.Errorf("%w: %v", ErrSealVerifyFailed, err)
	}
	return nil
}
