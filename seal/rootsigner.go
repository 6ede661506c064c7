package seal

import (
	"crypto/rand"

	"github.com/veraison/go-cose"
)

// RootSigner produces a signature over a tree head state. The signature
// commits to the state; it should only be created and published for a root
// the signer has itself computed from the leaves.
type RootSigner struct {
	issuer string
	codec  CBORCodec
}

func NewRootSigner(issuer string, codec CBORCodec) RootSigner {
	return RootSigner{
		issuer: issuer,
		codec:  codec,
	}
}

// Sign1 signs state as a COSE Sign1 message and returns the CBOR encoded
// message. The key identifier and issuer travel in the protected header.
//
// The signature is computed over the complete state, root included. The
// published payload then has the root detached, so that verifiers are
// forced to recompute it from the log contents before the signature can
// check out. See VerifySignedState.
func (rs RootSigner) Sign1(coseSigner cose.Signer, keyIdentifier string, state TreeState, external []byte) ([]byte, error) {
	payload, err := rs.codec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				cose.HeaderLabelAlgorithm: coseSigner.Algorithm(),
				cose.HeaderLabelKeyID:     []byte(keyIdentifier),
				cose.HeaderLabelContentType: "application/treestate+cbor; issuer=" +
					rs.issuer,
			},
		},
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, external, coseSigner); err != nil {
		return nil, err
	}

	// We purposefully detach the root so that verifiers are forced to
	// obtain it from the log.
	state.Root = nil
	if msg.Payload, err = rs.codec.MarshalCBOR(state); err != nil {
		return nil, err
	}

	return msg.MarshalCBOR()
}
