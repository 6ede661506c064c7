// Package seal publishes and checks signed commitments to a tree head, and
// portable inclusion receipts for individual leaves. All wire data is
// deterministic CBOR; commitments are COSE Sign1 messages whose payload
// carries the tree state with the root detached, so a verifier is forced to
// recompute the root from the leaves rather than trust the message.
package seal

import (
	"github.com/fxamacker/cbor/v2"
)

// NewDeterministicEncOpts returns the CBOR encoding options used for all
// seal wire data. Core deterministic encoding, so equal states always
// produce byte identical payloads and signatures verify across
// implementations.
func NewDeterministicEncOpts() cbor.EncOptions {
	return cbor.CoreDetEncOptions()
}

// NewDeterministicDecOpts returns the matching decode options.
func NewDeterministicDecOpts() cbor.DecOptions {
	return cbor.DecOptions{}
}

// CBORCodec pairs the deterministic encode and decode modes.
type CBORCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCBORCodec() (CBORCodec, error) {
	enc, err := NewDeterministicEncOpts().EncMode()
	if err != nil {
		return CBORCodec{}, err
	}
	dec, err := NewDeterministicDecOpts().DecMode()
	if err != nil {
		return CBORCodec{}, err
	}
	return CBORCodec{enc: enc, dec: dec}, nil
}

func (c CBORCodec) MarshalCBOR(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c CBORCodec) UnmarshalInto(b []byte, v any) error {
	return c.dec.Unmarshal(b, v)
}
