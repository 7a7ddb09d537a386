package externalapi

import (
	"bytes"
	"encoding/hex"

	"github.com/pkg/errors"
)

// HexBytes is a byte slice that is hex encoded in text form
type HexBytes []byte

// String returns the hex encoding of the bytes
func (b HexBytes) String() string {
	return hex.EncodeToString(b)
}

// MarshalText implements encoding.TextMarshaler
func (b HexBytes) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(b)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *HexBytes) UnmarshalText(text []byte) error {
	decoded, err := hex.DecodeString(string(text))
	if err != nil {
		return errors.Wrapf(err, "could not decode hex string %q", text)
	}
	*b = decoded
	return nil
}

// Identity is an opaque public identity: the party that owns an output and
// that is expected to sign for spending it. The shipped signature verifier
// interprets it as a serialized Schnorr public key.
type Identity HexBytes

// NewIdentityFromString parses a hex encoded identity
func NewIdentityFromString(identityString string) (Identity, error) {
	var identity Identity
	err := identity.UnmarshalText([]byte(identityString))
	if err != nil {
		return nil, err
	}
	return identity, nil
}

// String returns the hex encoding of the identity
func (id Identity) String() string {
	return HexBytes(id).String()
}

// MarshalText implements encoding.TextMarshaler
func (id Identity) MarshalText() ([]byte, error) {
	return HexBytes(id).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *Identity) UnmarshalText(text []byte) error {
	return (*HexBytes)(id).UnmarshalText(text)
}

// Equal returns whether id equals to other
func (id Identity) Equal(other Identity) bool {
	return bytes.Equal(id, other)
}

// Clone returns a copy of the identity
func (id Identity) Clone() Identity {
	if id == nil {
		return nil
	}
	return append(Identity(nil), id...)
}
