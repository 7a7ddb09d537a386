package schnorr

import (
	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/txvalidator/domain/validation/model"
	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/domain/validation/utils/hashes"
)

// IdentitySize is the size of an identity accepted by the verifier: a
// serialized x-only Schnorr public key
const IdentitySize = 32

type verifier struct{}

// NewVerifier returns a model.SignatureVerifier that checks BIP-340 style
// Schnorr signatures over secp256k1. The identity is the serialized Schnorr
// public key of the signer and the signed message is the transaction signing
// hash of the payload.
func NewVerifier() model.SignatureVerifier {
	return verifier{}
}

// Verify implements model.SignatureVerifier
func (verifier) Verify(payload []byte, signature []byte, identity externalapi.Identity) bool {
	if len(identity) != IdentitySize || len(signature) != secp256k1.SerializedSchnorrSignatureSize {
		return false
	}
	publicKey, err := secp256k1.DeserializeSchnorrPubKey(identity)
	if err != nil {
		return false
	}
	schnorrSignature, err := secp256k1.DeserializeSchnorrSignatureFromSlice(signature)
	if err != nil {
		return false
	}
	secpHash := secp256k1.Hash(*hashes.TransactionSigningHash(payload))
	return publicKey.SchnorrVerify(&secpHash, schnorrSignature)
}
