package schnorr

import (
	"encoding/hex"

	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/domain/validation/utils/hashes"
	"github.com/kaspanet/txvalidator/domain/validation/utils/signingpayload"
	"github.com/pkg/errors"
)

// Signer signs transaction payloads on behalf of a single identity
type Signer struct {
	keyPair  *secp256k1.SchnorrKeyPair
	identity externalapi.Identity
}

// GenerateSigner creates a Signer for a freshly generated key pair
func GenerateSigner() (*Signer, error) {
	keyPair, err := secp256k1.GenerateSchnorrKeyPair()
	if err != nil {
		return nil, errors.Wrap(err, "could not generate a key pair")
	}
	return newSigner(keyPair)
}

// NewSignerFromPrivateKey creates a Signer out of a serialized 32 bytes private key
func NewSignerFromPrivateKey(privateKey []byte) (*Signer, error) {
	keyPair, err := secp256k1.DeserializeSchnorrPrivateKeyFromSlice(privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "could not deserialize the private key")
	}
	return newSigner(keyPair)
}

// NewSignerFromPrivateKeyString creates a Signer out of a hex encoded private key
func NewSignerFromPrivateKeyString(privateKeyHex string) (*Signer, error) {
	privateKey, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, errors.Wrap(err, "the private key is not valid hex")
	}
	return NewSignerFromPrivateKey(privateKey)
}

func newSigner(keyPair *secp256k1.SchnorrKeyPair) (*Signer, error) {
	publicKey, err := keyPair.SchnorrPublicKey()
	if err != nil {
		return nil, errors.Wrap(err, "could not derive the public key")
	}
	serializedPublicKey, err := publicKey.Serialize()
	if err != nil {
		return nil, errors.Wrap(err, "could not serialize the public key")
	}
	return &Signer{
		keyPair:  keyPair,
		identity: externalapi.Identity(serializedPublicKey[:]),
	}, nil
}

// Identity returns the identity that signatures made by this signer verify against
func (s *Signer) Identity() externalapi.Identity {
	return s.identity.Clone()
}

// PrivateKey returns the serialized private key
func (s *Signer) PrivateKey() []byte {
	serialized := s.keyPair.SerializePrivateKey()
	return append([]byte(nil), serialized[:]...)
}

// Sign signs the given canonical signing payload
func (s *Signer) Sign(payload []byte) ([]byte, error) {
	secpHash := secp256k1.Hash(*hashes.TransactionSigningHash(payload))
	signature, err := s.keyPair.SchnorrSign(&secpHash)
	if err != nil {
		return nil, errors.Wrap(err, "could not sign the payload")
	}
	serialized := signature.Serialize()
	return append([]byte(nil), serialized[:]...), nil
}

// SignTransaction fills the signature of every input whose owner is the
// identity of one of the given signers, and returns the number of inputs
// it signed. Inputs owned by someone else are left untouched.
func SignTransaction(tx *externalapi.DomainTransaction, signers ...*Signer) (int, error) {
	payload := signingpayload.Serialize(tx)
	signed := 0
	for i, input := range tx.Inputs {
		for _, signer := range signers {
			if !input.Owner.Equal(signer.identity) {
				continue
			}
			signature, err := signer.Sign(payload)
			if err != nil {
				return signed, errors.Wrapf(err, "could not sign input %d", i)
			}
			input.Signature = signature
			signed++
			break
		}
	}
	return signed, nil
}
