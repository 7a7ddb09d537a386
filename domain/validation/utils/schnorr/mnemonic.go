package schnorr

import (
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

const mnemonicEntropyBits = 256

// CreateMnemonic returns a new random 24 word bip39 mnemonic
func CreateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", errors.WithStack(err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return mnemonic, nil
}

// NewSignerFromMnemonic derives a Signer from a bip39 mnemonic. The private
// key is the first 32 bytes of the mnemonic's seed, so the same mnemonic
// always yields the same identity.
func NewSignerFromMnemonic(mnemonic string) (*Signer, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("the mnemonic is not a valid bip39 mnemonic")
	}
	seed := bip39.NewSeed(mnemonic, "")
	return NewSignerFromPrivateKey(seed[:32])
}
