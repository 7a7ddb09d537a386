package main

import (
	"encoding/hex"
	"fmt"

	"github.com/kaspanet/txvalidator/domain/validation/utils/schnorr"
)

func genKeyPair(conf *genKeyPairConfig) error {
	var mnemonic string
	var err error
	if conf.Import {
		mnemonic, err = readMnemonic("Enter the mnemonic: ")
	} else {
		mnemonic, err = schnorr.CreateMnemonic()
	}
	if err != nil {
		return err
	}

	signer, err := schnorr.NewSignerFromMnemonic(mnemonic)
	if err != nil {
		return err
	}

	if !conf.Import {
		fmt.Printf("Mnemonic (keep it secret):\n%s\n\n", mnemonic)
	}
	fmt.Printf("Private key (keep it secret):\n%s\n\n", hex.EncodeToString(signer.PrivateKey()))
	fmt.Printf("Identity:\n%s\n", signer.Identity())
	return nil
}
