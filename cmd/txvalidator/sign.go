package main

import (
	"fmt"
	"os"

	"github.com/kaspanet/txvalidator/domain/validation/utils/schnorr"
	"github.com/pkg/errors"
)

func sign(conf *signConfig) error {
	transaction, err := readTransactionFile(conf.Transaction)
	if err != nil {
		return err
	}

	signers := make([]*schnorr.Signer, len(conf.PrivateKey))
	for i, privateKey := range conf.PrivateKey {
		signers[i], err = schnorr.NewSignerFromPrivateKeyString(privateKey)
		if err != nil {
			return errors.Wrapf(err, "private key #%d", i+1)
		}
	}

	signed, err := schnorr.SignTransaction(transaction, signers...)
	if err != nil {
		return err
	}
	if signed == 0 {
		return errors.Errorf("none of the inputs of transaction %s are owned by the given keys", transaction.ID)
	}
	log.Debugf("Signed %d out of %d inputs of transaction %s", signed, len(transaction.Inputs), transaction.ID)

	if conf.Out == "" {
		return writeTransaction(os.Stdout, transaction)
	}
	err = writeTransactionFile(conf.Out, transaction)
	if err != nil {
		return err
	}
	fmt.Printf("Signed %d out of %d inputs. The signed transaction was written to %s\n",
		signed, len(transaction.Inputs), conf.Out)
	return nil
}
