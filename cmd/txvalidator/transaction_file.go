package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/domain/validation/ruleerrors"
	"github.com/pkg/errors"
)

func readTransactionFile(path string) (*externalapi.DomainTransaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return decodeTransaction(file)
}

func decodeTransaction(reader io.Reader) (*externalapi.DomainTransaction, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()
	transaction := &externalapi.DomainTransaction{}
	err := decoder.Decode(transaction)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode the transaction")
	}
	for i, input := range transaction.Inputs {
		if input == nil {
			return nil, errors.Wrapf(ruleerrors.ErrMalformedTransaction, "input %d is null", i)
		}
	}
	for i, output := range transaction.Outputs {
		if output == nil {
			return nil, errors.Wrapf(ruleerrors.ErrMalformedTransaction, "output %d is null", i)
		}
	}
	return transaction, nil
}

func writeTransaction(writer io.Writer, transaction *externalapi.DomainTransaction) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return errors.WithStack(encoder.Encode(transaction))
}

func writeTransactionFile(path string, transaction *externalapi.DomainTransaction) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	err = writeTransaction(file, transaction)
	if err != nil {
		_ = file.Close()
		return err
	}
	return errors.WithStack(file.Close())
}
