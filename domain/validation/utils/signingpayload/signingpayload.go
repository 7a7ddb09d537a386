// Package signingpayload implements the canonical encoding of a transaction
// that input signatures commit to.
//
// Version 1 of the encoding writes, with every integer little endian:
//
//	uint16  payload version
//	varbytes transaction ID
//	uint64  number of inputs
//	  per input:  varbytes previous transaction ID, uint32 previous output index, varbytes owner
//	uint64  number of outputs
//	  per output: varbytes recipient, int64 amount
//	int64   timestamp
//
// where varbytes is a uint64 length followed by the bytes themselves.
// Signatures are never part of the payload.
package signingpayload

import (
	"bytes"
	"io"

	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/util/binaryserializer"
	"github.com/pkg/errors"
)

// Version is the version of the canonical encoding produced by Serialize
const Version uint16 = 1

// Serialize returns the canonical signing payload of the given transaction.
func Serialize(tx *externalapi.DomainTransaction) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, estimatedSize(tx)))
	err := writeTransaction(buf, tx)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. bytes.Buffer writes never fail"))
	}
	return buf.Bytes()
}

func estimatedSize(tx *externalapi.DomainTransaction) int {
	const fixed = 2 + 8 + 8 + 8 + 8
	size := fixed + len(tx.ID)
	for _, input := range tx.Inputs {
		size += 8 + len(input.PreviousOutpoint.TransactionID) + 4 + 8 + len(input.Owner)
	}
	for _, output := range tx.Outputs {
		size += 8 + len(output.Recipient) + 8
	}
	return size
}

func writeTransaction(w io.Writer, tx *externalapi.DomainTransaction) error {
	err := binaryserializer.PutUint16(w, Version)
	if err != nil {
		return err
	}
	err = binaryserializer.PutVarBytes(w, []byte(tx.ID))
	if err != nil {
		return err
	}

	err = binaryserializer.PutUint64(w, uint64(len(tx.Inputs)))
	if err != nil {
		return err
	}
	for _, input := range tx.Inputs {
		err = writeInput(w, input)
		if err != nil {
			return err
		}
	}

	err = binaryserializer.PutUint64(w, uint64(len(tx.Outputs)))
	if err != nil {
		return err
	}
	for _, output := range tx.Outputs {
		err = writeOutput(w, output)
		if err != nil {
			return err
		}
	}

	return binaryserializer.PutInt64(w, tx.Timestamp)
}

func writeInput(w io.Writer, input *externalapi.DomainTransactionInput) error {
	err := WriteOutpoint(w, &input.PreviousOutpoint)
	if err != nil {
		return err
	}
	return binaryserializer.PutVarBytes(w, input.Owner)
}

func writeOutput(w io.Writer, output *externalapi.DomainTransactionOutput) error {
	err := binaryserializer.PutVarBytes(w, output.Recipient)
	if err != nil {
		return err
	}
	return binaryserializer.PutInt64(w, output.Amount)
}

// WriteOutpoint writes the canonical encoding of an outpoint to w
func WriteOutpoint(w io.Writer, outpoint *externalapi.DomainOutpoint) error {
	err := binaryserializer.PutVarBytes(w, []byte(outpoint.TransactionID))
	if err != nil {
		return err
	}
	return binaryserializer.PutUint32(w, outpoint.Index)
}

// ReadOutpoint reads an outpoint written by WriteOutpoint
func ReadOutpoint(r io.Reader) (*externalapi.DomainOutpoint, error) {
	transactionID, err := binaryserializer.VarBytes(r)
	if err != nil {
		return nil, err
	}
	index, err := binaryserializer.Uint32(r)
	if err != nil {
		return nil, err
	}
	return externalapi.NewDomainOutpoint(string(transactionID), index), nil
}
