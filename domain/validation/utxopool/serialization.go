package utxopool

import (
	"bytes"

	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/domain/validation/utils/signingpayload"
	"github.com/kaspanet/txvalidator/util/binaryserializer"
	"github.com/pkg/errors"
)

var utxoKeyPrefix = []byte("utxo-")

func serializeOutpoint(outpoint *externalapi.DomainOutpoint) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, 8+len(outpoint.TransactionID)+4))
	err := signingpayload.WriteOutpoint(buf, outpoint)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. bytes.Buffer writes never fail"))
	}
	return buf.Bytes()
}

func utxoKey(outpoint *externalapi.DomainOutpoint) []byte {
	return append(append([]byte(nil), utxoKeyPrefix...), serializeOutpoint(outpoint)...)
}

func outpointFromUTXOKey(key []byte) (*externalapi.DomainOutpoint, error) {
	if !bytes.HasPrefix(key, utxoKeyPrefix) {
		return nil, errors.Errorf("key %x is not a UTXO key", key)
	}
	reader := bytes.NewReader(key[len(utxoKeyPrefix):])
	outpoint, err := signingpayload.ReadOutpoint(reader)
	if err != nil {
		return nil, errors.Wrapf(err, "malformed UTXO key %x", key)
	}
	if reader.Len() != 0 {
		return nil, errors.Errorf("malformed UTXO key %x: %d trailing bytes", key, reader.Len())
	}
	return outpoint, nil
}

func serializeUTXOEntry(entry *externalapi.UTXOEntry) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, 8+8+len(entry.Recipient)))
	err := binaryserializer.PutInt64(buf, entry.Amount)
	if err == nil {
		err = binaryserializer.PutVarBytes(buf, entry.Recipient)
	}
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. bytes.Buffer writes never fail"))
	}
	return buf.Bytes()
}

func deserializeUTXOEntry(serialized []byte) (*externalapi.UTXOEntry, error) {
	reader := bytes.NewReader(serialized)
	amount, err := binaryserializer.Int64(reader)
	if err != nil {
		return nil, errors.Wrap(err, "malformed UTXO entry amount")
	}
	recipient, err := binaryserializer.VarBytes(reader)
	if err != nil {
		return nil, errors.Wrap(err, "malformed UTXO entry recipient")
	}
	if reader.Len() != 0 {
		return nil, errors.Errorf("malformed UTXO entry: %d trailing bytes", reader.Len())
	}
	return externalapi.NewUTXOEntry(amount, recipient), nil
}

// serializeUTXO is the element a pair contributes to the UTXO commitment
func serializeUTXO(outpoint *externalapi.DomainOutpoint, entry *externalapi.UTXOEntry) []byte {
	return append(serializeOutpoint(outpoint), serializeUTXOEntry(entry)...)
}
