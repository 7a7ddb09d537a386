package signingpayload

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
)

func testTransaction() *externalapi.DomainTransaction {
	return &externalapi.DomainTransaction{
		ID: "tx2",
		Inputs: []*externalapi.DomainTransactionInput{{
			PreviousOutpoint: externalapi.DomainOutpoint{TransactionID: "tx1", Index: 1},
			Owner:            externalapi.Identity{0xaa},
			Signature:        externalapi.HexBytes{0x01, 0x02},
		}},
		Outputs: []*externalapi.DomainTransactionOutput{{
			Recipient: externalapi.Identity{0xbb},
			Amount:    100,
		}},
		Timestamp: 7,
	}
}

func TestSerializeLayout(t *testing.T) {
	expected := []byte{
		0x01, 0x00, // version
		0x03, 0, 0, 0, 0, 0, 0, 0, 't', 'x', '2', // id
		0x01, 0, 0, 0, 0, 0, 0, 0, // number of inputs
		0x03, 0, 0, 0, 0, 0, 0, 0, 't', 'x', '1', // previous transaction id
		0x01, 0, 0, 0, // previous output index
		0x01, 0, 0, 0, 0, 0, 0, 0, 0xaa, // owner
		0x01, 0, 0, 0, 0, 0, 0, 0, // number of outputs
		0x01, 0, 0, 0, 0, 0, 0, 0, 0xbb, // recipient
		0x64, 0, 0, 0, 0, 0, 0, 0, // amount
		0x07, 0, 0, 0, 0, 0, 0, 0, // timestamp
	}
	payload := Serialize(testTransaction())
	if !bytes.Equal(payload, expected) {
		t.Fatalf("unexpected payload:\n got: %s\nwant: %s", spew.Sdump(payload), spew.Sdump(expected))
	}
}

func TestSerializeExcludesSignatures(t *testing.T) {
	tx := testTransaction()
	before := Serialize(tx)
	tx.Inputs[0].Signature = externalapi.HexBytes{0xde, 0xad, 0xbe, 0xef}
	if !bytes.Equal(before, Serialize(tx)) {
		t.Fatalf("changing a signature must not change the payload")
	}
}

func TestSerializeCommitsToEveryField(t *testing.T) {
	base := Serialize(testTransaction())

	modifications := map[string]func(tx *externalapi.DomainTransaction){
		"id":             func(tx *externalapi.DomainTransaction) { tx.ID = "tx3" },
		"input tx id":    func(tx *externalapi.DomainTransaction) { tx.Inputs[0].PreviousOutpoint.TransactionID = "tx0" },
		"input index":    func(tx *externalapi.DomainTransaction) { tx.Inputs[0].PreviousOutpoint.Index = 2 },
		"owner":          func(tx *externalapi.DomainTransaction) { tx.Inputs[0].Owner = externalapi.Identity{0xab} },
		"recipient":      func(tx *externalapi.DomainTransaction) { tx.Outputs[0].Recipient = externalapi.Identity{0xbc} },
		"amount":         func(tx *externalapi.DomainTransaction) { tx.Outputs[0].Amount = -100 },
		"timestamp":      func(tx *externalapi.DomainTransaction) { tx.Timestamp = 8 },
		"extra output":   func(tx *externalapi.DomainTransaction) { tx.Outputs = append(tx.Outputs, tx.Outputs[0].Clone()) },
		"removed inputs": func(tx *externalapi.DomainTransaction) { tx.Inputs = nil },
	}
	for name, modify := range modifications {
		tx := testTransaction()
		modify(tx)
		if bytes.Equal(base, Serialize(tx)) {
			t.Errorf("%s: modification did not change the payload", name)
		}
	}
}

func TestSerializeIsInjectiveOnIdentifiers(t *testing.T) {
	// Without length prefixes these two would encode the same bytes.
	first := testTransaction()
	first.Inputs[0].PreviousOutpoint.TransactionID = "ab"
	first.Inputs[0].Owner = externalapi.Identity{'c'}
	second := testTransaction()
	second.Inputs[0].PreviousOutpoint.TransactionID = "a"
	second.Inputs[0].Owner = externalapi.Identity{'b', 'c'}

	if bytes.Equal(Serialize(first), Serialize(second)) {
		t.Fatalf("distinct transactions produced the same payload")
	}
}

func TestOutpointRoundTrip(t *testing.T) {
	outpoint := externalapi.NewDomainOutpoint("tx|7", 42)
	var buf bytes.Buffer
	if err := WriteOutpoint(&buf, outpoint); err != nil {
		t.Fatalf("WriteOutpoint: %+v", err)
	}
	read, err := ReadOutpoint(&buf)
	if err != nil {
		t.Fatalf("ReadOutpoint: %+v", err)
	}
	if *read != *outpoint {
		t.Fatalf("got %s, want %s", read, outpoint)
	}
}
