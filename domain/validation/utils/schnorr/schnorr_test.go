package schnorr

import (
	"strings"
	"testing"

	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/domain/validation/utils/signingpayload"
)

func generateSigner(t *testing.T) *Signer {
	signer, err := GenerateSigner()
	if err != nil {
		t.Fatalf("GenerateSigner: %+v", err)
	}
	return signer
}

func TestSignAndVerify(t *testing.T) {
	alice := generateSigner(t)
	bob := generateSigner(t)
	verifier := NewVerifier()

	payload := []byte("payload")
	signature, err := alice.Sign(payload)
	if err != nil {
		t.Fatalf("Sign: %+v", err)
	}
	if len(alice.Identity()) != IdentitySize {
		t.Fatalf("unexpected identity size %d", len(alice.Identity()))
	}

	if !verifier.Verify(payload, signature, alice.Identity()) {
		t.Fatalf("a signature by alice should verify against alice")
	}
	if verifier.Verify(payload, signature, bob.Identity()) {
		t.Fatalf("a signature by alice should not verify against bob")
	}
	if verifier.Verify([]byte("payloae"), signature, alice.Identity()) {
		t.Fatalf("the signature should not verify against another payload")
	}

	tampered := append([]byte(nil), signature...)
	tampered[10] ^= 0x01
	if verifier.Verify(payload, tampered, alice.Identity()) {
		t.Fatalf("a tampered signature should not verify")
	}
}

func TestVerifyRejectsMalformedInput(t *testing.T) {
	alice := generateSigner(t)
	verifier := NewVerifier()
	payload := []byte("payload")
	signature, err := alice.Sign(payload)
	if err != nil {
		t.Fatalf("Sign: %+v", err)
	}

	tests := []struct {
		name      string
		signature []byte
		identity  externalapi.Identity
	}{
		{"nil signature", nil, alice.Identity()},
		{"short signature", signature[:63], alice.Identity()},
		{"nil identity", signature, nil},
		{"short identity", signature, alice.Identity()[:31]},
		{"textual identity", signature, externalapi.Identity("Alice")},
		{"identity off the curve", signature, make(externalapi.Identity, IdentitySize)},
	}
	for _, test := range tests {
		if verifier.Verify(payload, test.signature, test.identity) {
			t.Errorf("%s: expected verification to fail", test.name)
		}
	}
}

func TestSignerFromPrivateKey(t *testing.T) {
	alice := generateSigner(t)
	restored, err := NewSignerFromPrivateKey(alice.PrivateKey())
	if err != nil {
		t.Fatalf("NewSignerFromPrivateKey: %+v", err)
	}
	if !restored.Identity().Equal(alice.Identity()) {
		t.Fatalf("restored identity %s differs from %s", restored.Identity(), alice.Identity())
	}
	if _, err := NewSignerFromPrivateKeyString("not hex"); err == nil {
		t.Fatalf("expected an error for a non hex private key")
	}
}

func TestSignTransaction(t *testing.T) {
	alice := generateSigner(t)
	bob := generateSigner(t)
	carol := generateSigner(t)

	tx := &externalapi.DomainTransaction{
		ID: "tx2",
		Inputs: []*externalapi.DomainTransactionInput{
			{PreviousOutpoint: externalapi.DomainOutpoint{TransactionID: "tx1", Index: 0}, Owner: alice.Identity()},
			{PreviousOutpoint: externalapi.DomainOutpoint{TransactionID: "tx1", Index: 1}, Owner: carol.Identity()},
			{PreviousOutpoint: externalapi.DomainOutpoint{TransactionID: "tx1", Index: 2}, Owner: bob.Identity()},
		},
		Outputs:   []*externalapi.DomainTransactionOutput{{Recipient: bob.Identity(), Amount: 10}},
		Timestamp: 1,
	}

	signed, err := SignTransaction(tx, alice, bob)
	if err != nil {
		t.Fatalf("SignTransaction: %+v", err)
	}
	if signed != 2 {
		t.Fatalf("expected 2 signed inputs, got %d", signed)
	}
	if tx.Inputs[1].Signature != nil {
		t.Fatalf("the input owned by carol should not have been signed")
	}

	payload := signingpayload.Serialize(tx)
	verifier := NewVerifier()
	if !verifier.Verify(payload, tx.Inputs[0].Signature, alice.Identity()) {
		t.Fatalf("input 0 should carry a valid signature by alice")
	}
	if !verifier.Verify(payload, tx.Inputs[2].Signature, bob.Identity()) {
		t.Fatalf("input 2 should carry a valid signature by bob")
	}
}

func TestSignerFromMnemonic(t *testing.T) {
	mnemonic, err := CreateMnemonic()
	if err != nil {
		t.Fatalf("CreateMnemonic: %+v", err)
	}
	if words := len(strings.Fields(mnemonic)); words != 24 {
		t.Fatalf("expected a 24 word mnemonic, got %d words", words)
	}

	first, err := NewSignerFromMnemonic(mnemonic)
	if err != nil {
		t.Fatalf("NewSignerFromMnemonic: %+v", err)
	}
	second, err := NewSignerFromMnemonic(mnemonic)
	if err != nil {
		t.Fatalf("NewSignerFromMnemonic: %+v", err)
	}
	if !first.Identity().Equal(second.Identity()) {
		t.Fatalf("the same mnemonic derived two identities")
	}

	_, err = NewSignerFromMnemonic("not a mnemonic")
	if err == nil {
		t.Fatalf("NewSignerFromMnemonic: expected an error for an invalid mnemonic")
	}
}
