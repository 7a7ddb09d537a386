package hashes

import (
	"testing"

	"golang.org/x/crypto/blake2b"
)

func TestTransactionSigningHashIsDomainSeparated(t *testing.T) {
	payload := []byte("payload")

	first := TransactionSigningHash(payload)
	second := TransactionSigningHash(payload)
	if *first != *second {
		t.Fatalf("TransactionSigningHash is not deterministic: %x != %x", first, second)
	}

	unkeyed := blake2b.Sum256(payload)
	if *first == Hash(unkeyed) {
		t.Fatalf("TransactionSigningHash must differ from an unkeyed blake2b digest")
	}

	other := TransactionSigningHash([]byte("payloae"))
	if *first == *other {
		t.Fatalf("different payloads produced the same digest %x", first)
	}
}

func TestHashWriterIsIncremental(t *testing.T) {
	writer := NewTransactionSigningHashWriter()
	writer.InfallibleWrite([]byte("pay"))
	writer.InfallibleWrite([]byte("load"))
	if *writer.Finalize() != *TransactionSigningHash([]byte("payload")) {
		t.Fatalf("incremental writes should hash like a single write")
	}
}
