package hashes

import (
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// HashSize is the size in bytes of the hashes produced by HashWriter
const HashSize = blake2b.Size256

// Hash is a finalized HashWriter digest
type Hash [HashSize]byte

const transactionSigningDomain = "TransactionSigningHash"

// HashWriter is used to incrementally hash data without concatenating all of the data to a single buffer
// it exposes an io.Writer api and a Finalize function to get the resulting hash.
// The used hash function is blake2b.
// This can only be created via one of the domain separated constructors
type HashWriter struct {
	hash.Hash
}

// NewTransactionSigningHashWriter returns a new HashWriter used for the digest
// that transaction signatures commit to
func NewTransactionSigningHashWriter() HashWriter {
	blake, err := blake2b.New256([]byte(transactionSigningDomain))
	if err != nil {
		panic(errors.Wrapf(err, "this should never happen. %s is less than 64 bytes", transactionSigningDomain))
	}
	return HashWriter{blake}
}

// InfallibleWrite is just like write but doesn't return anything
func (h HashWriter) InfallibleWrite(p []byte) {
	// This write can never return an error, this is part of the hash.Hash interface contract.
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// Finalize returns the resulting hash
func (h HashWriter) Finalize() *Hash {
	var sum Hash
	// This should prevent `Sum` for allocating an output buffer, by using the Hash buffer. we still copy because we don't want to rely on that.
	copy(sum[:], h.Sum(sum[:0]))
	return &sum
}

// TransactionSigningHash returns the digest that is signed for the given
// canonical signing payload
func TransactionSigningHash(payload []byte) *Hash {
	writer := NewTransactionSigningHashWriter()
	writer.InfallibleWrite(payload)
	return writer.Finalize()
}
