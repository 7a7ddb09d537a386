package model

import "github.com/kaspanet/txvalidator/domain/validation/model/externalapi"

// SignatureVerifier checks that signature is an authentic signature of
// payload by identity. Verify is pure and deterministic, and returns false
// rather than failing for malformed signatures or identities.
type SignatureVerifier interface {
	Verify(payload []byte, signature []byte, identity externalapi.Identity) bool
}
