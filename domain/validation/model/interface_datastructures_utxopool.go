package model

import "github.com/kaspanet/txvalidator/domain/validation/model/externalapi"

// UTXOPool is a read-only view of the unspent outputs a transaction may spend.
// Implementations must present a consistent snapshot for the duration of a
// single validation and must be safe for concurrent reads.
type UTXOPool interface {
	// Get returns the entry stored under the given outpoint. found is false
	// when no such unspent output exists. A non-nil error signals a failure
	// of the underlying storage, not a missing entry.
	Get(outpoint *externalapi.DomainOutpoint) (entry *externalapi.UTXOEntry, found bool, err error)
}
