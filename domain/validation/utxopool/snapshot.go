package utxopool

import "github.com/kaspanet/txvalidator/domain/validation/model"

// PoolSnapshot is a read-only, point in time view of a UTXO pool. A snapshot
// must be released once no longer needed.
type PoolSnapshot interface {
	model.UTXOPool
	Commitment() (commitment string, count int, err error)
	Release()
}

var (
	_ PoolSnapshot = (*MemoryPoolSnapshot)(nil)
	_ PoolSnapshot = (*LevelDBPoolSnapshot)(nil)
)
