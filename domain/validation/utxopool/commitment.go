package utxopool

import (
	"encoding/hex"

	"github.com/kaspanet/go-muhash"
	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
)

// utxoCommitment is a MuHash multiset hash over the serialized
// (outpoint, entry) pairs of a pool. It depends only on the pool contents,
// not on the order in which entries were added or removed.
type utxoCommitment struct {
	muHash *muhash.MuHash
}

func newUTXOCommitment() *utxoCommitment {
	return &utxoCommitment{muHash: muhash.NewMuHash()}
}

func (c *utxoCommitment) add(outpoint *externalapi.DomainOutpoint, entry *externalapi.UTXOEntry) {
	c.muHash.Add(serializeUTXO(outpoint, entry))
}

func (c *utxoCommitment) remove(outpoint *externalapi.DomainOutpoint, entry *externalapi.UTXOEntry) {
	c.muHash.Remove(serializeUTXO(outpoint, entry))
}

// hash finalizes the commitment. Finalizing normalizes the internal state,
// so callers must hold exclusive access.
func (c *utxoCommitment) hash() string {
	finalized := c.muHash.Finalize()
	return hex.EncodeToString(finalized[:])
}
