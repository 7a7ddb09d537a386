package externalapi

import "fmt"

// UTXOEntry is the materialized, currently unspent form of an output as it
// is stored inside a UTXO pool.
type UTXOEntry struct {
	Amount    int64    `json:"amount"`
	Recipient Identity `json:"recipient"`
}

// NewUTXOEntry creates a new UTXOEntry
func NewUTXOEntry(amount int64, recipient Identity) *UTXOEntry {
	return &UTXOEntry{
		Amount:    amount,
		Recipient: recipient,
	}
}

// Clone returns a deep clone of UTXOEntry
func (entry *UTXOEntry) Clone() *UTXOEntry {
	if entry == nil {
		return nil
	}
	return &UTXOEntry{
		Amount:    entry.Amount,
		Recipient: entry.Recipient.Clone(),
	}
}

// Equal returns whether entry equals to other
func (entry *UTXOEntry) Equal(other *UTXOEntry) bool {
	if entry == nil || other == nil {
		return entry == other
	}
	return entry.Amount == other.Amount && entry.Recipient.Equal(other.Recipient)
}

func (entry *UTXOEntry) String() string {
	return fmt.Sprintf("(%s: %d)", entry.Recipient, entry.Amount)
}

// OutpointAndUTXOEntryPair is an outpoint along with its
// respective UTXO entry
type OutpointAndUTXOEntryPair struct {
	Outpoint  *DomainOutpoint
	UTXOEntry *UTXOEntry
}
