package utxopool

import (
	"sync"

	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/domain/validation/ruleerrors"
	"github.com/pkg/errors"
)

// MemoryPool is an in-memory UTXO pool. It is safe for concurrent use.
//
// Get reads the live pool, so a validation running concurrently with
// ApplyTransaction may observe entries appearing or disappearing. Validate
// against Snapshot when the pool is being mutated concurrently.
type MemoryPool struct {
	lock       sync.RWMutex
	entries    map[externalapi.DomainOutpoint]*externalapi.UTXOEntry
	commitment *utxoCommitment
}

// NewMemoryPool returns an empty MemoryPool
func NewMemoryPool() *MemoryPool {
	return &MemoryPool{
		entries:    make(map[externalapi.DomainOutpoint]*externalapi.UTXOEntry),
		commitment: newUTXOCommitment(),
	}
}

// Get implements model.UTXOPool
func (p *MemoryPool) Get(outpoint *externalapi.DomainOutpoint) (*externalapi.UTXOEntry, bool, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	entry, ok := p.entries[*outpoint]
	if !ok {
		return nil, false, nil
	}
	return entry.Clone(), true, nil
}

// Len returns the number of unspent outputs in the pool
func (p *MemoryPool) Len() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.entries)
}

// Add inserts an unspent output into the pool. It fails with
// ErrDuplicateUTXO if the outpoint is already unspent.
func (p *MemoryPool) Add(outpoint *externalapi.DomainOutpoint, entry *externalapi.UTXOEntry) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if _, ok := p.entries[*outpoint]; ok {
		return errors.Wrapf(ruleerrors.ErrDuplicateUTXO, "outpoint %s is already unspent", outpoint)
	}
	p.add(outpoint, entry.Clone())
	return nil
}

// Remove deletes an unspent output from the pool. It fails with
// ErrMissingTxOut if the outpoint is not in the pool.
func (p *MemoryPool) Remove(outpoint *externalapi.DomainOutpoint) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if _, ok := p.entries[*outpoint]; !ok {
		return ruleerrors.NewErrMissingTxOut([]*externalapi.DomainOutpoint{outpoint})
	}
	p.remove(outpoint)
	return nil
}

// ApplyTransaction spends the inputs of tx and adds its outputs to the pool
// as a single atomic step. Concurrent applications are serialized, so of two
// transactions spending the same output only the first applied succeeds;
// the second fails with ErrMissingTxOut. ApplyTransaction does not check
// signatures or amounts: tx is expected to have been validated.
func (p *MemoryPool) ApplyTransaction(tx *externalapi.DomainTransaction) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	application, err := prepareApplication(tx, func(outpoint *externalapi.DomainOutpoint) (bool, error) {
		_, ok := p.entries[*outpoint]
		return ok, nil
	})
	if err != nil {
		return err
	}

	for _, outpoint := range application.spent {
		p.remove(outpoint)
	}
	for _, pair := range application.created {
		p.add(pair.Outpoint, pair.UTXOEntry)
	}
	log.Debugf("Applied transaction %s to the memory pool: %d spent, %d created",
		tx.ID, len(application.spent), len(application.created))
	return nil
}

// Commitment returns the hex encoded MuHash commitment of the pool contents
func (p *MemoryPool) Commitment() string {
	// Finalizing the commitment mutates it, so a read lock is not enough.
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.commitment.hash()
}

// Snapshot returns an immutable copy of the current pool contents
func (p *MemoryPool) Snapshot() *MemoryPoolSnapshot {
	p.lock.RLock()
	defer p.lock.RUnlock()

	entries := make(map[externalapi.DomainOutpoint]*externalapi.UTXOEntry, len(p.entries))
	for outpoint, entry := range p.entries {
		entries[outpoint] = entry
	}
	return &MemoryPoolSnapshot{entries: entries}
}

func (p *MemoryPool) add(outpoint *externalapi.DomainOutpoint, entry *externalapi.UTXOEntry) {
	p.entries[*outpoint] = entry
	p.commitment.add(outpoint, entry)
}

func (p *MemoryPool) remove(outpoint *externalapi.DomainOutpoint) {
	entry := p.entries[*outpoint]
	delete(p.entries, *outpoint)
	p.commitment.remove(outpoint, entry)
}

// MemoryPoolSnapshot is an immutable view of a MemoryPool. It shares entries
// with the pool it was taken from, since the pool never mutates an entry in
// place. It is safe for concurrent use.
type MemoryPoolSnapshot struct {
	entries map[externalapi.DomainOutpoint]*externalapi.UTXOEntry
}

// Get implements model.UTXOPool
func (s *MemoryPoolSnapshot) Get(outpoint *externalapi.DomainOutpoint) (*externalapi.UTXOEntry, bool, error) {
	entry, ok := s.entries[*outpoint]
	if !ok {
		return nil, false, nil
	}
	return entry.Clone(), true, nil
}

// Commitment returns the hex encoded MuHash commitment of the snapshot
// contents along with the number of unspent outputs it covers.
func (s *MemoryPoolSnapshot) Commitment() (commitment string, count int, err error) {
	utxoCommitment := newUTXOCommitment()
	for outpoint, entry := range s.entries {
		outpoint := outpoint
		utxoCommitment.add(&outpoint, entry)
	}
	return utxoCommitment.hash(), len(s.entries), nil
}

// Release implements PoolSnapshot. A MemoryPoolSnapshot holds no resources,
// so it does nothing.
func (s *MemoryPoolSnapshot) Release() {}
