package utxopool

import (
	"sync"

	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/domain/validation/ruleerrors"
	"github.com/kaspanet/txvalidator/infrastructure/db/database/ldb"
	"github.com/pkg/errors"
)

// LevelDBPool is a UTXO pool persisted in leveldb.
//
// Mutations are serialized under the pool's lock. Reads through Get are not,
// so validations that run concurrently with mutations should go through
// Snapshot.
type LevelDBPool struct {
	db   *ldb.LevelDB
	lock sync.Mutex
}

// NewLevelDBPool returns a LevelDBPool over the given database
func NewLevelDBPool(db *ldb.LevelDB) *LevelDBPool {
	return &LevelDBPool{db: db}
}

// Get implements model.UTXOPool
func (p *LevelDBPool) Get(outpoint *externalapi.DomainOutpoint) (*externalapi.UTXOEntry, bool, error) {
	return getEntry(p.db.Get, outpoint)
}

// Add inserts an unspent output into the pool. It fails with
// ErrDuplicateUTXO if the outpoint is already unspent.
func (p *LevelDBPool) Add(outpoint *externalapi.DomainOutpoint, entry *externalapi.UTXOEntry) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	key := utxoKey(outpoint)
	exists, err := p.db.Has(key)
	if err != nil {
		return err
	}
	if exists {
		return errors.Wrapf(ruleerrors.ErrDuplicateUTXO, "outpoint %s is already unspent", outpoint)
	}
	return p.db.Put(key, serializeUTXOEntry(entry))
}

// Remove deletes an unspent output from the pool. It fails with
// ErrMissingTxOut if the outpoint is not in the pool.
func (p *LevelDBPool) Remove(outpoint *externalapi.DomainOutpoint) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	key := utxoKey(outpoint)
	exists, err := p.db.Has(key)
	if err != nil {
		return err
	}
	if !exists {
		return ruleerrors.NewErrMissingTxOut([]*externalapi.DomainOutpoint{outpoint})
	}
	return p.db.Delete(key)
}

// ApplyTransaction spends the inputs of tx and adds its outputs to the pool.
// All changes are written in a single leveldb batch, so either all of them
// take effect or none do. Semantics match MemoryPool.ApplyTransaction.
func (p *LevelDBPool) ApplyTransaction(tx *externalapi.DomainTransaction) (err error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	dbTx, err := p.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		rollbackErr := dbTx.RollbackUnlessClosed()
		if err == nil {
			err = rollbackErr
		}
	}()

	application, err := prepareApplication(tx, func(outpoint *externalapi.DomainOutpoint) (bool, error) {
		return dbTx.Has(utxoKey(outpoint))
	})
	if err != nil {
		return err
	}

	for _, outpoint := range application.spent {
		err := dbTx.Delete(utxoKey(outpoint))
		if err != nil {
			return err
		}
	}
	for _, pair := range application.created {
		err := dbTx.Put(utxoKey(pair.Outpoint), serializeUTXOEntry(pair.UTXOEntry))
		if err != nil {
			return err
		}
	}

	err = dbTx.Commit()
	if err != nil {
		return err
	}
	log.Debugf("Applied transaction %s to the leveldb pool: %d spent, %d created",
		tx.ID, len(application.spent), len(application.created))
	return nil
}

// Commitment returns the hex encoded MuHash commitment of the pool contents
// along with the number of unspent outputs it covers.
func (p *LevelDBPool) Commitment() (commitment string, count int, err error) {
	snapshot, err := p.Snapshot()
	if err != nil {
		return "", 0, err
	}
	defer snapshot.Release()

	return snapshot.Commitment()
}

// Snapshot returns a read-only, point in time view of the pool. The returned
// snapshot must be released once no longer needed.
func (p *LevelDBPool) Snapshot() (*LevelDBPoolSnapshot, error) {
	snapshot, err := p.db.Snapshot()
	if err != nil {
		return nil, err
	}
	return &LevelDBPoolSnapshot{snapshot: snapshot}, nil
}

// LevelDBPoolSnapshot is an immutable view of a LevelDBPool. It implements
// model.UTXOPool and is safe for concurrent use.
type LevelDBPoolSnapshot struct {
	snapshot *ldb.LevelDBSnapshot
}

// Get implements model.UTXOPool
func (s *LevelDBPoolSnapshot) Get(outpoint *externalapi.DomainOutpoint) (*externalapi.UTXOEntry, bool, error) {
	return getEntry(s.snapshot.Get, outpoint)
}

// Commitment returns the hex encoded MuHash commitment of the snapshot
// contents along with the number of unspent outputs it covers.
func (s *LevelDBPoolSnapshot) Commitment() (commitment string, count int, err error) {
	cursor := s.snapshot.Cursor(utxoKeyPrefix)
	defer func() {
		closeErr := cursor.Close()
		if err == nil {
			err = closeErr
		}
	}()

	utxoCommitment := newUTXOCommitment()
	for cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			return "", 0, err
		}
		outpoint, err := outpointFromUTXOKey(key)
		if err != nil {
			return "", 0, err
		}
		value, err := cursor.Value()
		if err != nil {
			return "", 0, err
		}
		entry, err := deserializeUTXOEntry(value)
		if err != nil {
			return "", 0, err
		}
		utxoCommitment.add(outpoint, entry)
		count++
	}
	if err := cursor.Error(); err != nil {
		return "", 0, err
	}
	return utxoCommitment.hash(), count, nil
}

// Release releases the underlying leveldb snapshot
func (s *LevelDBPoolSnapshot) Release() {
	s.snapshot.Release()
}

func getEntry(get func(key []byte) ([]byte, error),
	outpoint *externalapi.DomainOutpoint) (*externalapi.UTXOEntry, bool, error) {

	serialized, err := get(utxoKey(outpoint))
	if err != nil {
		if ldb.IsNotFoundError(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	entry, err := deserializeUTXOEntry(serialized)
	if err != nil {
		return nil, false, err
	}
	return entry, true, nil
}
