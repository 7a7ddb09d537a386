package ldb

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDBSnapshot is a read-only, point in time view of a LevelDB. Reads
// through it are safe for concurrent use.
type LevelDBSnapshot struct {
	snapshot   *leveldb.Snapshot
	isReleased uint32
}

// Get gets the value for the given key as of the time the snapshot was
// taken. It returns ErrNotFound if the given key does not exist.
func (s *LevelDBSnapshot) Get(key []byte) ([]byte, error) {
	if atomic.LoadUint32(&s.isReleased) != 0 {
		return nil, errors.New("cannot get from a released snapshot")
	}
	data, err := s.snapshot.Get(key, nil)
	if err != nil {
		return nil, translateGetError(key, err)
	}
	return data, nil
}

// Has returns true if the snapshot contains the given key.
func (s *LevelDBSnapshot) Has(key []byte) (bool, error) {
	if atomic.LoadUint32(&s.isReleased) != 0 {
		return false, errors.New("cannot read from a released snapshot")
	}
	exists, err := s.snapshot.Has(key, nil)
	return exists, errors.WithStack(err)
}

// Cursor begins a new cursor over the given prefix.
func (s *LevelDBSnapshot) Cursor(prefix []byte) *LevelDBCursor {
	ldbIterator := s.snapshot.NewIterator(util.BytesPrefix(prefix), nil)
	return newLevelDBCursor(ldbIterator)
}

// Release releases the snapshot. Releasing an already released snapshot
// is a no-op.
func (s *LevelDBSnapshot) Release() {
	if atomic.CompareAndSwapUint32(&s.isReleased, 0, 1) {
		s.snapshot.Release()
	}
}
