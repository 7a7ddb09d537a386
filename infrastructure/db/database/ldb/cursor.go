package ldb

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb/iterator"
)

// LevelDBCursor is a thin wrapper around native leveldb iterators.
type LevelDBCursor struct {
	ldbIterator iterator.Iterator
	isClosed    bool
}

func newLevelDBCursor(ldbIterator iterator.Iterator) *LevelDBCursor {
	return &LevelDBCursor{
		ldbIterator: ldbIterator,
		isClosed:    false,
	}
}

// Next moves the iterator to the next key/value pair. It returns whether the
// iterator is exhausted. Panics if the cursor is closed.
func (c *LevelDBCursor) Next() bool {
	if c.isClosed {
		panic("cannot call next on a closed cursor")
	}
	return c.ldbIterator.Next()
}

// Key returns a copy of the key of the current key/value pair, or an error
// if the cursor is closed or exhausted.
func (c *LevelDBCursor) Key() ([]byte, error) {
	if c.isClosed {
		return nil, errors.New("cannot get the key of a closed cursor")
	}
	key := c.ldbIterator.Key()
	if key == nil {
		return nil, errors.Wrapf(ErrNotFound, "cannot get the key of an exhausted cursor")
	}
	return append([]byte(nil), key...), nil
}

// Value returns a copy of the value of the current key/value pair, or an
// error if the cursor is closed or exhausted.
func (c *LevelDBCursor) Value() ([]byte, error) {
	if c.isClosed {
		return nil, errors.New("cannot get the value of a closed cursor")
	}
	value := c.ldbIterator.Value()
	if value == nil {
		return nil, errors.Wrapf(ErrNotFound, "cannot get the value of an exhausted cursor")
	}
	return append([]byte(nil), value...), nil
}

// Error returns any accumulated error. Exhausting all the key/value pairs
// is not considered to be an error.
func (c *LevelDBCursor) Error() error {
	return errors.WithStack(c.ldbIterator.Error())
}

// Close releases associated resources.
func (c *LevelDBCursor) Close() error {
	if c.isClosed {
		return errors.New("cannot close an already closed cursor")
	}
	c.isClosed = true
	c.ldbIterator.Release()
	return nil
}
