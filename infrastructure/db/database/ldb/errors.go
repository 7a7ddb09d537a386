package ldb

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

// ErrNotFound denotes that the requested item was not
// found in the database.
var ErrNotFound = errors.New("not found")

// IsNotFoundError checks whether an error is an ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// translateGetError converts leveldb's not-found error to ErrNotFound and
// attaches a stack trace to anything else.
func translateGetError(key []byte, err error) error {
	if errors.Is(err, leveldb.ErrNotFound) {
		return errors.Wrapf(ErrNotFound, "key %x not found", key)
	}
	return errors.WithStack(err)
}
