package ldb

import (
	"bytes"
	"io/ioutil"
	"os"
	"testing"
)

func prepareDatabaseForTest(t *testing.T, testName string) (ldb *LevelDB, teardownFunc func()) {
	// Create a temp db to run tests against
	path, err := ioutil.TempDir("", testName)
	if err != nil {
		t.Fatalf("%s: TempDir unexpectedly "+
			"failed: %s", testName, err)
	}
	ldb, err = NewLevelDB(path)
	if err != nil {
		t.Fatalf("%s: NewLevelDB unexpectedly "+
			"failed: %s", testName, err)
	}
	teardownFunc = func() {
		err = ldb.Close()
		if err != nil {
			t.Fatalf("%s: Close unexpectedly "+
				"failed: %s", testName, err)
		}
		_ = os.RemoveAll(path)
	}
	return ldb, teardownFunc
}

func TestLevelDBSanity(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestLevelDBSanity")
	defer teardownFunc()

	key := []byte("key")
	_, err := ldb.Get(key)
	if !IsNotFoundError(err) {
		t.Fatalf("TestLevelDBSanity: Get of a missing key "+
			"returned an unexpected error: %v", err)
	}

	value := []byte("value")
	err = ldb.Put(key, value)
	if err != nil {
		t.Fatalf("TestLevelDBSanity: Put unexpectedly "+
			"failed: %s", err)
	}
	exists, err := ldb.Has(key)
	if err != nil || !exists {
		t.Fatalf("TestLevelDBSanity: Has returned (%t, %v)", exists, err)
	}
	gotValue, err := ldb.Get(key)
	if err != nil {
		t.Fatalf("TestLevelDBSanity: Get unexpectedly "+
			"failed: %s", err)
	}
	if !bytes.Equal(gotValue, value) {
		t.Fatalf("TestLevelDBSanity: Get returned wrong value. "+
			"Want: %s, got: %s", value, gotValue)
	}

	err = ldb.Delete(key)
	if err != nil {
		t.Fatalf("TestLevelDBSanity: Delete unexpectedly "+
			"failed: %s", err)
	}
	exists, err = ldb.Has(key)
	if err != nil || exists {
		t.Fatalf("TestLevelDBSanity: Has after Delete returned (%t, %v)", exists, err)
	}
}

func TestLevelDBSnapshotIsolation(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestLevelDBSnapshotIsolation")
	defer teardownFunc()

	key := []byte("key")
	err := ldb.Put(key, []byte("before"))
	if err != nil {
		t.Fatalf("Put: %s", err)
	}
	snapshot, err := ldb.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %s", err)
	}
	defer snapshot.Release()

	err = ldb.Put(key, []byte("after"))
	if err != nil {
		t.Fatalf("Put: %s", err)
	}
	err = ldb.Put([]byte("other"), []byte("new"))
	if err != nil {
		t.Fatalf("Put: %s", err)
	}

	value, err := snapshot.Get(key)
	if err != nil {
		t.Fatalf("snapshot Get: %s", err)
	}
	if string(value) != "before" {
		t.Fatalf("the snapshot observed a later write: %s", value)
	}
	_, err = snapshot.Get([]byte("other"))
	if !IsNotFoundError(err) {
		t.Fatalf("the snapshot observed a later key, err: %v", err)
	}

	snapshot.Release()
	snapshot.Release()
	if _, err := snapshot.Get(key); err == nil {
		t.Fatalf("Get on a released snapshot should fail")
	}
}

func TestLevelDBTransactionCommitAndRollback(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestLevelDBTransactionCommitAndRollback")
	defer teardownFunc()

	err := ldb.Put([]byte("deleted"), []byte("value"))
	if err != nil {
		t.Fatalf("Put: %s", err)
	}

	rolledBack, err := ldb.Begin()
	if err != nil {
		t.Fatalf("Begin: %s", err)
	}
	err = rolledBack.Put([]byte("rolledBack"), []byte("value"))
	if err != nil {
		t.Fatalf("Put: %s", err)
	}
	err = rolledBack.Rollback()
	if err != nil {
		t.Fatalf("Rollback: %s", err)
	}
	if err := rolledBack.Put([]byte("x"), []byte("y")); err == nil {
		t.Fatalf("Put on a closed transaction should fail")
	}
	exists, err := ldb.Has([]byte("rolledBack"))
	if err != nil || exists {
		t.Fatalf("a rolled back write reached the database: (%t, %v)", exists, err)
	}

	committed, err := ldb.Begin()
	if err != nil {
		t.Fatalf("Begin: %s", err)
	}
	defer func() {
		if err := committed.RollbackUnlessClosed(); err != nil {
			t.Fatalf("RollbackUnlessClosed: %s", err)
		}
	}()
	err = committed.Put([]byte("committed"), []byte("value"))
	if err != nil {
		t.Fatalf("Put: %s", err)
	}
	err = committed.Delete([]byte("deleted"))
	if err != nil {
		t.Fatalf("Delete: %s", err)
	}
	exists, err = committed.Has([]byte("committed"))
	if err != nil || exists {
		t.Fatalf("transaction reads should not observe staged writes: (%t, %v)", exists, err)
	}
	err = committed.Commit()
	if err != nil {
		t.Fatalf("Commit: %s", err)
	}

	exists, err = ldb.Has([]byte("committed"))
	if err != nil || !exists {
		t.Fatalf("a committed write is missing: (%t, %v)", exists, err)
	}
	exists, err = ldb.Has([]byte("deleted"))
	if err != nil || exists {
		t.Fatalf("a committed delete was not applied: (%t, %v)", exists, err)
	}
}

func TestLevelDBCursorPrefix(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestLevelDBCursorPrefix")
	defer teardownFunc()

	entries := map[string]string{
		"a/1": "one",
		"a/2": "two",
		"b/1": "other",
	}
	for key, value := range entries {
		err := ldb.Put([]byte(key), []byte(value))
		if err != nil {
			t.Fatalf("Put: %s", err)
		}
	}

	cursor := ldb.Cursor([]byte("a/"))
	var keys []string
	for cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			t.Fatalf("Key: %s", err)
		}
		value, err := cursor.Value()
		if err != nil {
			t.Fatalf("Value: %s", err)
		}
		if entries[string(key)] != string(value) {
			t.Fatalf("unexpected value %s for key %s", value, key)
		}
		keys = append(keys, string(key))
	}
	if err := cursor.Error(); err != nil {
		t.Fatalf("Error: %s", err)
	}
	if err := cursor.Close(); err != nil {
		t.Fatalf("Close: %s", err)
	}
	if len(keys) != 2 || keys[0] != "a/1" || keys[1] != "a/2" {
		t.Fatalf("unexpected keys under the prefix: %v", keys)
	}
	if err := cursor.Close(); err == nil {
		t.Fatalf("closing a cursor twice should fail")
	}
}
