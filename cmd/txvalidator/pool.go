package main

import (
	"path/filepath"

	"github.com/kaspanet/txvalidator/domain/validation/utxopool"
	"github.com/kaspanet/txvalidator/infrastructure/db/database/ldb"
)

const utxoDatabaseDirname = "utxos"

func openPool(cfg *configFlags) (pool *utxopool.LevelDBPool, teardown func(), err error) {
	databasePath := filepath.Join(cfg.DataDir, utxoDatabaseDirname)
	db, err := ldb.NewLevelDB(databasePath)
	if err != nil {
		return nil, nil, err
	}
	teardown = func() {
		err := db.Close()
		if err != nil {
			log.Errorf("Error closing the UTXO database at %s: %s", databasePath, err)
		}
	}
	return utxopool.NewLevelDBPool(db), teardown, nil
}
