package main

import (
	"fmt"
)

func commitment(cfg *configFlags) error {
	pool, teardown, err := openPool(cfg)
	if err != nil {
		return err
	}
	defer teardown()

	commitment, count, err := pool.Commitment()
	if err != nil {
		return err
	}
	fmt.Printf("UTXO commitment: %s\n", commitment)
	fmt.Printf("Unspent outputs: %d\n", count)
	return nil
}
