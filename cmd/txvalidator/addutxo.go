package main

import (
	"fmt"

	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
)

func addUTXO(cfg *configFlags, conf *addUTXOConfig) error {
	recipient, err := externalapi.NewIdentityFromString(conf.Recipient)
	if err != nil {
		return err
	}

	pool, teardown, err := openPool(cfg)
	if err != nil {
		return err
	}
	defer teardown()

	outpoint := externalapi.NewDomainOutpoint(conf.TransactionID, conf.Index)
	err = pool.Add(outpoint, externalapi.NewUTXOEntry(conf.Amount, recipient))
	if err != nil {
		return err
	}
	log.Infof("Added %s with %d to %s", outpoint, conf.Amount, recipient)

	fmt.Printf("Added unspent output %s\n", outpoint)
	return nil
}
