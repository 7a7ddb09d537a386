package utxopool

import (
	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/domain/validation/ruleerrors"
	"github.com/pkg/errors"
)

// spentAndCreated is the effect of applying a transaction to a pool
type spentAndCreated struct {
	spent   []*externalapi.DomainOutpoint
	created []*externalapi.OutpointAndUTXOEntryPair
}

// prepareApplication computes the effect of applying tx on a pool whose
// contents are visible through has. It fails without side effects when an
// input is missing from the pool, when an input is spent twice, or when an
// output would overwrite an unspent entry.
func prepareApplication(tx *externalapi.DomainTransaction,
	has func(outpoint *externalapi.DomainOutpoint) (bool, error)) (*spentAndCreated, error) {

	if tx == nil {
		return nil, errors.Wrap(ruleerrors.ErrMalformedTransaction, "cannot apply a nil transaction")
	}

	spending := make(map[externalapi.DomainOutpoint]struct{}, len(tx.Inputs))
	spent := make([]*externalapi.DomainOutpoint, 0, len(tx.Inputs))
	var missingOutpoints []*externalapi.DomainOutpoint
	for i, input := range tx.Inputs {
		if input == nil {
			return nil, errors.Wrapf(ruleerrors.ErrMalformedTransaction, "input %d of transaction %s is nil", i, tx.ID)
		}
		outpoint := input.PreviousOutpoint
		if _, ok := spending[outpoint]; ok {
			return nil, errors.Wrapf(ruleerrors.ErrDuplicateTxInputs,
				"transaction %s spends %s more than once", tx.ID, outpoint)
		}
		spending[outpoint] = struct{}{}

		exists, err := has(&outpoint)
		if err != nil {
			return nil, err
		}
		if !exists {
			missingOutpoints = append(missingOutpoints, &outpoint)
			continue
		}
		spent = append(spent, &outpoint)
	}
	if len(missingOutpoints) > 0 {
		return nil, ruleerrors.NewErrMissingTxOut(missingOutpoints)
	}

	created := make([]*externalapi.OutpointAndUTXOEntryPair, len(tx.Outputs))
	for i, output := range tx.Outputs {
		if output == nil {
			return nil, errors.Wrapf(ruleerrors.ErrMalformedTransaction, "output %d of transaction %s is nil", i, tx.ID)
		}
		outpoint := tx.OutputOutpoint(uint32(i))
		if _, beingSpent := spending[outpoint]; !beingSpent {
			exists, err := has(&outpoint)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, errors.Wrapf(ruleerrors.ErrDuplicateUTXO,
					"output %s of transaction %s is already unspent", outpoint, tx.ID)
			}
		}
		created[i] = &externalapi.OutpointAndUTXOEntryPair{
			Outpoint:  &outpoint,
			UTXOEntry: externalapi.NewUTXOEntry(output.Amount, output.Recipient.Clone()),
		}
	}

	return &spentAndCreated{spent: spent, created: created}, nil
}
