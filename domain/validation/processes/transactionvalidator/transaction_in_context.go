package transactionvalidator

import (
	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/domain/validation/ruleerrors"
	"github.com/pkg/errors"
)

// checkTransactionInputs checks every input against the UTXO pool and
// returns the sum of the amounts of the outputs being spent.
//
// An input whose outpoint is not in the pool, or was already referenced by
// an earlier input, is skipped entirely: it is neither signature checked nor
// counted. An input with a bad signature is still counted, so that an
// amount mismatch is reported alongside the signature failure.
func (v *transactionValidator) checkTransactionInputs(tx *externalapi.DomainTransaction, payload []byte) (
	validationErrors []*ruleerrors.ValidationError, totalIn amountTotal, err error) {

	seen := make(map[externalapi.DomainOutpoint]struct{}, len(tx.Inputs))
	for i, input := range tx.Inputs {
		outpoint := input.PreviousOutpoint
		utxoEntry, found, err := v.utxoPool.Get(&outpoint)
		if err != nil {
			return nil, amountTotal{}, errors.Wrapf(err, "failed looking up outpoint %s of input %d", outpoint, i)
		}
		if !found {
			validationErrors = append(validationErrors, ruleerrors.NewUTXONotFoundError(outpoint))
			continue
		}

		if _, ok := seen[outpoint]; ok {
			validationErrors = append(validationErrors, ruleerrors.NewDoubleSpendingError(outpoint))
			continue
		}
		seen[outpoint] = struct{}{}

		if !v.signatureVerifier.Verify(payload, input.Signature, utxoEntry.Recipient) {
			validationErrors = append(validationErrors, ruleerrors.NewInvalidSignatureError(outpoint))
		}

		totalIn.add(utxoEntry.Amount)
	}
	return validationErrors, totalIn, nil
}
