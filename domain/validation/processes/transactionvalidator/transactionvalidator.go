package transactionvalidator

import (
	"github.com/kaspanet/txvalidator/domain/validation/model"
	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/domain/validation/ruleerrors"
	"github.com/kaspanet/txvalidator/domain/validation/utils/signingpayload"
	"github.com/kaspanet/txvalidator/infrastructure/logger"
	"github.com/pkg/errors"
)

// transactionValidator exposes a set of validation classes, after which
// it's possible to determine whether a transaction is valid
type transactionValidator struct {
	utxoPool          model.UTXOPool
	signatureVerifier model.SignatureVerifier
}

// New instantiates a new TransactionValidator. The validator holds no
// mutable state of its own and may be shared between goroutines as long as
// utxoPool and signatureVerifier are safe for concurrent use.
func New(utxoPool model.UTXOPool, signatureVerifier model.SignatureVerifier) model.TransactionValidator {
	return &transactionValidator{
		utxoPool:          utxoPool,
		signatureVerifier: signatureVerifier,
	}
}

// ValidateTransaction checks the transaction against every validation rule
// and reports all violations at once, in check order. Rule violations never
// surface as an error: the returned error is non-nil only when the
// transaction is malformed (ErrMalformedTransaction) or when the UTXO pool
// fails to serve a lookup.
func (v *transactionValidator) ValidateTransaction(tx *externalapi.DomainTransaction) (*ruleerrors.ValidationResult, error) {
	err := checkWellFormed(tx)
	if err != nil {
		return nil, err
	}
	onEnd := logger.LogAndMeasureExecutionTime(log, "ValidateTransaction %s", tx.ID)
	defer onEnd()

	var validationErrors []*ruleerrors.ValidationError
	validationErrors = append(validationErrors, checkTransactionInputsAndOutputsNotEmpty(tx)...)

	payload := signingpayload.Serialize(tx)
	inputErrors, totalIn, err := v.checkTransactionInputs(tx, payload)
	if err != nil {
		return nil, err
	}
	validationErrors = append(validationErrors, inputErrors...)

	outputErrors, totalOut := checkTransactionOutputAmounts(tx)
	validationErrors = append(validationErrors, outputErrors...)

	if totalIn.overflowed || totalOut.overflowed {
		validationErrors = append(validationErrors, ruleerrors.NewAmountOverflowError(
			totalIn.sum, totalOut.sum, totalIn.overflowed, totalOut.overflowed))
	} else if totalIn.sum != totalOut.sum {
		validationErrors = append(validationErrors, ruleerrors.NewAmountMismatchError(totalIn.sum, totalOut.sum))
	}

	result := ruleerrors.NewValidationResult(validationErrors)
	if !result.Valid {
		log.Debugf("Transaction %s is invalid: %s", tx.ID, result.Kinds())
	}
	return result, nil
}

// checkWellFormed rejects inputs outside of the validator's type contract.
// These are not rule violations and therefore are not reported in the
// ValidationResult.
func checkWellFormed(tx *externalapi.DomainTransaction) error {
	if tx == nil {
		return errors.Wrap(ruleerrors.ErrMalformedTransaction, "transaction is nil")
	}
	for i, input := range tx.Inputs {
		if input == nil {
			return errors.Wrapf(ruleerrors.ErrMalformedTransaction, "input %d of transaction %s is nil", i, tx.ID)
		}
	}
	for i, output := range tx.Outputs {
		if output == nil {
			return errors.Wrapf(ruleerrors.ErrMalformedTransaction, "output %d of transaction %s is nil", i, tx.ID)
		}
	}
	return nil
}
