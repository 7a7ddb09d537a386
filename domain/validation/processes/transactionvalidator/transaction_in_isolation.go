package transactionvalidator

import (
	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/domain/validation/ruleerrors"
)

func checkTransactionInputsAndOutputsNotEmpty(tx *externalapi.DomainTransaction) []*ruleerrors.ValidationError {
	var validationErrors []*ruleerrors.ValidationError
	if len(tx.Inputs) == 0 {
		validationErrors = append(validationErrors, ruleerrors.NewEmptyInputsError())
	}
	if len(tx.Outputs) == 0 {
		validationErrors = append(validationErrors, ruleerrors.NewEmptyOutputsError())
	}
	return validationErrors
}

// checkTransactionOutputAmounts reports every output whose amount is not
// positive. Such outputs still count towards the returned total.
func checkTransactionOutputAmounts(tx *externalapi.DomainTransaction) (validationErrors []*ruleerrors.ValidationError, totalOut amountTotal) {
	for i, output := range tx.Outputs {
		if output.Amount <= 0 {
			validationErrors = append(validationErrors, ruleerrors.NewNegativeAmountError(i, *output))
		}
		totalOut.add(output.Amount)
	}
	return validationErrors, totalOut
}
