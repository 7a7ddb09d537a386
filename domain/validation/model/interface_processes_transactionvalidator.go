package model

import (
	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/domain/validation/ruleerrors"
)

// TransactionValidator exposes a set of validation classes, after which
// it's possible to determine whether a transaction is valid
type TransactionValidator interface {
	ValidateTransaction(transaction *externalapi.DomainTransaction) (*ruleerrors.ValidationResult, error)
}
