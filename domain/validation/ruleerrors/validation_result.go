package ruleerrors

import (
	"github.com/pkg/errors"
)

// ValidationResult is the aggregate report of every rule violation found in
// a single transaction. Valid is true iff Errors is empty.
type ValidationResult struct {
	Valid  bool
	Errors []*ValidationError
}

// NewValidationResult builds a ValidationResult out of the given errors, in order
func NewValidationResult(validationErrors []*ValidationError) *ValidationResult {
	return &ValidationResult{
		Valid:  len(validationErrors) == 0,
		Errors: validationErrors,
	}
}

// Has returns whether the result contains at least one error of the given kind
func (result *ValidationResult) Has(kind ErrorKind) bool {
	for _, validationError := range result.Errors {
		if validationError.Kind == kind {
			return true
		}
	}
	return false
}

// ErrorsOfKind returns the errors of the given kind, in order
func (result *ValidationResult) ErrorsOfKind(kind ErrorKind) []*ValidationError {
	var ofKind []*ValidationError
	for _, validationError := range result.Errors {
		if validationError.Kind == kind {
			ofKind = append(ofKind, validationError)
		}
	}
	return ofKind
}

// Kinds returns the kinds of all errors, in order
func (result *ValidationResult) Kinds() []ErrorKind {
	kinds := make([]ErrorKind, len(result.Errors))
	for i, validationError := range result.Errors {
		kinds[i] = validationError.Kind
	}
	return kinds
}

// Error folds the result into a single error. It returns nil for a valid
// result, and otherwise an ErrInvalidTransaction RuleError whose inner
// InvalidTransactionError lists every violation.
func (result *ValidationResult) Error(transactionID string) error {
	if result.Valid {
		return nil
	}
	return errors.WithStack(RuleError{
		message: ErrInvalidTransaction.message,
		inner: InvalidTransactionError{
			TransactionID: transactionID,
			Errors:        result.Errors,
		},
	})
}
