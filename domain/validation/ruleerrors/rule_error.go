package ruleerrors

import (
	"fmt"
	"strings"

	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrInvalidTransaction is returned by ValidationResult.Error when at
	// least one rule was violated. The inner error lists every violation.
	ErrInvalidTransaction = newRuleError("ErrInvalidTransaction")

	// ErrMalformedTransaction indicates the transaction does not satisfy
	// the type contract of the validator (a nil transaction or a nil
	// input or output element). It is returned before any rule is checked.
	ErrMalformedTransaction = newRuleError("ErrMalformedTransaction")

	// ErrMissingTxOut indicates that a UTXO pool could not apply a
	// transaction because some of the outputs it spends are not in the pool.
	ErrMissingTxOut = newRuleError("ErrMissingTxOut")

	// ErrDuplicateTxInputs indicates that a UTXO pool refused to apply a
	// transaction that references the same outpoint more than once.
	ErrDuplicateTxInputs = newRuleError("ErrDuplicateTxInputs")

	// ErrDuplicateUTXO indicates an attempt to add an outpoint that is
	// already present in a UTXO pool.
	ErrDuplicateUTXO = newRuleError("ErrDuplicateUTXO")
)

// RuleError identifies a rule violation. It is used to indicate that
// processing of a transaction failed due to one of the many validation
// rules. The caller can use errors.Is / errors.As to determine if a failure
// was specifically due to a rule violation.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

// Is reports whether target is a RuleError carrying the same message, so
// that a RuleError with an inner error still matches its sentinel.
func (e RuleError) Is(target error) bool {
	var other RuleError
	if !errors.As(target, &other) {
		return false
	}
	return e.message == other.message
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// MissingTxOutError lists the outpoints that a pool could not find when
// applying a transaction.
type MissingTxOutError struct {
	MissingOutpoints []*externalapi.DomainOutpoint
}

func (e MissingTxOutError) Error() string {
	return fmt.Sprintf("missing the following outpoint: %v", e.MissingOutpoints)
}

// NewErrMissingTxOut Creates a new MissingTxOutError wrapped in a RuleError
func NewErrMissingTxOut(missingOutpoints []*externalapi.DomainOutpoint) error {
	return errors.WithStack(RuleError{
		message: ErrMissingTxOut.message,
		inner:   MissingTxOutError{missingOutpoints},
	})
}

// InvalidTransactionError carries every violation found in a transaction.
type InvalidTransactionError struct {
	TransactionID string
	Errors        []*ValidationError
}

func (e InvalidTransactionError) Error() string {
	messages := make([]string, len(e.Errors))
	for i, validationError := range e.Errors {
		messages[i] = validationError.Error()
	}
	return fmt.Sprintf("transaction %s: %s", e.TransactionID, strings.Join(messages, "; "))
}
