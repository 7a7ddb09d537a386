package ruleerrors

import (
	"fmt"

	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/pkg/errors"
)

// ErrorKind identifies a single transaction validation rule. The set of
// kinds is closed.
type ErrorKind string

// The recognized validation error kinds.
const (
	EmptyInputs      ErrorKind = "EMPTY_INPUTS"
	EmptyOutputs     ErrorKind = "EMPTY_OUTPUTS"
	UTXONotFound     ErrorKind = "UTXO_NOT_FOUND"
	DoubleSpending   ErrorKind = "DOUBLE_SPENDING"
	InvalidSignature ErrorKind = "INVALID_SIGNATURE"
	NegativeAmount   ErrorKind = "NEGATIVE_AMOUNT"
	AmountMismatch   ErrorKind = "AMOUNT_MISMATCH"
)

// ErrorCategory groups error kinds by the nature of the violation.
type ErrorCategory string

// The error categories.
const (
	CategoryStructural      ErrorCategory = "structural"
	CategoryReferential     ErrorCategory = "referential"
	CategoryLedgerIntegrity ErrorCategory = "ledger-integrity"
	CategoryAuthorization   ErrorCategory = "authorization"
)

// AllErrorKinds lists every ErrorKind in the order checks are performed.
var AllErrorKinds = []ErrorKind{
	EmptyInputs,
	EmptyOutputs,
	UTXONotFound,
	DoubleSpending,
	InvalidSignature,
	NegativeAmount,
	AmountMismatch,
}

// Category returns the category the kind belongs to. It panics for a kind
// outside of the closed set.
func (kind ErrorKind) Category() ErrorCategory {
	switch kind {
	case EmptyInputs, EmptyOutputs, NegativeAmount:
		return CategoryStructural
	case UTXONotFound:
		return CategoryReferential
	case DoubleSpending, AmountMismatch:
		return CategoryLedgerIntegrity
	case InvalidSignature:
		return CategoryAuthorization
	}
	panic(errors.Errorf("unknown error kind %s", string(kind)))
}

func (kind ErrorKind) String() string {
	return string(kind)
}

// ErrorContext is the structured payload attached to a ValidationError.
// There is exactly one implementation per ErrorKind, and the
// implementation determines the kind.
type ErrorContext interface {
	Kind() ErrorKind
	isErrorContext()
}

// EmptyInputsContext is attached to EMPTY_INPUTS errors.
type EmptyInputsContext struct{}

// EmptyOutputsContext is attached to EMPTY_OUTPUTS errors.
type EmptyOutputsContext struct{}

// UTXONotFoundContext is attached to UTXO_NOT_FOUND errors.
type UTXONotFoundContext struct {
	Outpoint externalapi.DomainOutpoint
}

// DoubleSpendingContext is attached to DOUBLE_SPENDING errors.
type DoubleSpendingContext struct {
	Outpoint externalapi.DomainOutpoint
}

// InvalidSignatureContext is attached to INVALID_SIGNATURE errors.
type InvalidSignatureContext struct {
	Outpoint externalapi.DomainOutpoint
}

// NegativeAmountContext is attached to NEGATIVE_AMOUNT errors.
type NegativeAmountContext struct {
	OutputIndex int
	Output      externalapi.DomainTransactionOutput
}

// AmountMismatchContext is attached to AMOUNT_MISMATCH errors.
//
// A total that does not fit in an int64 is saturated to math.MaxInt64 or
// math.MinInt64 and its Overflowed flag is set. An overflowed total never
// balances, even when both saturated totals are equal.
type AmountMismatchContext struct {
	InputTotal            int64
	OutputTotal           int64
	InputTotalOverflowed  bool
	OutputTotalOverflowed bool
}

// Kind implements ErrorContext
func (EmptyInputsContext) Kind() ErrorKind { return EmptyInputs }

// Kind implements ErrorContext
func (EmptyOutputsContext) Kind() ErrorKind { return EmptyOutputs }

// Kind implements ErrorContext
func (UTXONotFoundContext) Kind() ErrorKind { return UTXONotFound }

// Kind implements ErrorContext
func (DoubleSpendingContext) Kind() ErrorKind { return DoubleSpending }

// Kind implements ErrorContext
func (InvalidSignatureContext) Kind() ErrorKind { return InvalidSignature }

// Kind implements ErrorContext
func (NegativeAmountContext) Kind() ErrorKind { return NegativeAmount }

// Kind implements ErrorContext
func (AmountMismatchContext) Kind() ErrorKind { return AmountMismatch }

func (EmptyInputsContext) isErrorContext()      {}
func (EmptyOutputsContext) isErrorContext()     {}
func (UTXONotFoundContext) isErrorContext()     {}
func (DoubleSpendingContext) isErrorContext()   {}
func (InvalidSignatureContext) isErrorContext() {}
func (NegativeAmountContext) isErrorContext()   {}
func (AmountMismatchContext) isErrorContext()   {}

// ValidationError is a single rule violation found in a transaction.
type ValidationError struct {
	Kind    ErrorKind
	Message string
	Context ErrorContext
}

// Error satisfies the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newValidationError(context ErrorContext, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Kind:    context.Kind(),
		Message: fmt.Sprintf(format, args...),
		Context: context,
	}
}

// NewEmptyInputsError creates an EMPTY_INPUTS error
func NewEmptyInputsError() *ValidationError {
	return newValidationError(EmptyInputsContext{}, "transaction has no inputs")
}

// NewEmptyOutputsError creates an EMPTY_OUTPUTS error
func NewEmptyOutputsError() *ValidationError {
	return newValidationError(EmptyOutputsContext{}, "transaction has no outputs")
}

// NewUTXONotFoundError creates a UTXO_NOT_FOUND error for the given outpoint
func NewUTXONotFoundError(outpoint externalapi.DomainOutpoint) *ValidationError {
	return newValidationError(UTXONotFoundContext{Outpoint: outpoint},
		"outpoint %s is not in the UTXO pool", outpoint)
}

// NewDoubleSpendingError creates a DOUBLE_SPENDING error for the given outpoint
func NewDoubleSpendingError(outpoint externalapi.DomainOutpoint) *ValidationError {
	return newValidationError(DoubleSpendingContext{Outpoint: outpoint},
		"outpoint %s is spent more than once in the transaction", outpoint)
}

// NewInvalidSignatureError creates an INVALID_SIGNATURE error for the given outpoint
func NewInvalidSignatureError(outpoint externalapi.DomainOutpoint) *ValidationError {
	return newValidationError(InvalidSignatureContext{Outpoint: outpoint},
		"signature spending outpoint %s was not made by its recipient", outpoint)
}

// NewNegativeAmountError creates a NEGATIVE_AMOUNT error for the output at the given index
func NewNegativeAmountError(outputIndex int, output externalapi.DomainTransactionOutput) *ValidationError {
	return newValidationError(NegativeAmountContext{OutputIndex: outputIndex, Output: output},
		"output %d has non-positive amount %d", outputIndex, output.Amount)
}

// NewAmountMismatchError creates an AMOUNT_MISMATCH error carrying both totals
func NewAmountMismatchError(inputTotal, outputTotal int64) *ValidationError {
	return newValidationError(AmountMismatchContext{InputTotal: inputTotal, OutputTotal: outputTotal},
		"total input amount %d does not equal total output amount %d", inputTotal, outputTotal)
}

// NewAmountOverflowError creates an AMOUNT_MISMATCH error for a transaction
// where at least one of the totals overflowed. The totals are expected to be
// saturated.
func NewAmountOverflowError(inputTotal, outputTotal int64, inputTotalOverflowed, outputTotalOverflowed bool) *ValidationError {
	context := AmountMismatchContext{
		InputTotal:            inputTotal,
		OutputTotal:           outputTotal,
		InputTotalOverflowed:  inputTotalOverflowed,
		OutputTotalOverflowed: outputTotalOverflowed,
	}
	return newValidationError(context, "total input amount %s does not balance total output amount %s",
		formatTotal(inputTotal, inputTotalOverflowed), formatTotal(outputTotal, outputTotalOverflowed))
}

func formatTotal(total int64, overflowed bool) string {
	if !overflowed {
		return fmt.Sprintf("%d", total)
	}
	if total < 0 {
		return "below the minimal amount (overflow)"
	}
	return "above the maximal amount (overflow)"
}
