package externalapi

import (
	"fmt"
)

// DomainTransaction represents a proposed ledger transaction
type DomainTransaction struct {
	ID        string                     `json:"id"`
	Inputs    []*DomainTransactionInput  `json:"inputs"`
	Outputs   []*DomainTransactionOutput `json:"outputs"`
	Timestamp int64                      `json:"timestamp"` // unix milliseconds
}

// Clone returns a deep clone of DomainTransaction
func (tx *DomainTransaction) Clone() *DomainTransaction {
	inputsClone := make([]*DomainTransactionInput, len(tx.Inputs))
	for i, input := range tx.Inputs {
		inputsClone[i] = input.Clone()
	}

	outputsClone := make([]*DomainTransactionOutput, len(tx.Outputs))
	for i, output := range tx.Outputs {
		outputsClone[i] = output.Clone()
	}

	return &DomainTransaction{
		ID:        tx.ID,
		Inputs:    inputsClone,
		Outputs:   outputsClone,
		Timestamp: tx.Timestamp,
	}
}

// OutputOutpoint returns the outpoint under which the output at the given
// index is stored in a pool once this transaction is applied.
func (tx *DomainTransaction) OutputOutpoint(index uint32) DomainOutpoint {
	return DomainOutpoint{TransactionID: tx.ID, Index: index}
}

// DomainTransactionInput spends a previously created output. It references
// that output by outpoint only and never owns it.
type DomainTransactionInput struct {
	PreviousOutpoint DomainOutpoint `json:"previousOutpoint"`
	Owner            Identity       `json:"owner"`
	Signature        HexBytes       `json:"signature"`
}

// Clone returns a deep clone of DomainTransactionInput
func (input *DomainTransactionInput) Clone() *DomainTransactionInput {
	if input == nil {
		return nil
	}
	return &DomainTransactionInput{
		PreviousOutpoint: input.PreviousOutpoint,
		Owner:            input.Owner.Clone(),
		Signature:        HexBytes(append([]byte(nil), input.Signature...)),
	}
}

// DomainTransactionOutput assigns an amount to a recipient
type DomainTransactionOutput struct {
	Recipient Identity `json:"recipient"`
	Amount    int64    `json:"amount"`
}

// Clone returns a deep clone of DomainTransactionOutput
func (output *DomainTransactionOutput) Clone() *DomainTransactionOutput {
	if output == nil {
		return nil
	}
	return &DomainTransactionOutput{
		Recipient: output.Recipient.Clone(),
		Amount:    output.Amount,
	}
}

func (output DomainTransactionOutput) String() string {
	return fmt.Sprintf("(%s: %d)", output.Recipient, output.Amount)
}

// DomainOutpoint identifies an output by the id of the transaction that
// created it and its index within that transaction. It is comparable and is
// used directly as a map key.
type DomainOutpoint struct {
	TransactionID string `json:"transactionId"`
	Index         uint32 `json:"index"`
}

// NewDomainOutpoint instantiates a new DomainOutpoint with the given id and index
func NewDomainOutpoint(transactionID string, index uint32) *DomainOutpoint {
	return &DomainOutpoint{
		TransactionID: transactionID,
		Index:         index,
	}
}

// String stringifies an outpoint.
func (op DomainOutpoint) String() string {
	return fmt.Sprintf("(%s: %d)", op.TransactionID, op.Index)
}
