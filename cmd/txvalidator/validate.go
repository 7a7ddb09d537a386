package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/kaspanet/txvalidator/domain/validation/model"
	"github.com/kaspanet/txvalidator/domain/validation/model/externalapi"
	"github.com/kaspanet/txvalidator/domain/validation/processes/transactionvalidator"
	"github.com/kaspanet/txvalidator/domain/validation/ruleerrors"
	"github.com/kaspanet/txvalidator/domain/validation/utils/schnorr"
	"github.com/pkg/errors"
)

func validate(cfg *configFlags, conf *validateConfig) error {
	transactions := make([]*externalapi.DomainTransaction, len(conf.Transactions))
	for i, path := range conf.Transactions {
		transaction, err := readTransactionFile(path)
		if err != nil {
			return errors.Wrapf(err, "could not read %s", path)
		}
		transactions[i] = transaction
	}

	pool, teardown, err := openPool(cfg)
	if err != nil {
		return err
	}
	defer teardown()

	snapshot, err := pool.Snapshot()
	if err != nil {
		return err
	}
	validator := transactionvalidator.New(snapshot, schnorr.NewVerifier())
	results, err := validateTransactions(validator, transactions)
	snapshot.Release()
	if err != nil {
		return err
	}

	for i, result := range results {
		printValidationResult(os.Stdout, transactions[i], result)
	}
	invalidErrors := invalidTransactionErrors(transactions, results)
	for _, invalidError := range invalidErrors {
		log.Debugf("Rejected: %s", invalidError)
	}
	invalidCount := len(invalidErrors)

	notAppliedCount := 0
	if conf.Apply {
		notAppliedCount = applyValidTransactions(os.Stdout, pool, transactions, results)
	}

	if invalidCount > 0 || notAppliedCount > 0 {
		return errors.Errorf("%d of %d transactions are invalid, %d valid transactions were not applied",
			invalidCount, len(transactions), notAppliedCount)
	}
	return nil
}

// validateTransactions validates the given transactions concurrently and
// returns their results in the same order.
func validateTransactions(validator model.TransactionValidator,
	transactions []*externalapi.DomainTransaction) ([]*ruleerrors.ValidationResult, error) {

	results := make([]*ruleerrors.ValidationResult, len(transactions))
	errs := make([]error, len(transactions))
	var wg sync.WaitGroup
	for i, transaction := range transactions {
		i, transaction := i, transaction
		wg.Add(1)
		spawn(func() {
			defer wg.Done()
			results[i], errs[i] = validator.ValidateTransaction(transaction)
		})
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "could not validate transaction %s", transactions[i].ID)
		}
	}
	return results, nil
}

// invalidTransactionErrors folds the result of every invalid transaction
// into an ErrInvalidTransaction, in order.
func invalidTransactionErrors(transactions []*externalapi.DomainTransaction,
	results []*ruleerrors.ValidationResult) []error {

	var invalidErrors []error
	for i, result := range results {
		if err := result.Error(transactions[i].ID); err != nil {
			invalidErrors = append(invalidErrors, err)
		}
	}
	return invalidErrors
}

type transactionApplier interface {
	ApplyTransaction(transaction *externalapi.DomainTransaction) error
}

// applyValidTransactions applies the valid transactions in order and
// returns how many of them the pool refused. A refusal means an earlier
// transaction in the batch already spent one of the same outputs.
func applyValidTransactions(w io.Writer, pool transactionApplier, transactions []*externalapi.DomainTransaction,
	results []*ruleerrors.ValidationResult) (notAppliedCount int) {

	for i, transaction := range transactions {
		if !results[i].Valid {
			continue
		}
		err := pool.ApplyTransaction(transaction)
		if err != nil {
			log.Warnf("Transaction %s was not applied: %s", transaction.ID, err)
			fmt.Fprintf(w, "Transaction %s was not applied: %s\n", transaction.ID, err)
			notAppliedCount++
			continue
		}
		fmt.Fprintf(w, "Transaction %s was applied\n", transaction.ID)
	}
	return notAppliedCount
}

func printValidationResult(w io.Writer, transaction *externalapi.DomainTransaction, result *ruleerrors.ValidationResult) {
	if result.Valid {
		fmt.Fprintf(w, "Transaction %s is valid\n", transaction.ID)
		return
	}
	fmt.Fprintf(w, "Transaction %s is invalid:\n", transaction.ID)
	for _, validationError := range result.Errors {
		fmt.Fprintf(w, "\t%s (%s)\n", validationError, validationError.Kind.Category())
	}
}
