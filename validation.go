package exmini

import (
	"errors"
	"strconv"
	"strings"

	"github.com/etnz/exmini/date"
)

// tidy applies the Normalizer conventions to a user entered transaction.
func tidy(tx Transaction) Transaction {
	tx.DealID = strings.TrimSpace(tx.DealID)
	tx.TxDate = date.Truncate(tx.TxDate)
	tx.TxType = ParseTxType(string(tx.TxType))
	tx.Customer = strings.TrimSpace(tx.Customer)
	tx.Exchanger = strings.TrimSpace(tx.Exchanger)
	tx.AccountID = strings.TrimSpace(tx.AccountID)
	tx.BaseCurrency = strings.ToUpper(strings.TrimSpace(tx.BaseCurrency))
	tx.TargetCurrency = strings.ToUpper(strings.TrimSpace(tx.TargetCurrency))
	tx.Notes = strings.TrimSpace(tx.Notes)
	return tx
}

// recordName identifies tx in error messages.
func recordName(tx Transaction) string {
	switch {
	case tx.ID != 0:
		return "transaction #" + strconv.Itoa(tx.ID)
	case tx.DealID != "":
		return "deal " + tx.DealID
	case tx.Customer != "":
		return "new transaction for " + tx.Customer
	}
	return "new transaction"
}

// Validate checks a user entered transaction before it is recorded. All
// failures are returned joined, each one is a *ValidationError.
//
// A transaction needs a known type, a base currency, a non zero amount, and a
// customer or a deal id. A conversion also needs a target currency and a
// payable: when it cannot be computed it must be entered.
func Validate(tx Transaction) error {
	record := recordName(tx)
	var errs []error
	fail := func(field, reason string) {
		errs = append(errs, &ValidationError{Field: field, Record: record, Reason: reason})
	}

	switch {
	case tx.TxType == "":
		fail(keyTxType, "is required")
	case !tx.TxType.Known():
		fail(keyTxType, "must be one of inflow, outflow or conversion, got "+strconv.Quote(string(tx.TxType)))
	}
	if tx.BaseCurrency == "" {
		fail(keyBaseCurrency, "is required")
	}
	if tx.Amount.IsZero() {
		fail(keyAmount, "is required and must not be zero")
	}
	if tx.Customer == "" && tx.DealID == "" {
		fail(keyCustomer, "a customer or a deal id is required")
	}
	if tx.IsConversion() {
		if tx.TargetCurrency == "" {
			fail(keyTargetCurrency, "is required for a conversion")
		}
		if IsMissing(tx.Payable) {
			fail(keyPayable, "cannot be computed without a trader rate, enter it explicitly")
		}
	}
	return errors.Join(errs...)
}
