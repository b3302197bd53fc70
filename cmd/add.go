package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/exmini"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// txFlags are the transaction fields settable from the command line.
type txFlags struct {
	txType, dealID, date, customer, exchanger, account string
	base, target, amount, payable, rate, exchangerRate string
	notes                                              string
}

func (t *txFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.txType, "type", "", "Transaction type: inflow, outflow or conversion")
	f.StringVar(&t.dealID, "deal", "", "Deal id, generated from the customer and date when empty")
	f.StringVar(&t.date, "d", "", "Transaction date, today when empty")
	f.StringVar(&t.customer, "customer", "", "Customer name")
	f.StringVar(&t.exchanger, "exchanger", "", "Exchanger name")
	f.StringVar(&t.account, "account", "", "Account id")
	f.StringVar(&t.base, "from", "", "Base currency")
	f.StringVar(&t.target, "to", "", "Target currency of a conversion")
	f.StringVar(&t.amount, "amount", "", "Amount in the base currency")
	f.StringVar(&t.payable, "payable", "", "Payable in the target currency, computed from the rate when empty")
	f.StringVar(&t.rate, "rate", "", "Trader rate")
	f.StringVar(&t.exchangerRate, "exchanger-rate", "", "Exchanger rate")
	f.StringVar(&t.notes, "notes", "", "Free text notes")
}

// apply sets the fields of tx whose flag was set in f.
//
// Changing the amount, the rate or a currency of a conversion drops its
// payable unless -payable is given too, so that it is computed again.
func (t *txFlags) apply(f *flag.FlagSet, tx *exmini.Transaction) error {
	var errs []error
	repriced, payableSet := false, false
	f.Visit(func(fl *flag.Flag) {
		var err error
		switch fl.Name {
		case "amount", "rate", "from", "to":
			repriced = true
		case "payable":
			payableSet = true
		}
		switch fl.Name {
		case "type":
			tx.TxType = exmini.TxType(t.txType)
		case "deal":
			tx.DealID = t.dealID
		case "d":
			tx.TxDate = t.date
		case "customer":
			tx.Customer = t.customer
		case "exchanger":
			tx.Exchanger = t.exchanger
		case "account":
			tx.AccountID = t.account
		case "from":
			tx.BaseCurrency = t.base
		case "to":
			tx.TargetCurrency = t.target
		case "amount":
			tx.Amount, err = parseDecimal(t.amount)
		case "payable":
			tx.Payable, err = parseNullDecimal(t.payable)
		case "rate":
			tx.TraderRate, err = parseNullDecimal(t.rate)
		case "exchanger-rate":
			tx.ExchangerRate, err = parseNullDecimal(t.exchangerRate)
		case "notes":
			tx.Notes = t.notes
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid -%s: %w", fl.Name, err))
		}
	})
	if repriced && !payableSet && tx.IsConversion() {
		tx.Payable = decimal.NullDecimal{}
	}
	return errors.Join(errs...)
}

// parseDecimal parses a number that may use thousands separators.
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.NewReplacer(",", "", "_", "", " ", "").Replace(s))
}

// parseNullDecimal is parseDecimal where an empty string is null.
func parseNullDecimal(s string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := parseDecimal(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

type addCmd struct {
	tx txFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction" }
func (*addCmd) Usage() string {
	return `exm add -type <type> -from <cur> -amount <amount> [-customer <name>] [-deal <deal_id>] ...

  Records a new inflow, outflow or conversion in the local ledger.

  A conversion needs a target currency (-to) and a payable: it is computed
  from the trader rate (-rate) when not given.

Usage Examples:
$ exm add -type inflow -customer Acme -from RMB -amount 1,000
$ exm add -type conversion -deal ACME-05JAN2025-001 -from RMB -to AED -amount 1000 -rate 1.9
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { c.tx.SetFlags(f) }

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var tx exmini.Transaction
	if err := c.tx.apply(f, &tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	err := changeLedger(ctx, func(l *exmini.Ledger) (err error) {
		tx, err = l.Add(ctx, tx)
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding transaction:\n%v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added transaction #%d to deal %s\n", tx.ID, tx.DealID)
	return subcommands.ExitSuccess
}
