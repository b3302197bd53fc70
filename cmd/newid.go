package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/exmini"
	"github.com/google/subcommands"
)

type newIDCmd struct {
	customer string
	date     string
}

func (*newIDCmd) Name() string     { return "newid" }
func (*newIDCmd) Synopsis() string { return "print the next deal id for a customer" }
func (*newIDCmd) Usage() string {
	return `exm newid -customer <name> [-d <date>]

  Prints the deal id a new transaction of the customer would get, like
  ACME-05JAN2025-001.
`
}

func (c *newIDCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "customer", "", "Customer name")
	f.StringVar(&c.date, "d", "", "Transaction date, today when empty")
}

func (c *newIDCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(exmini.GenerateDealID(c.customer, c.date, ledger.Transactions()))
	return subcommands.ExitSuccess
}
