package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/exmini"
	"github.com/google/subcommands"
)

type editCmd struct {
	id int
	tx txFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change fields of a transaction" }
func (*editCmd) Usage() string {
	return `exm edit -id <id> [-amount <amount>] [-rate <rate>] ...

  Changes the fields given as flags, the others are kept. Changing the
  amount, rate or currencies of a conversion computes its payable again,
  unless -payable is given too. Use -payable '' to recompute it alone.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the transaction to change")
	c.tx.SetFlags(f)
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	err := changeLedger(ctx, func(l *exmini.Ledger) error {
		tx, ok := l.Transaction(c.id)
		if !ok {
			return fmt.Errorf("transaction #%d: %w", c.id, exmini.ErrNotFound)
		}
		if err := c.tx.apply(f, &tx); err != nil {
			return err
		}
		return l.Replace(ctx, tx)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error editing transaction:\n%v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Changed transaction #%d\n", c.id)
	return subcommands.ExitSuccess
}
