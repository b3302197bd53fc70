package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/exmini"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a transaction" }
func (*deleteCmd) Usage() string {
	return `exm delete -id <id>

  Removes a transaction from the local ledger.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the transaction to remove")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 && f.NArg() == 1 {
		c.id, _ = strconv.Atoi(f.Arg(0))
	}
	if c.id <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	err := changeLedger(ctx, func(l *exmini.Ledger) error { return l.Delete(ctx, c.id) })
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted transaction #%d\n", c.id)
	return subcommands.ExitSuccess
}
