package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/exmini"
	"github.com/etnz/exmini/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	deal string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the key figures and the most recent deals" }
func (*dashboardCmd) Usage() string {
	return `exm dashboard [-deal <deal_id>]

  Displays the number of deals and transactions, the last transaction date,
  the alerts count and the most recent deals.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.deal, "deal", "", "Deal in scope, displayed in the header")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	d := exmini.NewDashboard(ledger.Transactions(), c.deal)
	printMarkdown(renderer.RenderDashboard(&d))
	return subcommands.ExitSuccess
}
