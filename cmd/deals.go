package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/exmini"
	"github.com/etnz/exmini/renderer"
	"github.com/google/subcommands"
)

type dealsCmd struct {
	query string
}

func (*dealsCmd) Name() string     { return "deals" }
func (*dealsCmd) Synopsis() string { return "list and search deals" }
func (*dealsCmd) Usage() string {
	return `exm deals [-q <text>] [<text>...]

  Lists the deals, most recent first. The query keeps the deals whose id,
  customer, exchanger, transaction count or last date contains the text.
`
}

func (c *dealsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Case insensitive text to search")
}

func (c *dealsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	query := strings.TrimSpace(c.query + " " + strings.Join(f.Args(), " "))
	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderDeals(renderer.NewDealList(exmini.Aggregate(ledger.Transactions()), query)))
	return subcommands.ExitSuccess
}
