package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/exmini/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	deal  string
	query string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list and search transactions" }
func (*txCmd) Usage() string {
	return `exm tx [-deal <deal_id>] [-q <text>] [<text>...]

  Lists the transactions, most recent first, optionally only the ones of a
  deal. The query keeps the transactions whose date, deal, type, parties,
  currencies, amounts or notes contain the text.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.deal, "deal", "", "Only list the transactions of this deal")
	f.StringVar(&c.query, "q", "", "Case insensitive text to search")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	query := strings.TrimSpace(c.query + " " + strings.Join(f.Args(), " "))
	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderTransactions(renderer.NewTransactionList(ledger.Transactions(), query, c.deal)))
	return subcommands.ExitSuccess
}
