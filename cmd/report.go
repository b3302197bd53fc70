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

type reportCmd struct {
	deal     string
	markdown bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print the plain text report of a deal" }
func (*reportCmd) Usage() string {
	return `exm report -deal <deal_id> [-md]

  Prints the inflows, conversions and outflows of a deal as plain text, ready
  to be pasted. With -md the report is rendered with the deal alerts.

Usage Examples:
$ exm report -deal ACME-05JAN2025-001 | pbcopy
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.deal, "deal", "", "Deal to report on")
	f.BoolVar(&c.markdown, "md", false, "Render the report with the deal alerts")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.deal == "" && f.NArg() == 1 {
		c.deal = f.Arg(0)
	}
	if c.deal == "" {
		fmt.Fprintln(os.Stderr, "Error: -deal is required")
		return subcommands.ExitUsageError
	}
	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.markdown {
		printMarkdown(renderer.RenderDealReport(c.deal, ledger.Transactions()))
		return subcommands.ExitSuccess
	}
	fmt.Print(exmini.FormatReport(c.deal, ledger.Transactions()))
	return subcommands.ExitSuccess
}
