package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/exmini/renderer"
	"github.com/google/subcommands"
)

type alertsCmd struct {
	strict bool
}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "list conversions missing their payable or trader rate" }
func (*alertsCmd) Usage() string {
	return `exm alerts [-strict]

  Lists the conversions missing both their payable and trader rate (errors)
  or one of them (warnings).
`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.strict, "strict", false, "Exit with a failure status when there are errors")
}

func (c *alertsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	alerts := renderer.NewAlertList(ledger.Transactions())
	printMarkdown(renderer.RenderAlerts(alerts))
	if c.strict && len(alerts.Errors) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
