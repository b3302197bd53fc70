package cmd

import (
	"context"
	"flag"

	"github.com/etnz/exmini"
	"github.com/etnz/exmini/renderer"
	"github.com/google/subcommands"
)

type rulesCmd struct{}

func (*rulesCmd) Name() string     { return "rules" }
func (*rulesCmd) Synopsis() string { return "display the conversion rule of each currency pair" }
func (*rulesCmd) Usage() string {
	return `exm rules

  Displays whether the payable of a currency pair is the amount multiplied
  or divided by the trader rate.
`
}

func (*rulesCmd) SetFlags(f *flag.FlagSet) {}

func (*rulesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.RenderRules(exmini.Rules()))
	return subcommands.ExitSuccess
}
