package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/exmini"
	"github.com/google/subcommands"
)

type payableCmd struct {
	from, to     string
	amount, rate string
}

func (*payableCmd) Name() string     { return "payable" }
func (*payableCmd) Synopsis() string { return "compute the payable of a conversion" }
func (*payableCmd) Usage() string {
	return `exm payable -from <cur> -to <cur> -amount <amount> -rate <rate>

  Applies the conversion rule of the currency pair, see 'exm rules'.

Usage Examples:
$ exm payable -from RMB -to AED -amount 1000 -rate 1.9
526.32 AED
`
}

func (c *payableCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Base currency")
	f.StringVar(&c.to, "to", "", "Target currency")
	f.StringVar(&c.amount, "amount", "", "Amount in the base currency")
	f.StringVar(&c.rate, "rate", "", "Trader rate")
}

func (c *payableCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseDecimal(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	rate, err := parseDecimal(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -rate: %v\n", err)
		return subcommands.ExitUsageError
	}
	payable := exmini.ComputePayable(c.from, c.to, amount, rate)
	if !payable.Valid {
		fmt.Fprintln(os.Stderr, "Error: the payable cannot be computed, currencies, amount and rate are required")
		return subcommands.ExitFailure
	}
	target := strings.ToUpper(strings.TrimSpace(c.to))
	fmt.Printf("%s %s\n", exmini.FormatAmount(payable.Decimal, target), target)
	return subcommands.ExitSuccess
}
