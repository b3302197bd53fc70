package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/exmini"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the local ledger in its canonical form"
}
func (*fmtCmd) Usage() string {
	return `exm fmt [-o <file>]

  Reads the local ledger, normalizes every record and writes it back as a
  JSON array, one transaction per line, with canonical field names.
  With -o the canonical ledger is written to a file instead, "-" for the
  standard output.

Usage Examples:
# Export the ledger.
$ exm fmt -o - > ledger.json
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Write to this file instead of the local store")
}

func (c *fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	err := changeLedger(ctx, func(l *exmini.Ledger) error {
		switch c.outputFile {
		case "":
			return l.Save(ctx)
		case "-":
			return exmini.EncodeTransactions(os.Stdout, l.Transactions())
		}
		w, err := os.Create(c.outputFile)
		if err != nil {
			return err
		}
		if err := exmini.EncodeTransactions(w, l.Transactions()); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.outputFile == "" {
		fmt.Fprintf(os.Stderr, "✅ Successfully formatted ledger.\n")
	}
	return subcommands.ExitSuccess
}
