package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type pullCmd struct{}

func (*pullCmd) Name() string     { return "pull" }
func (*pullCmd) Synopsis() string { return "copy the remote ledger into the local store" }
func (*pullCmd) Usage() string {
	return `exm pull

  Fetches the remote ledger (-url or EXM_URL) and replaces the local ledger
  with it, so that it can be viewed offline and changed.
`
}

func (*pullCmd) SetFlags(f *flag.FlagSet) {}

func (c *pullCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	src := remote()
	if src == nil {
		fmt.Fprintln(os.Stderr, "Error: no remote ledger, set -url or EXM_URL and do not use -offline")
		return subcommands.ExitUsageError
	}
	n, err := replaceLocal(ctx, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error pulling %s: %v\n", src.Name(), err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Pulled %d transactions from %s\n", n, src.Name())
	return subcommands.ExitSuccess
}
