package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/exmini"
	"github.com/google/subcommands"
)

type importCmd struct {
	file     string
	dataPath string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the local ledger with a JSON export" }
func (*importCmd) Usage() string {
	return `exm import -f <file> [-data-path <jsonpath>]

  Reads the transaction records of a JSON file, normalizes them and replaces
  the local ledger with them. The file holds an array of records, or an
  object holding the array at the data path.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSON file to import")
	f.StringVar(&c.dataPath, "data-path", exmini.DefaultDataPath, "jsonpath of the records when the file holds an object")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	}
	n, err := replaceLocal(ctx, &exmini.FileSource{Path: c.file, DataPath: c.dataPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %s: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d transactions from %s\n", n, c.file)
	return subcommands.ExitSuccess
}

// replaceLocal replaces the local ledger with the records of src, and returns
// the number of transactions saved.
func replaceLocal(ctx context.Context, src exmini.Source) (int, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return 0, err
	}
	ledger := exmini.NewLedger(exmini.Normalize(records)...)

	kv, closeStore, err := OpenStore(ctx)
	if err != nil {
		return 0, err
	}
	defer closeStore()
	if err := ledger.SaveTo(ctx, kv); err != nil {
		return 0, err
	}
	return ledger.Len(), nil
}
