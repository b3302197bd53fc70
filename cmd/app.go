// Package cmd implements the exm command line, a viewer and editor of a
// currency exchange ledger.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/exmini"
	"github.com/etnz/exmini/logger"
	"github.com/etnz/exmini/store"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storePath = flag.String("store", ".exm", "Directory of the local store")
	backend   = flag.String("backend", "file", "Local store backend: file or sqlite")
	remoteURL = flag.String("url", "", "URL of the remote JSON ledger, local store only if empty")
	dataPath  = flag.String("data-path", exmini.DefaultDataPath, "jsonpath of the records when the remote payload is an object")
	offline   = flag.Bool("offline", false, "Do not read the remote ledger")
	raw       = flag.Bool("raw", false, "Print markdown as is, without terminal rendering")
	Verbose   = flag.Bool("v", false, "Log debug information")
)

// Environment variables providing defaults to the global flags, and passed
// on to extensions.
const (
	EnvStore    = "EXM_STORE"
	EnvBackend  = "EXM_BACKEND"
	EnvURL      = "EXM_URL"
	EnvDataPath = "EXM_DATA_PATH"
	EnvOffline  = "EXM_OFFLINE"
	EnvVerbose  = "EXM_VERBOSE"
)

// envFlags maps the environment variables to the global flags they set.
var envFlags = map[string]string{
	EnvStore:    "store",
	EnvBackend:  "backend",
	EnvURL:      "url",
	EnvDataPath: "data-path",
	EnvOffline:  "offline",
	EnvVerbose:  "v",
}

// sqliteFile is the name of the database in the store directory.
const sqliteFile = "exm.db"

// Commands lists all the exm subcommands, by group.
var Commands = map[string][]subcommands.Command{
	"views": {
		&dashboardCmd{},
		&dealsCmd{},
		&txCmd{},
		&reportCmd{},
		&alertsCmd{},
		&publishCmd{},
	},
	"changes": {
		&addCmd{},
		&editCmd{},
		&deleteCmd{},
		&importCmd{},
		&pullCmd{},
		&fmtCmd{},
	},
	"tools": {
		&newIDCmd{},
		&payableCmd{},
		&rulesCmd{},
		&topicCmd{},
	},
}

// Register registers all the Commands in c.
func Register(c *subcommands.Commander) {
	groups := make([]string, 0, len(Commands))
	for group := range Commands {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	for _, group := range groups {
		for _, cmd := range Commands[group] {
			c.Register(cmd, group)
		}
	}
}

// LoadEnv loads the .env files, the one of the working directory by default,
// and sets the flags of f from the environment variables. Explicit command
// line flags win as long as f is parsed afterwards.
func LoadEnv(f *flag.FlagSet, files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load env file: %w", err)
	}
	for env, name := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := f.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}
	return nil
}

// Context returns the root context of the application, carrying the logger.
func Context() context.Context {
	level := zerolog.WarnLevel
	if *Verbose {
		level = zerolog.DebugLevel
	}
	return logger.WithContext(context.Background(), logger.New(level))
}

// OpenStore opens the local store selected by the global flags. closer must
// be called once done.
func OpenStore(ctx context.Context) (kv exmini.KeyValue, closer func() error, err error) {
	switch *backend {
	case "file":
		return store.NewFile(*storePath), func() error { return nil }, nil
	case "sqlite":
		if err := os.MkdirAll(*storePath, 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create store directory: %w", err)
		}
		db, err := store.OpenSQLite(ctx, filepath.Join(*storePath, sqliteFile))
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q, want file or sqlite", *backend)
}

// remote returns the remote source, nil when there is none or in offline mode.
func remote() exmini.Source {
	if *remoteURL == "" || *offline {
		return nil
	}
	return &exmini.HTTPSource{URL: *remoteURL, DataPath: *dataPath}
}

// loadLedger loads the transactions to view, from the remote ledger first.
// Failures to load are only warnings: the view shows whatever was found.
func loadLedger(ctx context.Context) (*exmini.Ledger, error) {
	kv, closeStore, err := OpenStore(ctx)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	ledger, status := exmini.Load(ctx, remote(), kv)
	if !status.OK() {
		fmt.Fprintf(os.Stderr, "Warning: showing %s transactions: %v\n", status.Origin, status.Err)
	}
	return ledger, nil
}

// changeLedger opens the local ledger, applies change and closes the store.
// Changes are saved by the ledger itself.
func changeLedger(ctx context.Context, change func(*exmini.Ledger) error) error {
	kv, closeStore, err := OpenStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	ledger, err := exmini.OpenLedger(ctx, kv)
	if err != nil {
		return err
	}
	return change(ledger)
}

// printMarkdown renders md for the terminal, unless -raw is set.
func printMarkdown(md string) {
	if *raw {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
