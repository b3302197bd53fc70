package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/exmini"
	"github.com/etnz/exmini/renderer"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type publishCmd struct {
	outputDir string
	html      bool
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generates all the views as markdown or html files" }

func (*publishCmd) Usage() string {
	return `exm publish [-o <dir>] [-html]

  Generates the dashboard, the deal and transaction lists, the alerts and one
  report per deal, and saves them to a directory tree:

    index, deals, transactions, alerts
    deals/<deal_id>
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated files")
	f.BoolVar(&c.html, "html", false, "Generate html pages instead of markdown")
}

func (c *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	n, err := publish(c.outputDir, ledger.Transactions(), c.html)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error publishing: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Published %d pages to %s\n", n, c.outputDir)
	return subcommands.ExitSuccess
}

// pages returns the markdown of every view of txs, by relative file path
// without extension.
func pages(txs []exmini.Transaction) map[string]string {
	deals := exmini.Aggregate(txs)
	dashboard := exmini.NewDashboard(txs, "")
	res := map[string]string{
		"index":        renderer.RenderDashboard(&dashboard),
		"deals":        renderer.RenderDeals(renderer.NewDealList(deals, "")),
		"transactions": renderer.RenderTransactions(renderer.NewTransactionList(txs, "", "")),
		"alerts":       renderer.RenderAlerts(renderer.NewAlertList(txs)),
	}
	for _, d := range deals {
		res[filepath.Join("deals", fileName(d.DealID))] = renderer.RenderDealReport(d.DealID, txs)
	}
	return res
}

// fileName turns a deal id into a safe file name.
var fileName = strings.NewReplacer("/", "_", `\`, "_", "..", "_", ":", "_").Replace

// publish writes the pages of txs under dir and returns the number of pages.
func publish(dir string, txs []exmini.Transaction, html bool) (int, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	count := 0
	for name, content := range pages(txs) {
		data, ext := []byte(content), ".md"
		if html {
			var body bytes.Buffer
			if err := md.Convert(data, &body); err != nil {
				return count, fmt.Errorf("cannot convert %s to html: %w", name, err)
			}
			var page bytes.Buffer
			if err := pageTemplate.Execute(&page, struct {
				Title string
				Body  template.HTML
			}{name, template.HTML(body.String())}); err != nil {
				return count, err
			}
			data, ext = page.Bytes(), ".html"
		}
		path := filepath.Join(dir, name+ext)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return count, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
{{.Body}}
</body>
</html>
`))
