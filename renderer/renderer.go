package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/exmini"
)

//go:embed templates/*.md
var embedded embed.FS

// templates is the tree of markdown templates, rooted at the templates directory.
var templates = mustSub(embedded, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// RenderDashboard renders the dashboard figures and the recent deals.
func RenderDashboard(d *exmini.Dashboard) string {
	partials := map[string]string{
		"deal_table":     "deal_table.md",
		"alerts_summary": "alerts_summary.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// RenderDeals renders a filtered list of deals.
func RenderDeals(l *DealList) string {
	partials := map[string]string{
		"deal_table": "deal_table.md",
	}
	return renderTemplate("deals", "deals.md", partials, l)
}

// RenderTransactions renders a filtered list of transactions.
func RenderTransactions(l *TransactionList) string {
	partials := map[string]string{
		"transaction_table": "transaction_table.md",
	}
	return renderTemplate("transactions", "transactions.md", partials, l)
}

// RenderAlerts renders the conversions missing their payable or trader rate.
func RenderAlerts(a *AlertList) string {
	partials := map[string]string{
		"finding_table": "finding_table.md",
	}
	return renderTemplate("alerts", "alerts.md", partials, a)
}

// RenderRules renders the currency pair rule table.
func RenderRules(rules []exmini.PairRule) string {
	return renderTemplate("rules", "rules.md", nil, rules)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
