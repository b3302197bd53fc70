package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/exmini"
)

// RenderDealReport renders the plain text report of a deal in a code block,
// followed by the alerts raised by its conversions, if any.
func RenderDealReport(dealID string, txs []exmini.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Deal %s\n\n```text\n%s```\n", dealID, exmini.FormatReport(dealID, txs))

	var members []exmini.Transaction
	for _, tx := range txs {
		if tx.DealID == dealID {
			members = append(members, tx)
		}
	}
	ConditionalBlock(&b, func(w io.Writer) bool {
		alerts := exmini.EvaluateAlerts(members)
		fmt.Fprintf(w, "\n## Alerts\n\n")
		for _, f := range alerts.Errors {
			fmt.Fprintf(w, "- **error** transaction #%d is missing %s\n", f.ID, strings.Join(f.Missing, " and "))
		}
		for _, f := range alerts.Warnings {
			fmt.Fprintf(w, "- **warning** transaction #%d is missing %s\n", f.ID, strings.Join(f.Missing, " and "))
		}
		return alerts.Len() > 0
	})
	return b.String()
}
