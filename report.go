package exmini

import (
	"fmt"
	"strings"
)

// reportSections lists the report sections in their fixed order.
var reportSections = []struct {
	title  string
	txType TxType
}{
	{"Inflow", Inflow},
	{"Conversion", Conversion},
	{"Outflow", Outflow},
}

// FormatReport renders the plain text summary of a deal, suitable for a clipboard.
//
// Transactions of the deal are grouped in Inflow, Conversion and Outflow
// sections, in this order; empty sections are omitted. Within a section the
// order of txs is preserved. Transactions of other types are counted but not
// listed.
func FormatReport(dealID string, txs []Transaction) string {
	var members []Transaction
	for _, tx := range txs {
		if tx.DealID == dealID {
			members = append(members, tx)
		}
	}

	var b strings.Builder
	if dealID == "" || len(members) == 0 {
		fmt.Fprintf(&b, "No data for deal %s.\n", dealID)
		return b.String()
	}

	deal := Aggregate(members)[0]
	fmt.Fprintf(&b, "Deal Report: %s\n", dealID)
	if deal.Customer != "" {
		fmt.Fprintf(&b, "Customer: %s\n", deal.Customer)
	}
	if deal.Exchanger != "" {
		fmt.Fprintf(&b, "Exchanger: %s\n", deal.Exchanger)
	}
	fmt.Fprintf(&b, "Transactions: %d\n", len(members))

	for _, section := range reportSections {
		printed := false
		for _, tx := range members {
			if tx.TxType != section.txType {
				continue
			}
			if !printed {
				fmt.Fprintf(&b, "\n%s\n", section.title)
				printed = true
			}
			b.WriteString(reportLine(tx))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// reportLine formats a single transaction of a report section.
func reportLine(tx Transaction) string {
	base := displayCurrency(tx.BaseCurrency)
	amount := FormatAmount(tx.Amount, base)
	if !tx.IsConversion() {
		return fmt.Sprintf("%s %s", amount, base)
	}
	target := displayCurrency(tx.TargetCurrency)
	return fmt.Sprintf("%s %s × %s → %s %s", amount, base, FormatRate(tx.TraderRate), FormatNullAmount(tx.Payable, target), target)
}

// displayCurrency returns the upper cased currency, "?" when empty.
func displayCurrency(cur string) string {
	if cur == "" {
		return "?"
	}
	return strings.ToUpper(cur)
}
