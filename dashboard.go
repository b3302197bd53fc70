package exmini

import (
	"github.com/etnz/exmini/date"
)

// TopDeals is the number of recent deals shown on the dashboard.
const TopDeals = 6

// NoDate is displayed in place of a missing date.
const NoDate = "—"

// Dashboard holds the key figures of a transaction set.
type Dashboard struct {
	TotalDeals        int
	TotalTransactions int
	LastDate          string // LastDate is the most recent valid transaction date, or NoDate.
	SelectedDeal      string // SelectedDeal is the deal in scope, "All" when none.
	RecentDeals       []Deal // RecentDeals are the TopDeals most recent deals.
	Errors            int    // Errors is the number of conversions missing payable and rate.
	Warnings          int    // Warnings is the number of conversions missing one of them.
}

// NewDashboard computes the dashboard of txs. selectedDeal is only displayed.
func NewDashboard(txs []Transaction, selectedDeal string) Dashboard {
	deals := FilterDeals(Aggregate(txs), "")
	alerts := EvaluateAlerts(txs)
	d := Dashboard{
		TotalDeals:        len(deals),
		TotalTransactions: len(txs),
		LastDate:          NoDate,
		SelectedDeal:      "All",
		RecentDeals:       deals[:min(TopDeals, len(deals))],
		Errors:            len(alerts.Errors),
		Warnings:          len(alerts.Warnings),
	}
	if selectedDeal != "" {
		d.SelectedDeal = selectedDeal
	}

	var last date.Date
	for _, tx := range txs {
		if on, err := date.Parse(tx.TxDate); err == nil && on.After(last) {
			last = on
		}
	}
	if !last.IsZero() {
		d.LastDate = last.String()
	}
	return d
}
