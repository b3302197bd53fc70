package renderer

import "github.com/etnz/exmini"

// DealList is a deal search result.
type DealList struct {
	Query string
	Deals []exmini.Deal
}

// NewDealList filters deals with query.
func NewDealList(deals []exmini.Deal, query string) *DealList {
	return &DealList{Query: query, Deals: exmini.FilterDeals(deals, query)}
}

// TransactionList is a transaction search result, optionally scoped to a deal.
type TransactionList struct {
	Query        string
	Deal         string // Deal is the deal in scope, empty for all deals.
	Transactions []exmini.Transaction
}

// NewTransactionList filters txs with query within the deal scope.
func NewTransactionList(txs []exmini.Transaction, query, deal string) *TransactionList {
	return &TransactionList{Query: query, Deal: deal, Transactions: exmini.FilterTransactions(txs, query, deal)}
}

// AlertList pairs the findings with the transactions they point at.
type AlertList struct {
	Errors   []AlertRow
	Warnings []AlertRow
}

// AlertRow is a finding with its transaction.
type AlertRow struct {
	exmini.Finding
	Transaction exmini.Transaction
}

// NewAlertList evaluates the alerts of txs.
func NewAlertList(txs []exmini.Transaction) *AlertList {
	alerts := exmini.EvaluateAlerts(txs)
	rows := func(findings []exmini.Finding) []AlertRow {
		res := make([]AlertRow, len(findings))
		for i, f := range findings {
			res[i] = AlertRow{Finding: f, Transaction: txs[f.Index]}
		}
		return res
	}
	return &AlertList{Errors: rows(alerts.Errors), Warnings: rows(alerts.Warnings)}
}
