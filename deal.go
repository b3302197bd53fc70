package exmini

import (
	"github.com/etnz/exmini/date"
	"github.com/shopspring/decimal"
)

// Deal is a read time projection of all transactions sharing a deal id.
// Deals are never stored, they are recomputed from transactions.
type Deal struct {
	DealID           string
	Customer         string // Customer is the first non empty customer seen.
	Exchanger        string // Exchanger is the first non empty exchanger seen.
	BaseCurrency     string // BaseCurrency is the first non empty base currency seen.
	TransactionCount int
	TotalAmount      decimal.Decimal // TotalAmount sums the amount of every member transaction.
	FirstDate        string
	LastDate         string
}

// Aggregate groups transactions by deal id. Transactions without a deal id
// are left out.
//
// Deals are returned in order of first occurrence; callers needing another
// order sort the result, see SortDeals.
func Aggregate(txs []Transaction) []Deal {
	index := make(map[string]int)
	deals := make([]Deal, 0)
	for _, tx := range txs {
		if tx.DealID == "" {
			continue
		}
		i, ok := index[tx.DealID]
		if !ok {
			i = len(deals)
			index[tx.DealID] = i
			deals = append(deals, Deal{DealID: tx.DealID, TotalAmount: decimal.Zero})
		}
		deals[i].add(tx)
	}
	return deals
}

// add accumulates tx into the deal.
func (d *Deal) add(tx Transaction) {
	d.TransactionCount++
	d.TotalAmount = d.TotalAmount.Add(tx.Amount)
	if d.Customer == "" {
		d.Customer = tx.Customer
	}
	if d.Exchanger == "" {
		d.Exchanger = tx.Exchanger
	}
	if d.BaseCurrency == "" {
		d.BaseCurrency = tx.BaseCurrency
	}
	// An empty date never replaces a present one.
	if tx.TxDate == "" {
		return
	}
	if replacesDate(d.FirstDate, tx.TxDate, -1) {
		d.FirstDate = tx.TxDate
	}
	if replacesDate(d.LastDate, tx.TxDate, +1) {
		d.LastDate = tx.TxDate
	}
}

// replacesDate reports whether candidate should replace cur as the earliest
// (dir < 0) or latest (dir > 0) date of a deal. A valid date always wins over
// an invalid one, otherwise dates compare with CompareDates.
func replacesDate(cur, candidate string, dir int) bool {
	if cur == "" {
		return true
	}
	_, errCur := date.Parse(cur)
	_, errCand := date.Parse(candidate)
	if (errCur == nil) != (errCand == nil) {
		return errCand == nil
	}
	return CompareDates(candidate, cur)*dir > 0
}

// Deals returns the deals of the ledger transactions.
func (l *Ledger) Deals() []Deal { return Aggregate(l.transactions) }
