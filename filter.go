package exmini

import (
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/exmini/date"
)

// norm prepares a string for case insensitive matching.
func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// haystack joins fields into a single searchable string.
func haystack(fields ...string) string {
	for i, f := range fields {
		fields[i] = norm(f)
	}
	return strings.Join(fields, " ")
}

func (d Deal) haystack() string {
	return haystack(d.DealID, d.Customer, d.Exchanger, strconv.Itoa(d.TransactionCount), d.LastDate)
}

func (t Transaction) haystack() string {
	payable := ""
	if t.Payable.Valid {
		payable = t.Payable.Decimal.String()
	}
	return haystack(t.TxDate, t.DealID, string(t.TxType), t.Customer, t.Exchanger, t.AccountID,
		t.BaseCurrency, t.TargetCurrency, t.Amount.String(), payable, t.Notes)
}

// FilterDeals returns the deals matching query, most recent first.
// The query is a case insensitive substring; an empty query matches all deals.
func FilterDeals(deals []Deal, query string) []Deal {
	q := norm(query)
	res := make([]Deal, 0, len(deals))
	for _, d := range deals {
		if q == "" || strings.Contains(d.haystack(), q) {
			res = append(res, d)
		}
	}
	SortDeals(res)
	return res
}

// FilterTransactions returns the transactions matching query, most recent
// first. When dealScope is not empty only transactions of that deal are
// considered.
func FilterTransactions(txs []Transaction, query, dealScope string) []Transaction {
	q := norm(query)
	res := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if dealScope != "" && tx.DealID != dealScope {
			continue
		}
		if q == "" || strings.Contains(tx.haystack(), q) {
			res = append(res, tx)
		}
	}
	SortTransactions(res)
	return res
}

// SortTransactions sorts in place by descending transaction date, see CompareDates.
func SortTransactions(txs []Transaction) {
	slices.SortStableFunc(txs, func(a, b Transaction) int { return CompareDates(b.TxDate, a.TxDate) })
}

// SortDeals sorts in place by descending last date, see CompareDates.
func SortDeals(deals []Deal) {
	slices.SortStableFunc(deals, func(a, b Deal) int { return CompareDates(b.LastDate, a.LastDate) })
}

// CompareDates orders loosely formatted dates: any valid date is after any
// invalid or empty one, valid dates compare chronologically, invalid ones
// compare as lower cased strings. It returns -1, 0 or +1.
//
// The order is total so that sorting in descending order puts valid dates
// first, most recent first, then invalid ones in reverse lexicographic order.
func CompareDates(a, b string) int {
	da, errA := date.Parse(a)
	db, errB := date.Parse(b)
	switch {
	case errA == nil && errB == nil:
		return da.Compare(db)
	case errA == nil:
		return 1
	case errB == nil:
		return -1
	}
	return strings.Compare(norm(a), norm(b))
}
