package exmini

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func dealsEqual(a, b []Deal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x.DealID != y.DealID || x.Customer != y.Customer || x.Exchanger != y.Exchanger ||
			x.BaseCurrency != y.BaseCurrency || x.TransactionCount != y.TransactionCount ||
			!x.TotalAmount.Equal(y.TotalAmount) || x.FirstDate != y.FirstDate || x.LastDate != y.LastDate {
			return false
		}
	}
	return true
}

func TestAggregate(t *testing.T) {
	txs := []Transaction{
		{ID: 1, DealID: "D1", TxDate: "2025-01-05", BaseCurrency: "RMB", Amount: dec("1000")},
		{ID: 2, DealID: "D2", TxDate: "2025-02-01", Customer: "Beta", Amount: dec("5")},
		{ID: 3, DealID: "D1", TxDate: "", Customer: "Acme", Exchanger: "Gate", Amount: dec("250.5")},
		{ID: 4, DealID: "", TxDate: "2025-03-01", Customer: "Loose", Amount: dec("999")},
		{ID: 5, DealID: "D1", TxDate: "2025-01-02", Customer: "Other", BaseCurrency: "USD", Amount: dec("0")},
		{ID: 6, DealID: "D1", TxDate: "2025-01-09", Amount: dec("-50")},
	}

	got := Aggregate(txs)
	want := []Deal{
		{DealID: "D1", Customer: "Acme", Exchanger: "Gate", BaseCurrency: "RMB", TransactionCount: 4,
			TotalAmount: dec("1200.5"), FirstDate: "2025-01-02", LastDate: "2025-01-09"},
		{DealID: "D2", Customer: "Beta", TransactionCount: 1, TotalAmount: dec("5"),
			FirstDate: "2025-02-01", LastDate: "2025-02-01"},
	}
	if !dealsEqual(got, want) {
		t.Errorf("Aggregate() = %+v, want %+v", got, want)
	}
}

func TestAggregateEmptyDates(t *testing.T) {
	got := Aggregate([]Transaction{
		{DealID: "D1", TxDate: ""},
		{DealID: "D1", TxDate: "2025-01-05"},
		{DealID: "D1", TxDate: ""},
	})
	if got[0].FirstDate != "2025-01-05" || got[0].LastDate != "2025-01-05" {
		t.Errorf("empty dates overwrote present ones: first %q last %q", got[0].FirstDate, got[0].LastDate)
	}

	got = Aggregate([]Transaction{{DealID: "D2"}})
	if got[0].FirstDate != "" || got[0].LastDate != "" {
		t.Errorf("deal without dates got first %q last %q", got[0].FirstDate, got[0].LastDate)
	}
}

func TestAggregateLooseDates(t *testing.T) {
	tests := []struct {
		name        string
		dates       []string
		first, last string
	}{
		{"unpadded", []string{"2025-01-10", "2025-1-5"}, "2025-1-5", "2025-01-10"},
		{"invalid after valid", []string{"2025-03-01", "n/a"}, "2025-03-01", "2025-03-01"},
		{"invalid before valid", []string{"n/a", "2025-03-01", "2025-02-01"}, "2025-02-01", "2025-03-01"},
		{"only invalid", []string{"n/a", "draft"}, "draft", "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var txs []Transaction
			for _, d := range tt.dates {
				txs = append(txs, Transaction{DealID: "D1", TxDate: d})
			}
			got := Aggregate(txs)[0]
			if got.FirstDate != tt.first || got.LastDate != tt.last {
				t.Errorf("Aggregate(%q) first %q last %q, want %q %q", tt.dates, got.FirstDate, got.LastDate, tt.first, tt.last)
			}
		})
	}
}

func TestSortDealsLooseDates(t *testing.T) {
	deals := Aggregate([]Transaction{
		{DealID: "B", TxDate: "2025-01-10"},
		{DealID: "B", TxDate: "2025-1-5"},
		{DealID: "A", TxDate: "2025-03-01"},
		{DealID: "A", TxDate: "n/a"},
	})
	SortDeals(deals)
	if deals[0].DealID != "A" || deals[1].DealID != "B" {
		t.Errorf("SortDeals() = %s, %s, want A, B", deals[0].DealID, deals[1].DealID)
	}
}

// randomTransactions returns a reproducible transaction set.
func randomTransactions(seed int64, n int) []Transaction {
	r := rand.New(rand.NewSource(seed))
	txs := make([]Transaction, n)
	for i := range txs {
		deal := ""
		if r.Intn(5) > 0 {
			deal = fmt.Sprintf("D%d", r.Intn(7))
		}
		txs[i] = Transaction{
			ID:     i + 1,
			DealID: deal,
			TxDate: fmt.Sprintf("2025-%02d-%02d", 1+r.Intn(12), 1+r.Intn(28)),
			Amount: decimal.New(r.Int63n(2000000)-1000000, -2),
		}
	}
	return txs
}

func TestAggregateSumInvariant(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		txs := randomTransactions(seed, 50)

		want := decimal.Zero
		for _, tx := range txs {
			if tx.DealID != "" {
				want = want.Add(tx.Amount)
			}
		}
		got := decimal.Zero
		count := 0
		for _, d := range Aggregate(txs) {
			got = got.Add(d.TotalAmount)
			count += d.TransactionCount
		}
		if !got.Equal(want) {
			t.Errorf("seed %d: sum of deal totals = %v, want %v", seed, got, want)
		}
		grouped := 0
		for _, tx := range txs {
			if tx.DealID != "" {
				grouped++
			}
		}
		if count != grouped {
			t.Errorf("seed %d: deals count %d transactions, want %d", seed, count, grouped)
		}
	}
}

func TestAggregateIdempotent(t *testing.T) {
	txs := randomTransactions(42, 100)
	first, second := Aggregate(txs), Aggregate(txs)
	if !dealsEqual(first, second) {
		t.Errorf("Aggregate() is not deterministic:\n%+v\n%+v", first, second)
	}
}
