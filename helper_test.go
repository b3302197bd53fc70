package exmini

import (
	"testing"

	"github.com/etnz/exmini/date"
	"github.com/shopspring/decimal"
)

// dec is a helper for tests to create a decimal from a const.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// null is a helper for tests to create a set optional decimal from a const.
func null(s string) decimal.NullDecimal { return decimal.NewNullDecimal(dec(s)) }

// fixToday freezes the fallback day of deal ids for the duration of the test.
func fixToday(t *testing.T, on date.Date) {
	t.Helper()
	old := today
	today = func() date.Date { return on }
	t.Cleanup(func() { today = old })
}

// mustDecode decodes a JSON array of raw records or fails the test.
func mustDecode(t *testing.T, payload string) []RawRecord {
	t.Helper()
	records, err := DecodeRecords([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeRecords() error = %v", err)
	}
	return records
}

// ids returns the ids of txs.
func ids(txs []Transaction) []int {
	res := make([]int, len(txs))
	for i, tx := range txs {
		res[i] = tx.ID
	}
	return res
}
