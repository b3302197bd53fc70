package exmini

import (
	"fmt"
	"strings"

	"github.com/etnz/exmini/date"
)

// today is the fallback day for deal ids, replaced in tests.
var today = date.Today

// GenerateDealID derives a new deal id from a customer name and a transaction
// date: "<PREFIX>-<DDMMMYYYY>-<SEQ>", e.g. "ACME-05JAN2025-001".
//
// PREFIX is the first four letters of the upper cased customer name, padded
// with X, or DEAL when the name has no letter. The date code uses today when
// txDate is not a valid date. SEQ counts the existing transactions whose deal
// id shares the prefix, plus one, skipping any sequence already taken.
//
// The id is unique among existing only; concurrent callers or a later merge
// with another transaction set can still produce duplicates.
func GenerateDealID(customer, txDate string, existing []Transaction) string {
	on, err := date.Parse(date.Truncate(txDate))
	if err != nil {
		on = today()
	}
	base := dealIDPrefix(customer) + "-" + on.Code()

	taken := make(map[string]bool)
	count := 0
	for _, tx := range existing {
		if strings.HasPrefix(tx.DealID, base) {
			count++
			taken[tx.DealID] = true
		}
	}
	for seq := count + 1; ; seq++ {
		id := fmt.Sprintf("%s-%03d", base, seq)
		if !taken[id] {
			return id
		}
	}
}

// dealIDPrefix returns the four letters prefix of a deal id.
func dealIDPrefix(customer string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(customer) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	letters := b.String()
	switch {
	case letters == "":
		return "DEAL"
	case len(letters) >= 4:
		return letters[:4]
	default:
		return letters + strings.Repeat("X", 4-len(letters))
	}
}
