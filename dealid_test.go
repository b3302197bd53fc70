package exmini

import (
	"testing"

	"github.com/etnz/exmini/date"
)

func TestDealIDPrefix(t *testing.T) {
	tests := []struct{ customer, want string }{
		{"Acme Trading", "ACME"},
		{"al", "ALXX"},
		{"o'Neil & Co", "ONEI"},
		{"B2B", "BBXX"},
		{"123", "DEAL"},
		{"", "DEAL"},
	}
	for _, tt := range tests {
		if got := dealIDPrefix(tt.customer); got != tt.want {
			t.Errorf("dealIDPrefix(%q) = %q, want %q", tt.customer, got, tt.want)
		}
	}
}

func TestGenerateDealID(t *testing.T) {
	fixToday(t, date.New(2025, 3, 9))

	tests := []struct {
		name     string
		customer string
		txDate   string
		existing []Transaction
		want     string
	}{
		{
			name:     "first of the day",
			customer: "Acme",
			txDate:   "2025-01-05",
			want:     "ACME-05JAN2025-001",
		},
		{
			name:     "timestamp date",
			customer: "Acme",
			txDate:   "2025-01-05T22:10:00Z",
			want:     "ACME-05JAN2025-001",
		},
		{
			name:     "counts transactions sharing the prefix",
			customer: "Acme",
			txDate:   "2025-01-05",
			existing: []Transaction{
				{DealID: "ACME-05JAN2025-001"},
				{DealID: "ACME-05JAN2025-001"},
				{DealID: "ACME-06JAN2025-001"},
				{DealID: "BETA-05JAN2025-001"},
			},
			want: "ACME-05JAN2025-003",
		},
		{
			name:     "skips taken sequences",
			customer: "Acme",
			txDate:   "2025-01-05",
			existing: []Transaction{{DealID: "ACME-05JAN2025-002"}},
			want:     "ACME-05JAN2025-003",
		},
		{
			name:     "invalid date falls back to today",
			customer: "Acme",
			txDate:   "soon",
			want:     "ACME-09MAR2025-001",
		},
		{
			name:   "no customer",
			txDate: "2025-12-31",
			want:   "DEAL-31DEC2025-001",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateDealID(tt.customer, tt.txDate, tt.existing); got != tt.want {
				t.Errorf("GenerateDealID(%q, %q) = %q, want %q", tt.customer, tt.txDate, got, tt.want)
			}
		})
	}
}

func TestGenerateDealIDUniqueInBatch(t *testing.T) {
	var txs []Transaction
	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		id := GenerateDealID("Acme", "2025-01-05", txs)
		if seen[id] {
			t.Fatalf("call %d generated %q twice", i, id)
		}
		seen[id] = true
		txs = append(txs, Transaction{ID: i + 1, DealID: id, Customer: "Acme", TxDate: "2025-01-05"})
	}
	if !seen["ACME-05JAN2025-025"] {
		t.Errorf("the 25th id should be ACME-05JAN2025-025, got %v", seen)
	}
}
