package exmini

import "testing"

func TestFormatReport(t *testing.T) {
	txs := Normalize(mustDecode(t, `[
		{"deal_id":"D1","tx_type":"inflow","customer":"Acme","exchanger":"Ex","amount":1000,"base_currency":"RMB"},
		{"deal_id":"D2","tx_type":"inflow","customer":"Beta","amount":5,"base_currency":"USD"},
		{"deal_id":"D1","tx_type":"conversion","amount":1000,"base_currency":"RMB","target_currency":"AED","trader_rate":1.9,"payable":526.3158},
		{"deal_id":"D1","tx_type":"outflow","amount":526.32,"base_currency":"AED"}
	]`))

	want := `Deal Report: D1
Customer: Acme
Exchanger: Ex
Transactions: 3

Inflow
1,000.00 RMB

Conversion
1,000.00 RMB × 1.9 → 526.32 AED

Outflow
526.32 AED
`
	if got := FormatReport("D1", txs); got != want {
		t.Errorf("FormatReport() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatReportSections(t *testing.T) {
	tests := []struct {
		name string
		txs  []Transaction
		want string
	}{
		{
			name: "no data",
			txs:  []Transaction{{DealID: "D2", TxType: Inflow}},
			want: "No data for deal D1.\n",
		},
		{
			name: "outflow only",
			txs: []Transaction{
				{DealID: "D1", TxType: Outflow, Amount: dec("12345.678"), BaseCurrency: "USD"},
				{DealID: "D1", TxType: Outflow, Amount: dec("-3"), BaseCurrency: ""},
			},
			want: "Deal Report: D1\nTransactions: 2\n\nOutflow\n12,345.68 USD\n-3.00 ?\n",
		},
		{
			name: "large amount",
			txs:  []Transaction{{DealID: "D1", TxType: Inflow, Amount: dec("100000000000000000000"), BaseCurrency: "USD"}},
			want: "Deal Report: D1\nTransactions: 1\n\nInflow\n100,000,000,000,000,000,000.00 USD\n",
		},
		{
			name: "missing conversion values",
			txs: []Transaction{
				{DealID: "D1", Customer: "Acme", TxType: Conversion, Amount: dec("10"), BaseCurrency: "USD"},
				{DealID: "D1", TxType: "fee", Amount: dec("1"), BaseCurrency: "USD"},
			},
			want: "Deal Report: D1\nCustomer: Acme\nTransactions: 2\n\nConversion\n10.00 USD × ? → ? ?\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatReport("D1", tt.txs); got != tt.want {
				t.Errorf("FormatReport() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value, currency, want string
	}{
		{"1000", "RMB", "1,000.00"},
		{"526.315789", "AED", "526.32"},
		{"0.5", "USD", "0.50"},
		{"1234567.891", "XYZ", "1,234,567.89"},
		{"100000000000000000000", "USD", "100,000,000,000,000,000,000.00"},
		{"-123456789012345678901.005", "USD", "-123,456,789,012,345,678,901.01"},
		{"92233720368547758070", "JPY", "92,233,720,368,547,758,070"},
	}
	for _, tt := range tests {
		if got := FormatAmount(dec(tt.value), tt.currency); got != tt.want {
			t.Errorf("FormatAmount(%s, %s) = %q, want %q", tt.value, tt.currency, got, tt.want)
		}
	}
}
