package exmini

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TxType is a typed string for identifying the kind of a transaction.
type TxType string

// Transaction types known to the aggregation logic. Any other value is kept
// verbatim and treated as "other".
const (
	Inflow     TxType = "inflow"
	Outflow    TxType = "outflow"
	Conversion TxType = "conversion"
)

// ParseTxType returns the canonical lowercase type for known types, and the
// trimmed input unchanged otherwise.
func ParseTxType(s string) TxType {
	s = strings.TrimSpace(s)
	switch t := TxType(strings.ToLower(s)); t {
	case Inflow, Outflow, Conversion:
		return t
	}
	return TxType(s)
}

// Known reports whether t is one of inflow, outflow or conversion.
func (t TxType) Known() bool {
	return t == Inflow || t == Outflow || t == Conversion
}

// Transaction is a single recorded inflow, outflow or currency conversion.
//
// Transactions are values: they are changed only by replacing them in a Ledger.
type Transaction struct {
	ID             int
	DealID         string
	TxDate         string // TxDate is YYYY-MM-DD, or an opaque string when the source was not a date.
	TxType         TxType
	Customer       string
	Exchanger      string
	AccountID      string
	BaseCurrency   string
	TargetCurrency string
	Amount         decimal.Decimal     // Amount is the base currency magnitude.
	Payable        decimal.NullDecimal // Payable is the target currency magnitude of a conversion.
	TraderRate     decimal.NullDecimal
	ExchangerRate  decimal.NullDecimal
	Notes          string
	Timestamp      string // Timestamp is the optional RFC3339 creation time.
}

// IsConversion reports whether the transaction is a currency conversion.
func (t Transaction) IsConversion() bool { return t.TxType == Conversion }

// Equal reports whether both transactions hold the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.DealID == o.DealID &&
		t.TxDate == o.TxDate &&
		t.TxType == o.TxType &&
		t.Customer == o.Customer &&
		t.Exchanger == o.Exchanger &&
		t.AccountID == o.AccountID &&
		t.BaseCurrency == o.BaseCurrency &&
		t.TargetCurrency == o.TargetCurrency &&
		t.Amount.Equal(o.Amount) &&
		nullEqual(t.Payable, o.Payable) &&
		nullEqual(t.TraderRate, o.TraderRate) &&
		nullEqual(t.ExchangerRate, o.ExchangerRate) &&
		t.Notes == o.Notes &&
		t.Timestamp == o.Timestamp
}

func nullEqual(a, b decimal.NullDecimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.Decimal.Equal(b.Decimal)
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
// Keys are written in a fixed order, empty strings and null values are omitted.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append(keyID, t.ID)
	w.Optional(keyDealID, t.DealID)
	w.Optional(keyTxDate, t.TxDate)
	w.Optional(keyTxType, string(t.TxType))
	w.Optional(keyCustomer, t.Customer)
	w.Optional(keyExchanger, t.Exchanger)
	w.Optional(keyAccountID, t.AccountID)
	w.Optional(keyBaseCurrency, t.BaseCurrency)
	w.Optional(keyTargetCurrency, t.TargetCurrency)
	w.Append(keyAmount, t.Amount)
	w.Nullable(keyPayable, t.Payable)
	w.Nullable(keyTraderRate, t.TraderRate)
	w.Nullable(keyExchangerRate, t.ExchangerRate)
	w.Optional(keyNotes, t.Notes)
	w.Optional(keyTimestamp, t.Timestamp)
	return w.MarshalJSON()
}
