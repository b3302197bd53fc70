package exmini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/etnz/exmini/date"
	"github.com/shopspring/decimal"
)

// Canonical keys of a persisted transaction.
const (
	keyID             = "id"
	keyDealID         = "deal_id"
	keyTxDate         = "tx_date"
	keyTxType         = "tx_type"
	keyCustomer       = "customer"
	keyExchanger      = "exchanger"
	keyAccountID      = "account_id"
	keyBaseCurrency   = "base_currency"
	keyTargetCurrency = "target_currency"
	keyAmount         = "amount"
	keyPayable        = "payable"
	keyTraderRate     = "trader_rate"
	keyExchangerRate  = "exchanger_rate"
	keyNotes          = "notes"
	keyTimestamp      = "timestamp"
)

// aliases lists, for each canonical key, the names it is looked up with, canonical first.
var aliases = map[string][]string{
	keyID:             {"id", "ID", "Id"},
	keyDealID:         {"deal_id", "dealId", "DealID", "deal"},
	keyTxDate:         {"tx_date", "txDate", "date", "Date"},
	keyTxType:         {"tx_type", "txType", "type", "Type"},
	keyCustomer:       {"customer", "Customer", "customer_name"},
	keyExchanger:      {"exchanger", "Exchanger", "exchanger_name"},
	keyAccountID:      {"account_id", "accountId", "account"},
	keyBaseCurrency:   {"base_currency", "baseCurrency", "from_currency", "currency"},
	keyTargetCurrency: {"target_currency", "targetCurrency", "to_currency"},
	keyAmount:         {"amount", "Amount", "base_amount"},
	keyPayable:        {"payable", "Payable", "target_amount"},
	keyTraderRate:     {"trader_rate", "traderRate", "rate"},
	keyExchangerRate:  {"exchanger_rate", "exchangerRate"},
	keyNotes:          {"notes", "Notes", "note", "memo"},
	keyTimestamp:      {"timestamp", "created_at", "createdAt"},
}

// RawRecord is a loosely typed transaction as found in an imported payload.
// Only the Normalizer reads it.
type RawRecord map[string]any

// lookup returns the value of the first alias of key present in the record.
func (r RawRecord) lookup(key string) (v any, present bool) {
	for _, name := range aliases[key] {
		if v, ok := r[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// text returns the value of key as a trimmed string, "" when missing.
func (r RawRecord) text(key string) string {
	v, ok := r.lookup(key)
	if !ok || v == nil {
		return ""
	}
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// number returns the value of key as an optional decimal: null when the key is
// absent or null, zero when present but not a number.
func (r RawRecord) number(key string) decimal.NullDecimal {
	v, ok := r.lookup(key)
	if !ok || v == nil {
		return decimal.NullDecimal{}
	}
	d, _ := coerce(v)
	return decimal.NewNullDecimal(d)
}

// coerce converts a loosely typed value to a decimal. Thousands separators are
// stripped from strings. It returns zero and false when the value is not a number.
func coerce(v any) (decimal.Decimal, bool) {
	switch v := v.(type) {
	case decimal.Decimal:
		return v, true
	case json.Number:
		return coerceString(v.String())
	case string:
		return coerceString(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	}
	return decimal.Zero, false
}

func coerceString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// IsMissing reports whether an optional value counts as missing: null or zero.
func IsMissing(v decimal.NullDecimal) bool {
	return !v.Valid || v.Decimal.IsZero()
}

// Records converts a decoded JSON value into raw records. It fails with an
// *InvalidShapeError when v is not an array. Array items that are not objects
// become empty records, that the Normalizer drops.
func Records(v any) ([]RawRecord, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, &InvalidShapeError{Kind: kindOf(v)}
	}
	records := make([]RawRecord, 0, len(list))
	for _, item := range list {
		obj, _ := item.(map[string]any)
		records = append(records, RawRecord(obj))
	}
	return records, nil
}

// DecodeRecords parses a JSON array of raw records. Numbers are kept exact.
func DecodeRecords(data []byte) ([]RawRecord, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return Records(v)
}

// decodeJSON parses data keeping numbers as json.Number.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("not a correct json: %w", err)
	}
	return v, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	}
	return fmt.Sprintf("%T", v)
}

// Normalize coerces raw records into canonical transactions.
//
// Missing or alternate field names are resolved through aliases, amounts are
// coerced to decimals (0 when missing), dates are truncated to their day part,
// currencies are upper cased. Records with no deal id, no customer and no date
// are dropped. Valid ids are preserved; records with no id, or an id already
// used, get the next free id in input order.
func Normalize(raw []RawRecord) []Transaction {
	txs := make([]Transaction, 0, len(raw))
	ids := make([]int, 0, len(raw))
	for _, r := range raw {
		tx := Transaction{
			DealID:         r.text(keyDealID),
			TxDate:         date.Truncate(r.text(keyTxDate)),
			TxType:         ParseTxType(r.text(keyTxType)),
			Customer:       r.text(keyCustomer),
			Exchanger:      r.text(keyExchanger),
			AccountID:      r.text(keyAccountID),
			BaseCurrency:   strings.ToUpper(r.text(keyBaseCurrency)),
			TargetCurrency: strings.ToUpper(r.text(keyTargetCurrency)),
			Amount:         r.number(keyAmount).Decimal,
			Payable:        r.number(keyPayable),
			TraderRate:     r.number(keyTraderRate),
			ExchangerRate:  r.number(keyExchangerRate),
			Notes:          r.text(keyNotes),
			Timestamp:      r.text(keyTimestamp),
		}
		if tx.DealID == "" && tx.Customer == "" && tx.TxDate == "" {
			continue
		}
		txs = append(txs, tx)
		ids = append(ids, rawID(r))
	}
	assignIDs(txs, ids)
	return txs
}

// rawID returns the positive integer id of the record, or 0.
func rawID(r RawRecord) int {
	v, ok := r.lookup(keyID)
	if !ok || v == nil {
		return 0
	}
	d, ok := coerce(v)
	if !ok || !d.IsInteger() || !d.IsPositive() || d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0
	}
	return int(d.IntPart())
}

// assignIDs keeps the first occurrence of each candidate id and numbers the
// remaining transactions after the highest kept id.
func assignIDs(txs []Transaction, candidates []int) {
	used := make(map[int]bool, len(txs))
	next := 0
	for i, id := range candidates {
		if id == 0 || used[id] {
			continue
		}
		used[id] = true
		txs[i].ID = id
		next = max(next, id)
	}
	for i := range txs {
		if txs[i].ID != 0 {
			continue
		}
		next++
		txs[i].ID = next
	}
}
