package exmini

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"
)

// now is the clock used to timestamp new transactions, replaced in tests.
var now = time.Now

// Ledger is the list of transactions owned by the caller, optionally backed
// by a local store.
//
// Every mutation is a read-modify-write: the next list is computed, persisted,
// and only then becomes the ledger content. A failed save leaves the ledger
// unchanged. A Ledger is not safe for concurrent use.
type Ledger struct {
	transactions []Transaction
	kv           KeyValue // kv is nil for in-memory ledgers.
}

// NewLedger creates an in-memory ledger holding txs.
func NewLedger(txs ...Transaction) *Ledger {
	return &Ledger{transactions: slices.Clone(txs)}
}

// OpenLedger reads the ledger persisted in kv. A missing or corrupt payload
// opens an empty ledger; only read failures are returned.
func OpenLedger(ctx context.Context, kv KeyValue) (*Ledger, error) {
	txs, err := readLocal(ctx, kv, StorageKey)
	var loadErr *LoadError
	if err != nil && !errors.As(err, &loadErr) {
		return nil, err
	}
	return &Ledger{transactions: txs, kv: kv}, nil
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the transactions in recording order.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// Transaction returns the transaction with this id.
func (l *Ledger) Transaction(id int) (Transaction, bool) {
	i := l.index(id)
	if i < 0 {
		return Transaction{}, false
	}
	return l.transactions[i], true
}

func (l *Ledger) index(id int) int {
	return slices.IndexFunc(l.transactions, func(tx Transaction) bool { return tx.ID == id })
}

// nextID returns the highest id plus one.
func (l *Ledger) nextID() int {
	id := 0
	for _, tx := range l.transactions {
		id = max(id, tx.ID)
	}
	return id + 1
}

// Add records a new user entered transaction and returns it as stored.
//
// The date defaults to today. A conversion missing its payable gets it
// computed from the trader rate. A transaction with no deal id gets a
// generated one. The id and timestamp are always assigned.
func (l *Ledger) Add(ctx context.Context, tx Transaction) (Transaction, error) {
	tx = tidy(tx)
	tx.ID = 0
	if tx.TxDate == "" {
		tx.TxDate = today().String()
	}
	if tx.IsConversion() && IsMissing(tx.Payable) {
		tx.Payable = ComputePayable(tx.BaseCurrency, tx.TargetCurrency, tx.Amount, tx.TraderRate.Decimal)
	}
	if err := Validate(tx); err != nil {
		return Transaction{}, err
	}
	if tx.DealID == "" {
		tx.DealID = GenerateDealID(tx.Customer, tx.TxDate, l.transactions)
	}
	tx.ID = l.nextID()
	tx.Timestamp = now().UTC().Format(time.RFC3339)

	next := append(slices.Clone(l.transactions), tx)
	if err := l.commit(ctx, next); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Replace substitutes the transaction with the same id. The creation
// timestamp is kept when tx has none.
func (l *Ledger) Replace(ctx context.Context, tx Transaction) error {
	i := l.index(tx.ID)
	if i < 0 {
		return fmt.Errorf("cannot replace transaction #%d: %w", tx.ID, ErrNotFound)
	}
	old := l.transactions[i]
	tx = tidy(tx)
	if tx.DealID == "" {
		tx.DealID = old.DealID
	}
	if tx.TxDate == "" {
		tx.TxDate = old.TxDate
	}
	if tx.Timestamp == "" {
		tx.Timestamp = old.Timestamp
	}
	if tx.IsConversion() && IsMissing(tx.Payable) {
		tx.Payable = ComputePayable(tx.BaseCurrency, tx.TargetCurrency, tx.Amount, tx.TraderRate.Decimal)
	}
	if err := Validate(tx); err != nil {
		return err
	}
	next := slices.Clone(l.transactions)
	next[i] = tx
	return l.commit(ctx, next)
}

// Delete removes the transaction with this id.
func (l *Ledger) Delete(ctx context.Context, id int) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("cannot delete transaction #%d: %w", id, ErrNotFound)
	}
	next := slices.Delete(slices.Clone(l.transactions), i, i+1)
	return l.commit(ctx, next)
}

// Save persists the current transactions, a no-op for in-memory ledgers.
func (l *Ledger) Save(ctx context.Context) error {
	if l.kv == nil {
		return nil
	}
	return writeLocal(ctx, l.kv, StorageKey, l.transactions)
}

// SaveTo attaches the ledger to kv and persists it there.
func (l *Ledger) SaveTo(ctx context.Context, kv KeyValue) error {
	if err := writeLocal(ctx, kv, StorageKey, l.transactions); err != nil {
		return err
	}
	l.kv = kv
	return nil
}

// commit persists next, then makes it the ledger content.
func (l *Ledger) commit(ctx context.Context, next []Transaction) error {
	if l.kv != nil {
		if err := writeLocal(ctx, l.kv, StorageKey, next); err != nil {
			return err
		}
	}
	l.transactions = next
	return nil
}
