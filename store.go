package exmini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/etnz/exmini/logger"
)

// StorageKey is the key under which the transactions are persisted.
const StorageKey = "exmini.transactions"

// KeyValue is the contract of a local persisted store.
//
// Get must return an error matching fs.ErrNotExist when the key was never
// written. Implementations are single writer: callers serialize Put calls.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// EncodeTransactions writes txs as a JSON array, one transaction per line.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	var b bytes.Buffer
	b.WriteString("[")
	for i, tx := range txs {
		data, err := tx.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode transaction #%d: %w", tx.ID, err)
		}
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n")
		b.Write(data)
	}
	if len(txs) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("]\n")
	_, err := w.Write(b.Bytes())
	return err
}

// DecodeTransactions reads a JSON array of transactions. Records go through
// Normalize, so canonical transactions are read back unchanged.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	records, err := DecodeRecords(data)
	if err != nil {
		return nil, err
	}
	return Normalize(records), nil
}

// readLocal reads the persisted transactions. A missing key is an empty set.
// A corrupt payload is reported as a *LoadError along with an empty set, other
// errors are returned as is.
func readLocal(ctx context.Context, kv KeyValue, key string) ([]Transaction, error) {
	data, err := kv.Get(ctx, key)
	if errors.Is(err, fs.ErrNotExist) {
		return []Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", key, err)
	}
	txs, err := DecodeTransactions(bytes.NewReader(data))
	if err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Str("key", key).Msg("corrupt local transactions, starting empty")
		return []Transaction{}, &LoadError{Source: key, Err: err}
	}
	return txs, nil
}

// writeLocal persists txs under key.
func writeLocal(ctx context.Context, kv KeyValue, key string, txs []Transaction) error {
	var b bytes.Buffer
	if err := EncodeTransactions(&b, txs); err != nil {
		return err
	}
	if err := kv.Put(ctx, key, b.Bytes()); err != nil {
		return fmt.Errorf("cannot save %q: %w", key, err)
	}
	return nil
}
