package exmini

import (
	"context"
	"errors"

	"github.com/etnz/exmini/logger"
)

// Origin tells where loaded transactions come from.
type Origin string

const (
	FromRemote Origin = "remote"
	FromLocal  Origin = "local"
	FromEmpty  Origin = "empty"
)

// LoadStatus reports how Load obtained its transactions.
type LoadStatus struct {
	Origin Origin
	Count  int
	Err    error // Err joins the *LoadError of every source that failed, nil if none.
}

// OK reports whether the first choice source was used without failure.
func (s LoadStatus) OK() bool { return s.Err == nil }

// Load reads the transactions from src, falling back to the ones persisted in
// kv, then to an empty set. It never fails: failures are reported in the
// status and logged. src and kv can be nil to skip them.
//
// The returned ledger is backed by kv, whatever the origin.
func Load(ctx context.Context, src Source, kv KeyValue) (*Ledger, LoadStatus) {
	log := logger.FromContext(ctx)
	var errs []error

	if src != nil {
		records, err := src.Records(ctx)
		if err == nil {
			txs := Normalize(records)
			log.Debug().Str("source", src.Name()).Int("count", len(txs)).Msg("loaded remote transactions")
			return &Ledger{transactions: txs, kv: kv}, LoadStatus{Origin: FromRemote, Count: len(txs)}
		}
		log.Warn().Err(err).Str("source", src.Name()).Msg("remote load failed, falling back to local transactions")
		errs = append(errs, &LoadError{Source: src.Name(), Err: err})
	}

	if kv != nil {
		txs, err := readLocal(ctx, kv, StorageKey)
		if err == nil {
			log.Debug().Str("key", StorageKey).Int("count", len(txs)).Msg("loaded local transactions")
			return &Ledger{transactions: txs, kv: kv}, LoadStatus{Origin: FromLocal, Count: len(txs), Err: errors.Join(errs...)}
		}
		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			loadErr = &LoadError{Source: StorageKey, Err: err}
		}
		log.Warn().Err(err).Str("key", StorageKey).Msg("local load failed, starting empty")
		errs = append(errs, loadErr)
	}

	return &Ledger{transactions: []Transaction{}, kv: kv}, LoadStatus{Origin: FromEmpty, Err: errors.Join(errs...)}
}
