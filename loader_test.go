package exmini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/exmini/store"
)

// serve starts a server answering every request with status and body.
func serve(t *testing.T, status int, body string) *HTTPSource {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return &HTTPSource{URL: srv.URL, Client: srv.Client()}
}

// localStore returns a memory store holding txs.
func localStore(t *testing.T, txs ...Transaction) *store.Memory {
	t.Helper()
	kv := store.NewMemory()
	if err := NewLedger(txs...).SaveTo(context.Background(), kv); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	return kv
}

func TestLoadRemote(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		dataPath string
		want     int
	}{
		{"array", `[{"deal_id":"D1","tx_type":"inflow","amount":"1,000"},{"deal":"D2","date":"2025-01-01"}]`, "", 2},
		{"wrapped", `{"transactions":[{"deal_id":"D1"}],"count":1}`, "", 1},
		{"custom path", `{"data":{"items":[{"deal_id":"D1"},{"deal_id":"D2"},{"deal_id":"D3"}]}}`, "$.data.items", 3},
		{"empty", `[]`, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := serve(t, http.StatusOK, tt.body)
			src.DataPath = tt.dataPath
			l, status := Load(context.Background(), src, localStore(t, Transaction{ID: 7, DealID: "LOCAL"}))
			if !status.OK() || status.Origin != FromRemote {
				t.Fatalf("Load() status = %+v, want remote without error", status)
			}
			if status.Count != tt.want || l.Len() != tt.want {
				t.Errorf("Load() count = %d, len = %d, want %d", status.Count, l.Len(), tt.want)
			}
		})
	}
}

func TestLoadFallback(t *testing.T) {
	ctx := context.Background()
	src := serve(t, http.StatusInternalServerError, `oops`)
	kv := localStore(t, Transaction{ID: 1, DealID: "D1"}, Transaction{ID: 2, DealID: "D1"})

	l, status := Load(ctx, src, kv)
	if status.Origin != FromLocal || status.Count != 2 || l.Len() != 2 {
		t.Fatalf("Load() status = %+v, want 2 local transactions", status)
	}
	var loadErr *LoadError
	if !errors.As(status.Err, &loadErr) || loadErr.Source != src.URL {
		t.Errorf("Load() error = %v, want a *LoadError for %s", status.Err, src.URL)
	}
}

func TestLoadInvalidShape(t *testing.T) {
	src := serve(t, http.StatusOK, `{"items":[]}`)
	l, status := Load(context.Background(), src, nil)
	if status.Origin != FromEmpty || l.Len() != 0 {
		t.Fatalf("Load() status = %+v, want empty", status)
	}
	var shape *InvalidShapeError
	if !errors.As(status.Err, &shape) {
		t.Errorf("Load() error = %v, want an *InvalidShapeError", status.Err)
	}
}

func TestLoadEverythingFails(t *testing.T) {
	ctx := context.Background()
	src := serve(t, http.StatusNotFound, ``)
	kv := store.NewMemory()
	if err := kv.Put(ctx, StorageKey, []byte(`not json`)); err != nil {
		t.Fatal(err)
	}

	l, status := Load(ctx, src, kv)
	if status.Origin != FromEmpty || status.Count != 0 || l.Len() != 0 {
		t.Errorf("Load() status = %+v, want empty", status)
	}
	var loadErr *LoadError
	if !errors.As(status.Err, &loadErr) {
		t.Errorf("Load() error = %v, want a *LoadError", status.Err)
	}
}

func TestLoadLocalOnly(t *testing.T) {
	l, status := Load(context.Background(), nil, store.NewMemory())
	if !status.OK() || status.Origin != FromLocal || l.Len() != 0 {
		t.Errorf("Load() status = %+v, want an empty local set", status)
	}
}

func TestLoadBacksLedger(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	l, _ := Load(ctx, serve(t, http.StatusOK, `[{"deal_id":"D1"},{"deal_id":"D2"}]`), kv)
	if err := l.Save(ctx); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	local, err := OpenLedger(ctx, kv)
	if err != nil {
		t.Fatalf("OpenLedger() error = %v", err)
	}
	if local.Len() != 2 {
		t.Errorf("local ledger has %d transactions, want 2", local.Len())
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(`{"transactions":[{"deal_id":"D1"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	records, err := (&FileSource{Path: path}).Records(context.Background())
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Records() = %d records, want 1", len(records))
	}

	if _, err := (&FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}).Records(context.Background()); err == nil {
		t.Error("Records() on a missing file succeeded")
	}
}
