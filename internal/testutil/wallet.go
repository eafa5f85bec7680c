// Package testutil builds throwaway wallets for tests: an in-memory
// filesystem, bootstrapped stores and a pinned clock.
//
// Example usage:
//
//	w := testutil.SetupTestWallet(t, now)
//	w.Seed(t,
//		testutil.NewTransaction("2024-01-15").Expense("Rent", "800").Recurring().Build(),
//		testutil.NewTransaction("2024-01-31").Income("Salary", "1500").Build(),
//	)
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/Veraticus/minimal-wallet/internal/common"
	"github.com/Veraticus/minimal-wallet/internal/config"
	"github.com/Veraticus/minimal-wallet/internal/model"
	"github.com/Veraticus/minimal-wallet/internal/storage"
)

// DataDir is where test wallets keep their files inside Fs.
const DataDir = "/wallet"

// TestWallet is a bootstrapped wallet backed by memory.
type TestWallet struct {
	Fs     afero.Fs
	Config *config.Config
	Stores *storage.Stores
	Clock  common.FixedClock
}

// SetupTestWallet bootstraps the three files with default categories and an
// empty ledger. Today is now.
func SetupTestWallet(t *testing.T, now time.Time) *TestWallet {
	t.Helper()

	fs := afero.NewMemMapFs()
	cfg := config.DefaultConfig(DataDir)
	clock := common.FixedClock(now)

	stores, err := storage.Open(context.Background(), fs, cfg, clock)
	if err != nil {
		t.Fatalf("failed to open test wallet: %v", err)
	}

	return &TestWallet{
		Fs:     fs,
		Config: cfg,
		Stores: stores,
		Clock:  clock,
	}
}

// Seed replaces the ledger with txns.
func (w *TestWallet) Seed(t *testing.T, txns ...model.Transaction) {
	t.Helper()

	if err := w.Stores.Ledger.ReplaceAll(context.Background(), txns); err != nil {
		t.Fatalf("failed to seed ledger: %v", err)
	}
}

// ReadFile returns the raw contents of one of the wallet's files.
func (w *TestWallet) ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := afero.ReadFile(w.Fs, path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
