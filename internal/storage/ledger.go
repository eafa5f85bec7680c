package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"

	"github.com/Veraticus/minimal-wallet/internal/common"
	"github.com/Veraticus/minimal-wallet/internal/model"
)

// LedgerHeader lists the transaction file columns in order.
var LedgerHeader = []string{"Date", "Type", "Category", "Description", "Amount", "Is_Recurring"}

// Column positions within LedgerHeader.
const (
	colDate = iota
	colType
	colCategory
	colDescription
	colAmount
	colRecurring
)

// dateLayouts are accepted when reading; DateLayout is always written.
var dateLayouts = []string{
	model.DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Ledger is the transaction log backed by a CSV file.
type Ledger struct {
	clock common.Clock
	table *csvTable
	mu    sync.RWMutex
}

// NewLedger creates a ledger over the file at path. clock stamps new entries.
func NewLedger(fs afero.Fs, path string, clock common.Clock) *Ledger {
	if clock == nil {
		clock = common.SystemClock{}
	}
	return &Ledger{
		clock: clock,
		table: newCSVTable(fs, path, LedgerHeader...),
	}
}

// Append validates e, stamps it with today's date, and persists it at the end
// of the ledger. A blank description falls back to the category name. Invalid
// entries leave the file untouched.
func (l *Ledger) Append(ctx context.Context, e model.Entry) (model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return model.Transaction{}, err
	}
	if err := validateEntry(e); err != nil {
		return model.Transaction{}, err
	}

	txn := model.Transaction{
		Date:        model.Day(l.clock.Now()),
		Type:        e.Type,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		IsRecurring: e.IsRecurring,
	}
	if blank(txn.Description) {
		txn.Description = txn.Category
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	existing, err := l.load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return model.Transaction{}, fmt.Errorf("failed to load ledger: %w", err)
	}

	if err := l.save(append(existing, txn)); err != nil {
		return model.Transaction{}, err
	}

	common.LogDebug("appended transaction", common.Fields{
		"type":      txn.Type,
		"category":  txn.Category,
		"amount":    txn.Amount.String(),
		"recurring": txn.IsRecurring,
		"count":     len(existing) + 1,
	})

	return txn, nil
}

// ListAll returns the ledger in file order. Unlike category reads this never
// degrades: a missing or corrupt file is reported as
// common.ErrStorageUnreadable.
func (l *Ledger) ListAll(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.load()
}

// ReplaceAll overwrites the ledger with txns as given, without validation.
// It backs the grid editor, where rows may be edited, reordered, or removed.
func (l *Ledger) ReplaceAll(ctx context.Context, txns []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.save(txns); err != nil {
		return err
	}

	common.LogDebug("replaced ledger", common.Fields{"count": len(txns)})
	return nil
}

func (l *Ledger) load() ([]model.Transaction, error) {
	rows, err := l.table.read()
	if err != nil {
		return nil, err
	}

	txns := make([]model.Transaction, 0, len(rows))
	for i, row := range rows {
		txn, err := DecodeTransaction(row)
		if err != nil {
			// +2: one for the header, one for 1-based line numbers.
			return nil, common.Unreadable(l.table.path, fmt.Errorf("line %d: %w", i+2, err))
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (l *Ledger) save(txns []model.Transaction) error {
	rows := make([][]string, 0, len(txns))
	for _, txn := range txns {
		rows = append(rows, EncodeTransaction(txn))
	}

	if err := l.table.write(rows); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	return nil
}

// EncodeTransaction renders txn as a ledger row in LedgerHeader order.
func EncodeTransaction(txn model.Transaction) []string {
	return []string{
		txn.Date.Format(model.DateLayout),
		string(txn.Type),
		txn.Category,
		txn.Description,
		txn.Amount.String(),
		strconv.FormatBool(txn.IsRecurring),
	}
}

// DecodeTransaction parses a ledger row. Only cells that cannot be represented
// at all (date, amount, recurring flag) are errors; an unknown type or a
// non-positive amount is returned as-is.
func DecodeTransaction(row []string) (model.Transaction, error) {
	if len(row) != len(LedgerHeader) {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", len(LedgerHeader), len(row))
	}

	date, err := ParseDate(row[colDate])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row[colAmount]))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount %q: %w", row[colAmount], err)
	}

	recurring, err := ParseRecurring(row[colRecurring])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Date:        date,
		Type:        model.TransactionType(strings.TrimSpace(row[colType])),
		Category:    row[colCategory],
		Description: row[colDescription],
		Amount:      amount,
		IsRecurring: recurring,
	}, nil
}

// ParseDate reads a calendar date, tolerating a time-of-day suffix.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return model.Day(ts), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
}

// ParseRecurring reads the Is_Recurring cell. Empty means false.
func ParseRecurring(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid recurring flag %q", s)
	}
	return v, nil
}
