// Package service defines the contracts between the stores and their callers.
package service

import (
	"context"

	"github.com/Veraticus/minimal-wallet/internal/model"
)

// CategoryStore holds the ordered category labels for one transaction type.
type CategoryStore interface {
	// List never fails; an unreadable store reads as empty.
	List(ctx context.Context) []model.Category
	Add(ctx context.Context, name model.Category) (bool, error)
	ReplaceAll(ctx context.Context, names []model.Category) error
	Kind() model.CategoryKind
}

// LedgerReader is the read side of the ledger, all the reports need.
type LedgerReader interface {
	ListAll(ctx context.Context) ([]model.Transaction, error)
}

// Ledger is the transaction log.
type Ledger interface {
	LedgerReader
	Append(ctx context.Context, e model.Entry) (model.Transaction, error)
	ReplaceAll(ctx context.Context, txns []model.Transaction) error
}
