// Package storage persists the wallet as three flat CSV files.
package storage

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/Veraticus/minimal-wallet/internal/common"
	"github.com/Veraticus/minimal-wallet/internal/config"
	"github.com/Veraticus/minimal-wallet/internal/model"
	"github.com/Veraticus/minimal-wallet/internal/service"
)

// Stores groups the three independent stores the wallet works with.
type Stores struct {
	Ledger            service.Ledger
	ExpenseCategories service.CategoryStore
	IncomeCategories  service.CategoryStore
}

// Open bootstraps missing files under cfg and returns stores over them.
func Open(ctx context.Context, fs afero.Fs, cfg *config.Config, clock common.Clock) (*Stores, error) {
	if err := Bootstrap(ctx, fs, cfg); err != nil {
		return nil, fmt.Errorf("failed to bootstrap data files: %w", err)
	}

	return &Stores{
		Ledger:            NewLedger(fs, cfg.TransactionsPath, clock),
		ExpenseCategories: NewCategoryStore(fs, cfg.ExpenseCategoriesPath, model.CategoryKindExpense),
		IncomeCategories:  NewCategoryStore(fs, cfg.IncomeCategoriesPath, model.CategoryKindIncome),
	}, nil
}

// Categories returns the store for kind.
func (s *Stores) Categories(kind model.CategoryKind) service.CategoryStore {
	if kind == model.CategoryKindIncome {
		return s.IncomeCategories
	}
	return s.ExpenseCategories
}

var (
	_ service.Ledger        = (*Ledger)(nil)
	_ service.CategoryStore = (*CategoryStore)(nil)
)
