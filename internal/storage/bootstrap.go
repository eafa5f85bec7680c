package storage

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/Veraticus/minimal-wallet/internal/common"
	"github.com/Veraticus/minimal-wallet/internal/config"
)

// Bootstrap creates whichever of the three files is missing: the ledger with
// only its header, and each category file seeded with the configured
// defaults. Existing files are never touched.
func Bootstrap(ctx context.Context, fs afero.Fs, cfg *config.Config) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	seeds := []struct {
		table *csvTable
		rows  [][]string
	}{
		{table: newCSVTable(fs, cfg.TransactionsPath, LedgerHeader...)},
		{table: newCSVTable(fs, cfg.ExpenseCategoriesPath, CategoryHeader), rows: column(cfg.ExpenseDefaults)},
		{table: newCSVTable(fs, cfg.IncomeCategoriesPath, CategoryHeader), rows: column(cfg.IncomeDefaults)},
	}

	for _, seed := range seeds {
		ok, err := seed.table.exists()
		if err != nil {
			return err
		}
		if ok {
			continue
		}

		if err := seed.table.write(seed.rows); err != nil {
			return fmt.Errorf("failed to initialize %s: %w", seed.table.path, err)
		}
		common.LogInfo("created data file", common.Fields{
			"path": seed.table.path,
			"rows": len(seed.rows),
		})
	}

	return nil
}

func column(values []string) [][]string {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{v})
	}
	return rows
}
