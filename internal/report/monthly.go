// Package report derives read-only views from a ledger snapshot: the monthly
// balance table and the recurring-cost forecast.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/minimal-wallet/internal/model"
)

// MonthlyBalance is one row of the monthly balance table.
type MonthlyBalance struct {
	Month   string // YYYY-MM
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal // Income - Expense
}

// MonthlyBalances groups txns by calendar month and sums each type. Every month
// that has at least one transaction gets a row; a type with no transactions
// that month contributes zero. Rows are ordered oldest month first. Rows whose
// type is neither INCOME nor EXPENSE (possible after a bulk edit) still open
// their month but add to neither column.
func MonthlyBalances(txns []model.Transaction) []MonthlyBalance {
	byMonth := make(map[string]*MonthlyBalance)

	for _, txn := range txns {
		month := txn.Month()
		row, ok := byMonth[month]
		if !ok {
			row = &MonthlyBalance{
				Month:   month,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			byMonth[month] = row
		}

		switch txn.Type {
		case model.TransactionTypeIncome:
			row.Income = row.Income.Add(txn.Amount)
		case model.TransactionTypeExpense:
			row.Expense = row.Expense.Add(txn.Amount)
		}
	}

	rows := make([]MonthlyBalance, 0, len(byMonth))
	for _, row := range byMonth {
		row.Balance = row.Income.Sub(row.Expense)
		rows = append(rows, *row)
	}

	// YYYY-MM sorts chronologically as text.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Month < rows[j].Month
	})

	return rows
}

// Totals sums a set of monthly rows.
func Totals(rows []MonthlyBalance) MonthlyBalance {
	total := MonthlyBalance{
		Month:   "TOTAL",
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, row := range rows {
		total.Income = total.Income.Add(row.Income)
		total.Expense = total.Expense.Add(row.Expense)
	}
	total.Balance = total.Income.Sub(total.Expense)
	return total
}
