// Package model holds the records persisted by the wallet stores.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType says which direction money moved.
type TransactionType string

const (
	// TransactionTypeExpense is money leaving the wallet.
	TransactionTypeExpense TransactionType = "EXPENSE"
	// TransactionTypeIncome is money entering the wallet.
	TransactionTypeIncome TransactionType = "INCOME"
)

// DateLayout is the on-disk calendar date format.
const DateLayout = "2006-01-02"

// Valid reports whether t is one of the two known types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction is one money movement in the ledger.
//
// Category is plain text. It is never resolved against a category store, so
// removing a category leaves historical rows untouched.
type Transaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Description string
	IsRecurring bool // only meaningful for expenses
}

// Month returns the YYYY-MM bucket the transaction falls in.
func (t Transaction) Month() string {
	return t.Date.Format("2006-01")
}

// Day returns midnight UTC of the calendar date ts shows in its own location.
func Day(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Entry is what a user submits on an expense or income form. The ledger turns
// it into a Transaction by stamping the date.
type Entry struct {
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Description string
	IsRecurring bool
}
