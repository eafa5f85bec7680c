package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/minimal-wallet/internal/model"
)

// TransactionBuilder assembles a model.Transaction for a test. Invalid input
// panics, which fails the calling test.
type TransactionBuilder struct {
	txn model.Transaction
}

// NewTransaction starts a transaction dated date (YYYY-MM-DD).
func NewTransaction(date string) *TransactionBuilder {
	d, err := time.Parse(model.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return &TransactionBuilder{txn: model.Transaction{Date: d}}
}

// Expense makes it an expense of amount in category.
func (b *TransactionBuilder) Expense(category, amount string) *TransactionBuilder {
	return b.As(model.TransactionTypeExpense, category, amount)
}

// Income makes it income of amount in category.
func (b *TransactionBuilder) Income(category, amount string) *TransactionBuilder {
	return b.As(model.TransactionTypeIncome, category, amount)
}

// As sets an arbitrary type, including ones the ledger would not accept
// from an entry.
func (b *TransactionBuilder) As(typ model.TransactionType, category, amount string) *TransactionBuilder {
	b.txn.Type = typ
	b.txn.Category = category
	b.txn.Amount = decimal.RequireFromString(amount)
	if b.txn.Description == "" {
		b.txn.Description = category
	}
	return b
}

// Described overrides the description.
func (b *TransactionBuilder) Described(description string) *TransactionBuilder {
	b.txn.Description = description
	return b
}

// Recurring flags the transaction as a fixed cost.
func (b *TransactionBuilder) Recurring() *TransactionBuilder {
	b.txn.IsRecurring = true
	return b
}

// Build returns the transaction.
func (b *TransactionBuilder) Build() model.Transaction {
	return b.txn
}
