package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransactionType_Valid(t *testing.T) {
	tests := []struct {
		typ  TransactionType
		want bool
	}{
		{TransactionTypeExpense, true},
		{TransactionTypeIncome, true},
		{"expense", false},
		{"REFUND", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.Valid())
		})
	}
}

func TestTransaction_Month(t *testing.T) {
	txn := Transaction{Date: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2024-01", txn.Month())
}

func TestDay(t *testing.T) {
	rome := time.FixedZone("CET", 3600)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "utc afternoon",
			in:   time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC),
			want: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "local date wins over utc date",
			in:   time.Date(2024, 3, 10, 0, 30, 0, 0, rome),
			want: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "already midnight",
			in:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Day(tt.in))
		})
	}
}

func TestCategoryKind_TransactionType(t *testing.T) {
	assert.Equal(t, TransactionTypeExpense, CategoryKindExpense.TransactionType())
	assert.Equal(t, TransactionTypeIncome, CategoryKindIncome.TransactionType())
}
