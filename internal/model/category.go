package model

// CategoryKind selects one of the two independent category namespaces.
type CategoryKind string

const (
	// CategoryKindExpense names categories offered on the expense form.
	CategoryKindExpense CategoryKind = "expense"
	// CategoryKindIncome names categories offered on the income form.
	CategoryKindIncome CategoryKind = "income"
)

// TransactionType maps a category namespace to the ledger type it feeds.
func (k CategoryKind) TransactionType() TransactionType {
	if k == CategoryKindIncome {
		return TransactionTypeIncome
	}
	return TransactionTypeExpense
}

// Category is a display label, compared as opaque text. It may contain emoji.
type Category = string
