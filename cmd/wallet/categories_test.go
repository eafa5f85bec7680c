package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/minimal-wallet/internal/common"
)

func TestCategoriesCmd_Subcommands(t *testing.T) {
	cmd := categoriesCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"list", "add", "replace", "edit"}, names)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("income"))
}

func TestCategoriesList(t *testing.T) {
	setupWallet(t)

	res := execute(t, categoriesCmd(), "", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Expense Categories")
	assert.Contains(t, res.stdout, "Subscriptions 📺")
	assert.NotContains(t, res.stdout, "Salary 💼")

	res = execute(t, categoriesCmd(), "", "list", "--income")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Income Categories")
	assert.Contains(t, res.stdout, "Freelance 💻")
	assert.NotContains(t, res.stdout, "Fuel ⛽")
}

func TestCategoriesAdd(t *testing.T) {
	fs := setupWallet(t)

	res := execute(t, categoriesCmd(), "", "add", "Pets 🐶")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `Added expense category "Pets 🐶"`)

	res = execute(t, categoriesCmd(), "", "add", "Pets 🐶")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `Category "Pets 🐶" already exists`)

	assert.Equal(t,
		"Category\nSupermarket 🛒\nFuel ⛽\nFood 🍔\nBills 📄\nRent 🏠\nSubscriptions 📺\nPets 🐶\n",
		readFile(t, fs, "categories_expenses.csv"))
}

func TestCategoriesAdd_Income(t *testing.T) {
	fs := setupWallet(t)

	res := execute(t, categoriesCmd(), "", "add", "--income", "Refunds")
	require.NoError(t, res.err)

	assert.Equal(t, "Category\nSalary 💼\nFreelance 💻\nGifts 🎁\nRefunds\n", readFile(t, fs, "categories_income.csv"))
	assert.NotContains(t, readFile(t, fs, "categories_expenses.csv"), "Refunds")
}

func TestCategoriesAdd_Blank(t *testing.T) {
	setupWallet(t)

	res := execute(t, categoriesCmd(), "", "add", "   ")
	require.Error(t, res.err)

	var userErr *common.UserError
	assert.ErrorAs(t, res.err, &userErr)
}

func TestCategoriesReplace(t *testing.T) {
	fs := setupWallet(t)
	require.NoError(t, afero.WriteFile(fs, "/import/cats.csv", []byte("Category\nHome\nCar\n"), 0o600))

	res := execute(t, categoriesCmd(), "", "replace", "--yes", "/import/cats.csv")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Saved 2 expense categories")
	assert.Equal(t, "Category\nHome\nCar\n", readFile(t, fs, "categories_expenses.csv"))
}

func TestCategoriesReplace_Confirm(t *testing.T) {
	fs := setupWallet(t)
	require.NoError(t, afero.WriteFile(fs, "/import/cats.csv", []byte("Category\nHome\n"), 0o600))

	res := execute(t, categoriesCmd(), "n\n", "replace", "--income", "/import/cats.csv")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Replace 3 income categories with 1 from /import/cats.csv? (y/N)")
	assert.Contains(t, res.stdout, "Replace cancelled.")
	assert.Equal(t, "Category\nSalary 💼\nFreelance 💻\nGifts 🎁\n", readFile(t, fs, "categories_income.csv"))

	res = execute(t, categoriesCmd(), "y\n", "replace", "--income", "/import/cats.csv")
	require.NoError(t, res.err)
	assert.Equal(t, "Category\nHome\n", readFile(t, fs, "categories_income.csv"))
}

func TestCategoriesReplace_BadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		write   bool
	}{
		{name: "missing"},
		{name: "wrong header", content: "Name\nHome\n", write: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := setupWallet(t)
			if tt.write {
				require.NoError(t, afero.WriteFile(fs, "/import/cats.csv", []byte(tt.content), 0o600))
			}

			res := execute(t, categoriesCmd(), "", "replace", "--yes", "/import/cats.csv")
			require.Error(t, res.err)

			var userErr *common.UserError
			assert.ErrorAs(t, res.err, &userErr)
		})
	}
}

func TestCategoriesReplace_HeaderOnlyEmptiesList(t *testing.T) {
	fs := setupWallet(t)
	require.NoError(t, afero.WriteFile(fs, "/import/empty.csv", []byte("Category\n"), 0o600))

	res := execute(t, categoriesCmd(), "", "replace", "--yes", "/import/empty.csv")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Saved 0 expense categories")
	assert.Equal(t, "Category\n", readFile(t, fs, "categories_expenses.csv"))

	res = execute(t, categoriesCmd(), "", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No expense categories found.")
}

func TestCategoriesReplace_UnreadableFile(t *testing.T) {
	fs := setupWallet(t)
	require.NoError(t, afero.WriteFile(fs, "/import/cats.csv", []byte("Name\nHome\n"), 0o600))

	res := execute(t, categoriesCmd(), "", "replace", "--yes", "/import/cats.csv")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, common.ErrStorageUnreadable)
	assert.Contains(t, readFile(t, fs, "categories_expenses.csv"), "Supermarket 🛒")
}

func TestCategoryRows(t *testing.T) {
	names := []string{"Food 🍔", "", "Rent 🏠"}

	rows := categoriesToRows(names)
	assert.Equal(t, [][]string{{"Food 🍔"}, {""}, {"Rent 🏠"}}, rows)
	assert.Equal(t, names, rowsToCategories(rows))
	assert.Empty(t, rowsToCategories(nil))
}
