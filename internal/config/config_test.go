package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/minimal-wallet/internal/common"
)

func TestLoad_Defaults(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	dir := filepath.Join(home, ".local/share/wallet")
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "transactions.csv"), cfg.TransactionsPath)
	assert.Equal(t, filepath.Join(dir, "categories_expenses.csv"), cfg.ExpenseCategoriesPath)
	assert.Equal(t, filepath.Join(dir, "categories_income.csv"), cfg.IncomeCategoriesPath)
	assert.Equal(t, DefaultExpenseCategories, cfg.ExpenseDefaults)
	assert.Equal(t, DefaultIncomeCategories, cfg.IncomeDefaults)
	assert.Equal(t, 30, cfg.ForecastWindowDays)
	assert.Equal(t, "classic-dark", cfg.Theme)
	assert.Equal(t, "€", cfg.CurrencySymbol)
}

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(t.TempDir(), "ledger.csv")

	v := viper.New()
	v.Set("data.dir", dir)
	v.Set("data.transactions", other)
	v.Set("data.expense_categories", "exp.csv")
	v.Set("categories.income_defaults", []string{"Pension"})
	v.Set("ui.theme", "Solarized-Light")
	v.Set("forecast.window_days", 45)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, other, cfg.TransactionsPath)
	assert.Equal(t, filepath.Join(dir, "exp.csv"), cfg.ExpenseCategoriesPath)
	assert.Equal(t, filepath.Join(dir, DefaultIncomeCategoriesFile), cfg.IncomeCategoriesPath)
	assert.Equal(t, []string{"Pension"}, cfg.IncomeDefaults)
	assert.Equal(t, DefaultExpenseCategories, cfg.ExpenseDefaults)
	assert.Equal(t, "solarized-light", cfg.Theme)
	assert.Equal(t, 45, cfg.ForecastWindowDays)
}

func TestLoad_EmptyDefaultsAllowed(t *testing.T) {
	v := viper.New()
	v.Set("data.dir", t.TempDir())
	v.Set("categories.expense_defaults", []string{})

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Empty(t, cfg.ExpenseDefaults)
}

func TestLoad_InvalidWindow(t *testing.T) {
	v := viper.New()
	v.Set("data.dir", t.TempDir())
	v.Set("forecast.window_days", 0)

	_, err := Load(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("WALLET_TEST_DIR", "/srv/wallet")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "tilde only", in: "~", want: home},
		{name: "tilde prefix", in: "~/money", want: filepath.Join(home, "money")},
		{name: "env var", in: "$WALLET_TEST_DIR/data", want: "/srv/wallet/data"},
		{name: "absolute", in: "/tmp/x.csv", want: "/tmp/x.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
