// Package config resolves where the wallet keeps its files and how it renders them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/minimal-wallet/internal/common"
)

// Default file names inside the data directory.
const (
	DefaultDataDir               = "$HOME/.local/share/wallet"
	DefaultTransactionsFile      = "transactions.csv"
	DefaultExpenseCategoriesFile = "categories_expenses.csv"
	DefaultIncomeCategoriesFile  = "categories_income.csv"
	DefaultForecastWindowDays    = 30
)

// DefaultExpenseCategories seed a fresh expense category file.
var DefaultExpenseCategories = []string{
	"Supermarket 🛒", "Fuel ⛽", "Food 🍔", "Bills 📄", "Rent 🏠", "Subscriptions 📺",
}

// DefaultIncomeCategories seed a fresh income category file.
var DefaultIncomeCategories = []string{
	"Salary 💼", "Freelance 💻", "Gifts 🎁",
}

// Config is the resolved set of store locations and display settings.
type Config struct {
	DataDir               string
	TransactionsPath      string
	ExpenseCategoriesPath string
	IncomeCategoriesPath  string
	Theme                 string
	CurrencySymbol        string
	ExpenseDefaults       []string
	IncomeDefaults        []string
	ForecastWindowDays    int
}

// DefaultConfig returns a configuration rooted at dir.
func DefaultConfig(dir string) *Config {
	return &Config{
		DataDir:               dir,
		TransactionsPath:      filepath.Join(dir, DefaultTransactionsFile),
		ExpenseCategoriesPath: filepath.Join(dir, DefaultExpenseCategoriesFile),
		IncomeCategoriesPath:  filepath.Join(dir, DefaultIncomeCategoriesFile),
		Theme:                 "classic-dark",
		CurrencySymbol:        "€",
		ExpenseDefaults:       append([]string(nil), DefaultExpenseCategories...),
		IncomeDefaults:        append([]string(nil), DefaultIncomeCategories...),
		ForecastWindowDays:    DefaultForecastWindowDays,
	}
}

// Load builds a Config from v. Precedence is whatever v already resolved
// (flags, WALLET_ env vars, config file), falling back to defaults.
func Load(v *viper.Viper) (*Config, error) {
	dir := v.GetString("data.dir")
	if dir == "" {
		dir = DefaultDataDir
	}
	dir = ExpandPath(dir)

	cfg := DefaultConfig(dir)

	if p := v.GetString("data.transactions"); p != "" {
		cfg.TransactionsPath = resolve(dir, p)
	}
	if p := v.GetString("data.expense_categories"); p != "" {
		cfg.ExpenseCategoriesPath = resolve(dir, p)
	}
	if p := v.GetString("data.income_categories"); p != "" {
		cfg.IncomeCategoriesPath = resolve(dir, p)
	}

	if v.IsSet("categories.expense_defaults") {
		cfg.ExpenseDefaults = v.GetStringSlice("categories.expense_defaults")
	}
	if v.IsSet("categories.income_defaults") {
		cfg.IncomeDefaults = v.GetStringSlice("categories.income_defaults")
	}

	if t := v.GetString("ui.theme"); t != "" {
		cfg.Theme = strings.ToLower(t)
	}
	if s := v.GetString("ui.currency_symbol"); s != "" {
		cfg.CurrencySymbol = s
	}

	if v.IsSet("forecast.window_days") {
		cfg.ForecastWindowDays = v.GetInt("forecast.window_days")
	}
	if cfg.ForecastWindowDays <= 0 {
		return nil, fmt.Errorf("%w: forecast.window_days must be positive, got %d",
			common.ErrInvalidConfig, cfg.ForecastWindowDays)
	}

	return cfg, nil
}

// resolve keeps absolute paths and anchors relative ones under dir.
func resolve(dir, p string) string {
	p = ExpandPath(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// ExpandPath expands a leading ~ and any $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + path[1:]
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}
