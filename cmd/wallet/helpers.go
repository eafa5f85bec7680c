package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/Veraticus/minimal-wallet/internal/cli"
	"github.com/Veraticus/minimal-wallet/internal/common"
	"github.com/Veraticus/minimal-wallet/internal/config"
	"github.com/Veraticus/minimal-wallet/internal/model"
	"github.com/Veraticus/minimal-wallet/internal/storage"
)

// Swapped out by tests.
var (
	appFs    afero.Fs     = afero.NewOsFs()
	appClock common.Clock = common.SystemClock{}
)

// envKeyReplacer maps nested keys such as data.dir to WALLET_DATA_DIR.
var envKeyReplacer = strings.NewReplacer(".", "_")

// session is what every command needs: resolved config, open stores and the
// active theme.
type session struct {
	cfg    *config.Config
	stores *storage.Stores
	theme  cli.Theme
}

// openSession loads the configuration and bootstraps the data files.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	theme, err := cli.LookupTheme(cfg.Theme)
	if err != nil {
		return nil, common.NewUserError("Unknown theme", err)
	}

	stores, err := storage.Open(ctx, appFs, cfg, appClock)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, stores: stores, theme: theme}, nil
}

// printError writes err styled with the configured theme, or the default
// theme when the configured one is what failed.
func printError(w io.Writer, err error) {
	theme, lookupErr := cli.LookupTheme(viper.GetString("ui.theme"))
	if lookupErr != nil {
		theme, _ = cli.LookupTheme(cli.DefaultTheme)
	}
	fmt.Fprintln(w, theme.FormatError(err.Error()))
}

// parseAmount reads a user-typed amount, accepting a decimal comma.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, common.NewUserError(fmt.Sprintf("%q is not a number", s), common.ErrInvalidAmount)
	}
	return amount, nil
}

func categoryKind(income bool) model.CategoryKind {
	if income {
		return model.CategoryKindIncome
	}
	return model.CategoryKindExpense
}
