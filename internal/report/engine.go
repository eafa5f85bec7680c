package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/minimal-wallet/internal/common"
	"github.com/Veraticus/minimal-wallet/internal/model"
	"github.com/Veraticus/minimal-wallet/internal/service"
)

// Overview is everything the overview screen shows, computed from one
// ledger snapshot.
type Overview struct {
	Monthly  []MonthlyBalance
	Totals   MonthlyBalance
	Forecast Forecast
	Count    int
}

// Empty reports whether the ledger had no transactions.
func (o Overview) Empty() bool {
	return o.Count == 0
}

// Engine computes reports on demand from a ledger.
type Engine struct {
	ledger     service.LedgerReader
	clock      common.Clock
	windowDays int
}

// NewEngine creates an engine. windowDays is the forecast look-back.
func NewEngine(ledger service.LedgerReader, clock common.Clock, windowDays int) *Engine {
	if clock == nil {
		clock = common.SystemClock{}
	}
	return &Engine{
		ledger:     ledger,
		clock:      clock,
		windowDays: windowDays,
	}
}

// Monthly returns the monthly balance table.
func (e *Engine) Monthly(ctx context.Context) ([]MonthlyBalance, error) {
	txns, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyBalances(txns), nil
}

// Forecast returns the recurring-cost forecast as of now.
func (e *Engine) Forecast(ctx context.Context) (Forecast, error) {
	txns, err := e.snapshot(ctx)
	if err != nil {
		return Forecast{}, err
	}
	return RecurringForecast(txns, e.clock.Now(), e.windowDays), nil
}

// Overview computes both views from a single read of the ledger.
func (e *Engine) Overview(ctx context.Context) (*Overview, error) {
	txns, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	monthly := MonthlyBalances(txns)
	forecast := RecurringForecast(txns, e.clock.Now(), e.windowDays)

	slog.Debug("computed overview",
		"transactions", len(txns),
		"months", len(monthly),
		"forecast_status", forecast.Status.String(),
		"forecast_total", forecast.Total.String())

	return &Overview{
		Monthly:  monthly,
		Totals:   Totals(monthly),
		Forecast: forecast,
		Count:    len(txns),
	}, nil
}

func (e *Engine) snapshot(ctx context.Context) ([]model.Transaction, error) {
	txns, err := e.ledger.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	return txns, nil
}
