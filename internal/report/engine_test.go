package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/minimal-wallet/internal/common"
	"github.com/Veraticus/minimal-wallet/internal/model"
)

type stubLedger struct {
	err  error
	txns []model.Transaction
}

func (s *stubLedger) ListAll(_ context.Context) ([]model.Transaction, error) {
	return s.txns, s.err
}

func TestEngine_Overview(t *testing.T) {
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	ledger := &stubLedger{txns: []model.Transaction{
		txn("2024-01-15", model.TransactionTypeIncome, "100"),
		txn("2024-01-20", model.TransactionTypeExpense, "40"),
		recurring(day("2024-02-01"), "Streaming", "10"),
	}}

	engine := NewEngine(ledger, common.FixedClock(now), 30)
	overview, err := engine.Overview(context.Background())
	require.NoError(t, err)

	assert.False(t, overview.Empty())
	assert.Equal(t, 3, overview.Count)
	require.Len(t, overview.Monthly, 2)
	assert.Equal(t, "2024-01", overview.Monthly[0].Month)
	assert.True(t, overview.Monthly[1].Balance.Equal(dec("-10")))
	assert.True(t, overview.Totals.Balance.Equal(dec("50")))
	assert.Equal(t, ForecastActive, overview.Forecast.Status)
	assert.True(t, overview.Forecast.Total.Equal(dec("10")))
}

func TestEngine_EmptyLedger(t *testing.T) {
	engine := NewEngine(&stubLedger{}, common.FixedClock(time.Now()), 30)

	overview, err := engine.Overview(context.Background())
	require.NoError(t, err)
	assert.True(t, overview.Empty())
	assert.Empty(t, overview.Monthly)
	assert.Equal(t, ForecastNoRecurring, overview.Forecast.Status)
}

func TestEngine_PropagatesUnreadableLedger(t *testing.T) {
	cause := common.Unreadable("transactions.csv", errors.New("bad row"))
	engine := NewEngine(&stubLedger{err: cause}, nil, 30)

	_, err := engine.Overview(context.Background())
	assert.ErrorIs(t, err, common.ErrStorageUnreadable)

	_, err = engine.Monthly(context.Background())
	assert.ErrorIs(t, err, common.ErrStorageUnreadable)

	_, err = engine.Forecast(context.Background())
	assert.ErrorIs(t, err, common.ErrStorageUnreadable)
}

func TestEngine_ForecastUsesClock(t *testing.T) {
	ledger := &stubLedger{txns: []model.Transaction{
		recurring(day("2024-01-05"), "Gym", "30"),
	}}

	early := NewEngine(ledger, common.FixedClock(day("2024-01-20")), 30)
	f, err := early.Forecast(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ForecastActive, f.Status)

	late := NewEngine(ledger, common.FixedClock(day("2024-03-20")), 30)
	f, err = late.Forecast(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ForecastLapsed, f.Status)
}
