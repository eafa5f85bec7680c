package main

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/minimal-wallet/internal/common"
)

func TestOverviewCmd_Empty(t *testing.T) {
	setupWallet(t)

	res := execute(t, overviewCmd(), "")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "No data yet.")
}

func TestOverviewCmd_Table(t *testing.T) {
	fs := setupWallet(t)
	require.NoError(t, afero.WriteFile(fs, testDataDir+"/transactions.csv", []byte(importedLedger), 0o600))

	res := execute(t, overviewCmd(), "")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "Monthly Balance")
	assert.Contains(t, res.stdout, "2024-02")
	assert.Contains(t, res.stdout, "700.00 €")
	assert.Contains(t, res.stdout, "2024-03")
	assert.Contains(t, res.stdout, "-20.50 €")
	assert.Contains(t, res.stdout, "TOTAL")
	assert.Contains(t, res.stdout, "Fixed Costs Forecast")
	// Rent on 2024-02-03 is outside the 30 days before 2024-03-10.
	assert.Contains(t, res.stdout, "No recurring expense was charged in the last 30 days.")
}

func TestOverviewCmd_JSON(t *testing.T) {
	fs := setupWallet(t)
	ledger := importedLedger + "2024-03-08,EXPENSE,Subscriptions 📺,Streaming,9.99,true\n"
	require.NoError(t, afero.WriteFile(fs, testDataDir+"/transactions.csv", []byte(ledger), 0o600))

	res := execute(t, overviewCmd(), "", "--format", "json")
	require.NoError(t, res.err)

	var got struct {
		Monthly []struct {
			Month   string `json:"month"`
			Balance string `json:"balance"`
		} `json:"monthly"`
		Totals struct {
			Balance string `json:"balance"`
		} `json:"totals"`
		Forecast struct {
			Status string `json:"status"`
			Total  string `json:"total"`
			Items  []struct {
				Category string `json:"category"`
			} `json:"items"`
		} `json:"forecast"`
		Count int `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))

	require.Len(t, got.Monthly, 2)
	assert.Equal(t, "2024-02", got.Monthly[0].Month)
	assert.Equal(t, "700.00", got.Monthly[0].Balance)
	assert.Equal(t, "2024-03", got.Monthly[1].Month)
	assert.Equal(t, "-30.49", got.Monthly[1].Balance)
	assert.Equal(t, "669.51", got.Totals.Balance)
	assert.Equal(t, 4, got.Count)

	assert.Equal(t, "active", got.Forecast.Status)
	assert.Equal(t, "9.99", got.Forecast.Total)
	require.Len(t, got.Forecast.Items, 1)
	assert.Equal(t, "Subscriptions 📺", got.Forecast.Items[0].Category)
}

func TestOverviewCmd_WindowFromConfig(t *testing.T) {
	fs := setupWallet(t)
	require.NoError(t, afero.WriteFile(fs, testDataDir+"/transactions.csv", []byte(importedLedger), 0o600))
	viper.Set("forecast.window_days", 60)

	res := execute(t, overviewCmd(), "", "-f", "json")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"total": "800.00"`)
}

func TestOverviewCmd_BadFormat(t *testing.T) {
	setupWallet(t)

	res := execute(t, overviewCmd(), "", "--format", "xml")
	require.Error(t, res.err)

	var userErr *common.UserError
	assert.ErrorAs(t, res.err, &userErr)
}
