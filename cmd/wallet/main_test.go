package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/minimal-wallet/internal/cli"
	"github.com/Veraticus/minimal-wallet/internal/common"
)

const testDataDir = "/wallet"

var testNow = time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC)

// setupWallet points the commands at an in-memory data directory and a
// fixed clock.
func setupWallet(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	prevFs, prevClock := appFs, appClock
	appFs, appClock = fs, common.FixedClock(testNow)

	viper.Reset()
	viper.Set("data.dir", testDataDir)

	t.Cleanup(func() {
		appFs, appClock = prevFs, prevClock
		viper.Reset()
	})
	return fs
}

type result struct {
	err    error
	stdout string
	stderr string
}

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(context.Background())
	return result{err: err, stdout: stdout.String(), stderr: stderr.String()}
}

func readFile(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, testDataDir+"/"+name)
	require.NoError(t, err)
	return string(data)
}

func TestVersionCmd(t *testing.T) {
	res := execute(t, versionCmd(), "")
	require.NoError(t, res.err)
	assert.Equal(t, "wallet dev\n", res.stdout)
}

func TestRootCmd_HasCommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"expense", "income", "categories", "transactions", "overview", "version"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"config", "data-dir", "theme", "log-level", "log-format"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestOpenSession_UnknownTheme(t *testing.T) {
	setupWallet(t)
	viper.Set("ui.theme", "neon")

	_, err := openSession(context.Background())
	require.Error(t, err)

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, err.Error(), "classic-dark")
}

func TestOpenSession_InvalidWindow(t *testing.T) {
	setupWallet(t)
	viper.Set("forecast.window_days", 0)

	_, err := openSession(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestOpenSession_Bootstraps(t *testing.T) {
	fs := setupWallet(t)

	_, err := openSession(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Date,Type,Category,Description,Amount,Is_Recurring\n", readFile(t, fs, "transactions.csv"))
	assert.Contains(t, readFile(t, fs, "categories_expenses.csv"), "Supermarket 🛒")
	assert.Contains(t, readFile(t, fs, "categories_income.csv"), "Salary 💼")
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name  string
		theme string
	}{
		{name: "default theme"},
		{name: "configured theme", theme: "synthwave"},
		{name: "unknown theme falls back", theme: "neon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupWallet(t)
			viper.Set("ui.theme", tt.theme)

			var buf bytes.Buffer
			printError(&buf, common.NewUserError("Category name cannot be blank", nil))

			assert.Contains(t, buf.String(), cli.ErrorIcon)
			assert.Contains(t, buf.String(), "Category name cannot be blank")
		})
	}
}
