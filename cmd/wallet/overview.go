package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/minimal-wallet/internal/cli"
	"github.com/Veraticus/minimal-wallet/internal/common"
	"github.com/Veraticus/minimal-wallet/internal/report"
)

func overviewCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show the monthly balance and recurring costs",
		Long: `Show income, expenses and balance for every month on record, followed by the
forecast of fixed costs: every recurring expense charged within the forecast
window (30 days unless configured otherwise).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if format != "table" && format != "json" {
				return common.NewUserError(fmt.Sprintf("Unknown format %q, use table or json", format), nil)
			}

			s, err := openSession(ctx)
			if err != nil {
				return err
			}

			engine := report.NewEngine(s.stores.Ledger, appClock, s.cfg.ForecastWindowDays)
			overview, err := engine.Overview(ctx)
			if err != nil {
				return err
			}

			if format == "json" {
				return cli.RenderOverviewJSON(cmd.OutOrStdout(), overview)
			}
			return cli.RenderOverview(cmd.OutOrStdout(), s.theme, overview, s.cfg.CurrencySymbol, s.cfg.ForecastWindowDays)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")

	return cmd
}
