package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Veraticus/minimal-wallet/internal/cli"
	"github.com/Veraticus/minimal-wallet/internal/common"
	"github.com/Veraticus/minimal-wallet/internal/model"
	"github.com/Veraticus/minimal-wallet/internal/storage"
	"github.com/Veraticus/minimal-wallet/internal/tui/grid"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Browse and correct recorded transactions",
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(editTransactionsCmd())
	cmd.AddCommand(replaceTransactionsCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all transactions in recorded order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, err := openSession(ctx)
			if err != nil {
				return err
			}

			txns, err := s.stores.Ledger.ListAll(ctx)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			return cli.RenderTransactions(cmd.OutOrStdout(), s.theme, txns, s.cfg.CurrencySymbol)
		},
	}
}

func editTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit transactions in a spreadsheet view",
		Long: `Open every transaction in a full-screen grid. Fix typos, delete rows or add
missing ones, then press ctrl+s to save or q to leave without saving.

Saving rewrites the whole ledger. Dates must be YYYY-MM-DD, amounts numbers and
Is_Recurring true or false; everything else is kept exactly as typed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, err := openSession(ctx)
			if err != nil {
				return err
			}

			txns, err := s.stores.Ledger.ListAll(ctx)
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}

			editor := grid.New("Transactions", storage.LedgerHeader, transactionsToRows(txns), s.theme,
				grid.WithValidator(func(rows [][]string) error {
					_, err := rowsToTransactions(rows)
					return err
				}),
				grid.WithNewRow(newTransactionRow),
			)

			result, err := grid.Run(ctx, editor, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !result.Saved() {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes saved.")
				return nil
			}

			edited, err := rowsToTransactions(result.Rows())
			if err != nil {
				return err
			}
			if err := s.stores.Ledger.ReplaceAll(ctx, edited); err != nil {
				return fmt.Errorf("failed to save transactions: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.theme.FormatSuccess(
				fmt.Sprintf("Saved %d transactions", len(edited))))
			return nil
		},
	}
}

func replaceTransactionsCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "replace <file>",
		Short: "Replace the whole ledger from a CSV file",
		Long: `Replace every transaction with the rows of a CSV file that uses the ledger
header (Date,Type,Category,Description,Amount,Is_Recurring). Rows are stored
as given; no amount or type checks are applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			ok, err := afero.Exists(appFs, path)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}
			if !ok {
				return common.NewUserError(fmt.Sprintf("File %s does not exist", path), nil)
			}

			incoming, err := storage.NewLedger(appFs, path, appClock).ListAll(ctx)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("Cannot read transactions from %s", path), err)
			}

			s, err := openSession(ctx)
			if err != nil {
				return err
			}

			if !yes {
				current, err := s.stores.Ledger.ListAll(ctx)
				if err != nil {
					return fmt.Errorf("failed to load transactions: %w", err)
				}
				question := fmt.Sprintf("Replace %d transactions with %d from %s?", len(current), len(incoming), path)
				ok, err := cli.Confirm(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), question)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Replace cancelled.")
					return nil
				}
			}

			if err := s.stores.Ledger.ReplaceAll(ctx, incoming); err != nil {
				return fmt.Errorf("failed to replace transactions: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.theme.FormatSuccess(
				fmt.Sprintf("Saved %d transactions", len(incoming))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func transactionsToRows(txns []model.Transaction) [][]string {
	rows := make([][]string, 0, len(txns))
	for _, txn := range txns {
		rows = append(rows, storage.EncodeTransaction(txn))
	}
	return rows
}

// rowsToTransactions converts edited grid rows, naming the first row that
// cannot be stored.
func rowsToTransactions(rows [][]string) ([]model.Transaction, error) {
	txns := make([]model.Transaction, 0, len(rows))
	for i, row := range rows {
		txn, err := storage.DecodeTransaction(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func newTransactionRow() []string {
	return []string{
		model.Day(appClock.Now()).Format(model.DateLayout),
		string(model.TransactionTypeExpense),
		"",
		"",
		"0",
		"false",
	}
}
