package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Veraticus/minimal-wallet/internal/cli"
	"github.com/Veraticus/minimal-wallet/internal/model"
)

func expenseCmd() *cobra.Command {
	var (
		description string
		recurring   bool
	)

	cmd := &cobra.Command{
		Use:   "expense <category> <amount>",
		Short: "Record an expense",
		Long: `Record an expense dated today. Mark fixed costs such as rent or subscriptions
with --recurring so they show up in the monthly forecast.

Amounts accept either a dot or a comma as the decimal separator. Put flags
before a lone -- to pass an amount that starts with a minus sign.`,
		Example: `  wallet expense "Food 🍔" 12,50 -d "Lunch"
  wallet expense "Rent 🏠" 800 --recurring
  wallet expense -d "Refund" -- "Food 🍔" -3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntry(cmd, model.CategoryKindExpense, model.Entry{
				Category:    args[0],
				Description: description,
				IsRecurring: recurring,
			}, args[1])
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "what the money was spent on (default: the category)")
	cmd.Flags().BoolVarP(&recurring, "recurring", "r", false, "mark as a fixed, recurring cost")

	return cmd
}

func incomeCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:     "income <category> <amount>",
		Short:   "Record income",
		Long:    `Record income dated today. Amounts accept either a dot or a comma as the decimal separator.`,
		Example: `  wallet income "Salary 💼" 1500`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntry(cmd, model.CategoryKindIncome, model.Entry{
				Category:    args[0],
				Description: note,
			}, args[1])
		},
	}

	cmd.Flags().StringVarP(&note, "description", "d", "", "note (default: the category)")

	return cmd
}

func runEntry(cmd *cobra.Command, kind model.CategoryKind, entry model.Entry, amountText string) error {
	ctx := cmd.Context()

	amount, err := parseAmount(amountText)
	if err != nil {
		return err
	}
	entry.Amount = amount
	entry.Type = kind.TransactionType()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}

	if known := s.stores.Categories(kind).List(ctx); !slices.Contains(known, entry.Category) {
		fmt.Fprintln(cmd.ErrOrStderr(), s.theme.FormatWarning(fmt.Sprintf(
			"%q is not one of your %s categories. Recording it anyway.", entry.Category, kind)))
	}

	txn, err := s.stores.Ledger.Append(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to record %s: %w", kind, err)
	}

	shown := cli.FormatAmount(txn.Amount, s.cfg.CurrencySymbol)
	var msg string
	switch kind {
	case model.CategoryKindIncome:
		msg = fmt.Sprintf("Received %s from %s", shown, txn.Category)
	default:
		msg = fmt.Sprintf("Charged %s to %s", shown, txn.Category)
		if txn.IsRecurring {
			msg += " (recurring)"
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), s.theme.FormatSuccess(msg))
	return nil
}
