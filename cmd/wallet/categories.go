package main

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Veraticus/minimal-wallet/internal/cli"
	"github.com/Veraticus/minimal-wallet/internal/common"
	"github.com/Veraticus/minimal-wallet/internal/model"
	"github.com/Veraticus/minimal-wallet/internal/storage"
	"github.com/Veraticus/minimal-wallet/internal/tui/grid"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense and income categories",
		Long: `List, add, replace and edit the category lists offered when recording entries.
Expense categories are used by default; pass --income for the income list.`,
	}

	cmd.PersistentFlags().Bool("income", false, "work on income categories instead of expense categories")

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(replaceCategoriesCmd())
	cmd.AddCommand(editCategoriesCmd())

	return cmd
}

func kindFromFlags(cmd *cobra.Command) model.CategoryKind {
	income, _ := cmd.Flags().GetBool("income")
	return categoryKind(income)
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, err := openSession(ctx)
			if err != nil {
				return err
			}

			kind := kindFromFlags(cmd)
			return cli.RenderCategories(cmd.OutOrStdout(), s.theme, kind, s.stores.Categories(kind).List(ctx))
		},
	}
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Long:  `Append a category to the list. Names are compared exactly, emoji included.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			if strings.TrimSpace(name) == "" {
				return common.NewUserError("Category name cannot be blank", nil)
			}

			s, err := openSession(ctx)
			if err != nil {
				return err
			}

			kind := kindFromFlags(cmd)
			added, err := s.stores.Categories(kind).Add(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			out := cmd.OutOrStdout()
			if !added {
				fmt.Fprintln(out, s.theme.FormatWarning(fmt.Sprintf("Category %q already exists", name)))
				return nil
			}

			fmt.Fprintln(out, s.theme.FormatSuccess(fmt.Sprintf("Added %s category %q", kind, name)))
			return nil
		},
	}
}

func replaceCategoriesCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "replace <file>",
		Short: "Replace the whole category list from a CSV file",
		Long: `Replace the category list with the contents of a one-column CSV file whose
header is "Category". Rows are taken verbatim and in order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			kind := kindFromFlags(cmd)

			names, err := readCategoryFile(args[0])
			if err != nil {
				return err
			}

			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			store := s.stores.Categories(kind)

			if !yes {
				question := fmt.Sprintf("Replace %d %s categories with %d from %s?",
					len(store.List(ctx)), kind, len(names), args[0])
				ok, err := cli.Confirm(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), question)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Replace cancelled.")
					return nil
				}
			}

			if err := store.ReplaceAll(ctx, names); err != nil {
				return fmt.Errorf("failed to replace categories: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.theme.FormatSuccess(
				fmt.Sprintf("Saved %d %s categories", len(names), kind)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

// readCategoryFile loads a one-column category CSV that is not one of the
// wallet's own files. A header-only file yields an empty list.
func readCategoryFile(path string) ([]model.Category, error) {
	ok, err := afero.Exists(appFs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !ok {
		return nil, common.NewUserError(fmt.Sprintf("File %s does not exist", path), nil)
	}

	names, err := storage.ReadCategories(appFs, path)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("Cannot read categories from %s", path), err)
	}
	return names, nil
}

func editCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit categories in a spreadsheet view",
		Long: `Open the category list in a full-screen grid. Rename, add or delete rows and
press ctrl+s to save, or q to leave without saving.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			s, err := openSession(ctx)
			if err != nil {
				return err
			}

			kind := kindFromFlags(cmd)
			store := s.stores.Categories(kind)

			title := "Expense Categories"
			if kind == model.CategoryKindIncome {
				title = "Income Categories"
			}

			editor := grid.New(title, []string{storage.CategoryHeader}, categoriesToRows(store.List(ctx)), s.theme)
			result, err := grid.Run(ctx, editor, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !result.Saved() {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes saved.")
				return nil
			}

			names := rowsToCategories(result.Rows())
			if err := store.ReplaceAll(ctx, names); err != nil {
				return fmt.Errorf("failed to save categories: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.theme.FormatSuccess(
				fmt.Sprintf("Saved %d %s categories", len(names), kind)))
			return nil
		},
	}
}

func categoriesToRows(names []model.Category) [][]string {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name})
	}
	return rows
}

func rowsToCategories(rows [][]string) []model.Category {
	names := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		names = append(names, row[0])
	}
	return names
}
