package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/Veraticus/minimal-wallet/internal/model"
	"github.com/Veraticus/minimal-wallet/internal/report"
)

// FormatAmount renders a figure with two decimals and the currency symbol.
func FormatAmount(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		return amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + symbol
}

func (t Theme) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers(headers...)
}

// RenderCategories prints one category per row with its position.
func RenderCategories(w io.Writer, theme Theme, kind model.CategoryKind, names []model.Category) error {
	icon := ExpenseIcon
	title := "Expense Categories"
	if kind == model.CategoryKindIncome {
		icon, title = IncomeIcon, "Income Categories"
	}

	if len(names) == 0 {
		_, err := fmt.Fprintln(w, theme.FormatInfo(fmt.Sprintf("No %s categories found.", kind)))
		return err
	}

	rows := make([][]string, 0, len(names))
	for i, name := range names {
		rows = append(rows, []string{strconv.Itoa(i + 1), name})
	}

	tbl := theme.newTable("#", "Category").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.HeaderStyle()
			}
			return theme.CellStyle()
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n", theme.FormatTitle(icon, title), tbl.Render())
	return err
}

// RenderTransactions prints the ledger in file order.
func RenderTransactions(w io.Writer, theme Theme, txns []model.Transaction, symbol string) error {
	if len(txns) == 0 {
		_, err := fmt.Fprintln(w, theme.FormatInfo("No transactions yet."))
		return err
	}

	rows := make([][]string, 0, len(txns))
	for i, txn := range txns {
		recurring := ""
		if txn.IsRecurring {
			recurring = "monthly"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			txn.Date.Format(model.DateLayout),
			string(txn.Type),
			txn.Category,
			txn.Description,
			FormatAmount(txn.Amount, symbol),
			recurring,
		})
	}

	tbl := theme.newTable("#", "Date", "Type", "Category", "Description", "Amount", "Recurring").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return theme.HeaderStyle()
			case col == 5 && row >= 0 && row < len(txns):
				return theme.AmountStyle(txns[row].Type == model.TransactionTypeExpense)
			default:
				return theme.CellStyle()
			}
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n", theme.FormatTitle(WalletIcon, "Transactions"), tbl.Render())
	return err
}

// RenderOverview prints the monthly balance table and the fixed-cost
// forecast, or the appropriate empty state.
func RenderOverview(w io.Writer, theme Theme, o *report.Overview, symbol string, windowDays int) error {
	if o.Empty() {
		_, err := fmt.Fprintln(w, theme.FormatInfo("No data yet."))
		return err
	}

	months := make([]report.MonthlyBalance, 0, len(o.Monthly)+1)
	months = append(months, o.Monthly...)
	months = append(months, o.Totals)

	rows := make([][]string, 0, len(months))
	balances := make([]decimal.Decimal, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{
			m.Month,
			FormatAmount(m.Income, symbol),
			FormatAmount(m.Expense, symbol),
			FormatAmount(m.Balance, symbol),
		})
		balances = append(balances, m.Balance)
	}

	monthly := theme.newTable("Month", "INCOME", "EXPENSE", "BALANCE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return theme.HeaderStyle()
			case col == 3 && row >= 0 && row < len(balances):
				return theme.AmountStyle(balances[row].IsNegative())
			case row == len(rows)-1:
				return theme.CellStyle().Bold(true)
			default:
				return theme.CellStyle()
			}
		})

	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", theme.FormatTitle(CalendarIcon, "Monthly Balance"), monthly.Render()); err != nil {
		return err
	}

	return renderForecast(w, theme, o.Forecast, symbol, windowDays)
}

func renderForecast(w io.Writer, theme Theme, f report.Forecast, symbol string, windowDays int) error {
	if _, err := fmt.Fprintln(w, theme.FormatTitle(ForecastIcon, "Fixed Costs Forecast")); err != nil {
		return err
	}

	switch f.Status {
	case report.ForecastNoRecurring:
		_, err := fmt.Fprintln(w, theme.FormatInfo("No recurring expenses yet."))
		return err
	case report.ForecastLapsed:
		_, err := fmt.Fprintf(w, "%s\n%s\n",
			theme.BoxStyle().Render("Predicted Fixed Costs: "+FormatAmount(f.Total, symbol)),
			theme.FormatSubtle(fmt.Sprintf("No recurring expense was charged in the last %d days.", windowDays)))
		return err
	}

	rows := make([][]string, 0, len(f.Items))
	for _, item := range f.Items {
		rows = append(rows, []string{item.Category, item.Description, FormatAmount(item.Amount, symbol)})
	}

	items := theme.newTable("Category", "Description", "Amount").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.HeaderStyle()
			}
			return theme.CellStyle()
		})

	metric := theme.BoxStyle().Render(
		lipgloss.JoinVertical(lipgloss.Left,
			theme.FormatSubtle("Predicted Fixed Costs"),
			lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render(FormatAmount(f.Total, symbol)),
		))

	_, err := fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, metric, " ", items.Render()))
	return err
}

type overviewJSON struct {
	Monthly  []monthJSON  `json:"monthly"`
	Totals   monthJSON    `json:"totals"`
	Forecast forecastJSON `json:"forecast"`
	Count    int          `json:"transactions"`
}

type monthJSON struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

type forecastJSON struct {
	Status      string             `json:"status"`
	WindowStart string             `json:"window_start"`
	Total       string             `json:"total"`
	Items       []forecastItemJSON `json:"items"`
}

type forecastItemJSON struct {
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// RenderOverviewJSON writes the overview as indented JSON. Amounts are
// decimal strings so no precision is lost.
func RenderOverviewJSON(w io.Writer, o *report.Overview) error {
	out := overviewJSON{
		Monthly: make([]monthJSON, 0, len(o.Monthly)),
		Totals:  toMonthJSON(o.Totals),
		Count:   o.Count,
		Forecast: forecastJSON{
			Status:      o.Forecast.Status.String(),
			WindowStart: o.Forecast.WindowStart.Format(model.DateLayout),
			Total:       o.Forecast.Total.StringFixed(2),
			Items:       make([]forecastItemJSON, 0, len(o.Forecast.Items)),
		},
	}
	for _, m := range o.Monthly {
		out.Monthly = append(out.Monthly, toMonthJSON(m))
	}
	for _, item := range o.Forecast.Items {
		out.Forecast.Items = append(out.Forecast.Items, forecastItemJSON{
			Date:        item.Date.Format(model.DateLayout),
			Category:    item.Category,
			Description: item.Description,
			Amount:      item.Amount.StringFixed(2),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode overview: %w", err)
	}
	return nil
}

func toMonthJSON(m report.MonthlyBalance) monthJSON {
	return monthJSON{
		Month:   m.Month,
		Income:  m.Income.StringFixed(2),
		Expense: m.Expense.StringFixed(2),
		Balance: m.Balance.StringFixed(2),
	}
}
