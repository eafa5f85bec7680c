package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/minimal-wallet/internal/model"
)

// ForecastStatus distinguishes "never used recurring expenses" from "had some,
// but none were charged inside the window".
type ForecastStatus int

const (
	// ForecastNoRecurring means the ledger holds no recurring expenses at all.
	ForecastNoRecurring ForecastStatus = iota
	// ForecastLapsed means recurring expenses exist but none fall in the window.
	ForecastLapsed
	// ForecastActive means at least one recurring expense is in the window.
	ForecastActive
)

func (s ForecastStatus) String() string {
	switch s {
	case ForecastNoRecurring:
		return "none"
	case ForecastLapsed:
		return "lapsed"
	case ForecastActive:
		return "active"
	default:
		return "unknown"
	}
}

// ForecastItem is one recurring charge counted toward the forecast.
type ForecastItem struct {
	Date        time.Time
	Amount      decimal.Decimal
	Category    string
	Description string
}

// Forecast estimates the current monthly fixed-cost load.
type Forecast struct {
	WindowStart time.Time
	Total       decimal.Decimal
	Items       []ForecastItem
	Status      ForecastStatus
}

// HasRecurring reports whether the ledger has any recurring expense at all.
func (f Forecast) HasRecurring() bool {
	return f.Status != ForecastNoRecurring
}

// RecurringForecast sums recurring expenses dated on or after
// today-windowDays, where today is now's calendar date.
//
// A recurring cost charged twice in the window is counted twice, and one not
// yet charged this cycle is not extrapolated. The figure is "what fixed costs
// were actually charged recently", nothing smarter.
func RecurringForecast(txns []model.Transaction, now time.Time, windowDays int) Forecast {
	start := model.Day(now).AddDate(0, 0, -windowDays)

	f := Forecast{
		WindowStart: start,
		Total:       decimal.Zero,
		Status:      ForecastNoRecurring,
	}

	for _, txn := range txns {
		if txn.Type != model.TransactionTypeExpense || !txn.IsRecurring {
			continue
		}
		if f.Status == ForecastNoRecurring {
			f.Status = ForecastLapsed
		}
		if txn.Date.Before(start) {
			continue
		}

		f.Status = ForecastActive
		f.Total = f.Total.Add(txn.Amount)
		f.Items = append(f.Items, ForecastItem{
			Date:        txn.Date,
			Amount:      txn.Amount,
			Category:    txn.Category,
			Description: txn.Description,
		})
	}

	return f
}
