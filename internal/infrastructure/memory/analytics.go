package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/bluebook-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo calcula las sumas del dashboard sobre el estado en memoria.
type AnalyticsRepo struct{ h handle }

type amountRow struct {
	restaurantID string
	date         time.Time
	amount       decimal.Decimal
}

func (r *AnalyticsRepo) revenueRows(f repository.FinanceFilter) ([]amountRow, error) {
	var rows []amountRow
	err := r.h.do(func(d *data) error {
		for _, x := range d.revenues {
			if x.IsActive && f.Scope.Contains(x.RestaurantID) && inRange(x.BeginningDate, f.Range) {
				rows = append(rows, amountRow{x.RestaurantID, x.BeginningDate, x.TotalAmount})
			}
		}
		return nil
	})
	return rows, err
}

func (r *AnalyticsRepo) expenseRows(f repository.FinanceFilter) ([]amountRow, error) {
	var rows []amountRow
	err := r.h.do(func(d *data) error {
		for _, x := range d.expenses {
			if x.IsActive && f.Scope.Contains(x.RestaurantID) && inRange(x.Date, f.Range) {
				rows = append(rows, amountRow{x.RestaurantID, x.Date, x.Amount})
			}
		}
		return nil
	})
	return rows, err
}

func sumRows(rows []amountRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.amount)
	}
	return total
}

func groupByRestaurant(rows []amountRow) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, row := range rows {
		out[row.restaurantID] = out[row.restaurantID].Add(row.amount)
	}
	return out
}

func groupByDate(rows []amountRow) []repository.DailyAmount {
	byDate := make(map[time.Time]decimal.Decimal)
	for _, row := range rows {
		byDate[row.date] = byDate[row.date].Add(row.amount)
	}
	out := make([]repository.DailyAmount, 0, len(byDate))
	for date, amount := range byDate {
		out = append(out, repository.DailyAmount{Date: date, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (r *AnalyticsRepo) SumRevenue(_ context.Context, f repository.FinanceFilter) (decimal.Decimal, error) {
	rows, err := r.revenueRows(f)
	return sumRows(rows), err
}

func (r *AnalyticsRepo) SumExpense(_ context.Context, f repository.FinanceFilter) (decimal.Decimal, error) {
	rows, err := r.expenseRows(f)
	return sumRows(rows), err
}

func (r *AnalyticsRepo) RevenueByRestaurant(_ context.Context, f repository.FinanceFilter) (map[string]decimal.Decimal, error) {
	rows, err := r.revenueRows(f)
	return groupByRestaurant(rows), err
}

func (r *AnalyticsRepo) ExpenseByRestaurant(_ context.Context, f repository.FinanceFilter) (map[string]decimal.Decimal, error) {
	rows, err := r.expenseRows(f)
	return groupByRestaurant(rows), err
}

func (r *AnalyticsRepo) DailyRevenue(_ context.Context, f repository.FinanceFilter) ([]repository.DailyAmount, error) {
	rows, err := r.revenueRows(f)
	return groupByDate(rows), err
}

func (r *AnalyticsRepo) DailyExpense(_ context.Context, f repository.FinanceFilter) ([]repository.DailyAmount, error) {
	rows, err := r.expenseRows(f)
	return groupByDate(rows), err
}
