package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bluebook-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard financiero.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// financeSource describe la tabla, la columna de monto y la columna de fecha de cada lado del dashboard.
type financeSource struct {
	table, amount, date string
}

var (
	revenueSource = financeSource{table: "revenues", amount: "total_amount", date: "beginning_date"}
	expenseSource = financeSource{table: "expenses", amount: "amount", date: "date"}
)

func (s financeSource) filter(fl repository.FinanceFilter) *filter {
	f := &filter{}
	f.where("is_active = TRUE")
	f.scope("restaurant_id", fl.Scope)
	f.dateRange(s.date, fl.Range)
	return f
}

func (r *AnalyticsRepo) sum(ctx context.Context, s financeSource, fl repository.FinanceFilter) (decimal.Decimal, error) {
	f := s.filter(fl)
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(` + s.amount + `), 0) FROM ` + s.table + f.clause()
	if err := r.q.QueryRow(ctx, query, f.args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.sum %s: %w", s.table, err)
	}
	return total, nil
}

// byRestaurant agrupa montos por restaurante en una sola consulta.
func (r *AnalyticsRepo) byRestaurant(ctx context.Context, s financeSource, fl repository.FinanceFilter) (map[string]decimal.Decimal, error) {
	f := s.filter(fl)
	query := `SELECT restaurant_id, COALESCE(SUM(` + s.amount + `), 0) FROM ` + s.table + f.clause() + ` GROUP BY restaurant_id`
	rows, err := r.q.Query(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.byRestaurant %s: %w", s.table, err)
	}
	defer rows.Close()
	out := make(map[string]decimal.Decimal)
	for rows.Next() {
		var id string
		var amount decimal.Decimal
		if err := rows.Scan(&id, &amount); err != nil {
			return nil, fmt.Errorf("analytics.byRestaurant scan: %w", err)
		}
		out[id] = amount
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) daily(ctx context.Context, s financeSource, fl repository.FinanceFilter) ([]repository.DailyAmount, error) {
	f := s.filter(fl)
	query := `SELECT ` + s.date + `, COALESCE(SUM(` + s.amount + `), 0) FROM ` + s.table + f.clause() +
		` GROUP BY ` + s.date + ` ORDER BY ` + s.date
	rows, err := r.q.Query(ctx, query, f.args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.daily %s: %w", s.table, err)
	}
	defer rows.Close()
	var out []repository.DailyAmount
	for rows.Next() {
		var d repository.DailyAmount
		if err := rows.Scan(&d.Date, &d.Amount); err != nil {
			return nil, fmt.Errorf("analytics.daily scan: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// SumRevenue suma total_amount de los ingresos activos (filtra por beginning_date).
func (r *AnalyticsRepo) SumRevenue(ctx context.Context, fl repository.FinanceFilter) (decimal.Decimal, error) {
	return r.sum(ctx, revenueSource, fl)
}

// SumExpense suma amount de los gastos activos (filtra por date).
func (r *AnalyticsRepo) SumExpense(ctx context.Context, fl repository.FinanceFilter) (decimal.Decimal, error) {
	return r.sum(ctx, expenseSource, fl)
}

// RevenueByRestaurant agrupa ingresos por restaurante.
func (r *AnalyticsRepo) RevenueByRestaurant(ctx context.Context, fl repository.FinanceFilter) (map[string]decimal.Decimal, error) {
	return r.byRestaurant(ctx, revenueSource, fl)
}

// ExpenseByRestaurant agrupa gastos por restaurante.
func (r *AnalyticsRepo) ExpenseByRestaurant(ctx context.Context, fl repository.FinanceFilter) (map[string]decimal.Decimal, error) {
	return r.byRestaurant(ctx, expenseSource, fl)
}

// DailyRevenue suma ingresos por beginning_date.
func (r *AnalyticsRepo) DailyRevenue(ctx context.Context, fl repository.FinanceFilter) ([]repository.DailyAmount, error) {
	return r.daily(ctx, revenueSource, fl)
}

// DailyExpense suma gastos por date.
func (r *AnalyticsRepo) DailyExpense(ctx context.Context, fl repository.FinanceFilter) ([]repository.DailyAmount, error) {
	return r.daily(ctx, expenseSource, fl)
}
