package repository

import (
	"context"
	"time"

	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/shopspring/decimal"
)

// FinanceFilter filtra las consultas del dashboard. Range ya viene normalizado por el caso de uso.
type FinanceFilter struct {
	Scope access.Scope
	Range DateRange
}

// DailyAmount es la suma de un día.
type DailyAmount struct {
	Date   time.Time
	Amount decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el dashboard financiero.
// Solo cuenta filas activas; revenue filtra por beginning_date y expense por date.
type AnalyticsRepository interface {
	SumRevenue(ctx context.Context, filter FinanceFilter) (decimal.Decimal, error)
	SumExpense(ctx context.Context, filter FinanceFilter) (decimal.Decimal, error)

	// ── Desglose por restaurante: una consulta agrupada por tabla ───────────

	RevenueByRestaurant(ctx context.Context, filter FinanceFilter) (map[string]decimal.Decimal, error)
	ExpenseByRestaurant(ctx context.Context, filter FinanceFilter) (map[string]decimal.Decimal, error)

	// ── Tendencia diaria ─────────────────────────────────────────────────────

	DailyRevenue(ctx context.Context, filter FinanceFilter) ([]DailyAmount, error)
	DailyExpense(ctx context.Context, filter FinanceFilter) ([]DailyAmount, error)
}
