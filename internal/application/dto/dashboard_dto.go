package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/v1/dashboard/stats.
// Todos los montos se devuelven redondeados a 2 decimales.
type DashboardStatsDTO struct {
	Role      string              `json:"role,omitempty"`
	Period    DashboardPeriodDTO  `json:"period"`
	Summary   DashboardSummaryDTO `json:"summary"`
	Breakdown []RestaurantStatDTO `json:"breakdown"`
	Trend     []TrendPointDTO     `json:"revenue_expense_trend"`
}

// DashboardPeriodDTO rango efectivamente consultado (vacío = histórico completo).
type DashboardPeriodDTO struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// DashboardSummaryDTO totales del alcance.
type DashboardSummaryDTO struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetProfit    decimal.Decimal `json:"net_profit"` // revenue - expense
}

// RestaurantStatDTO fila del desglose por restaurante; incluye restaurantes sin movimientos.
type RestaurantStatDTO struct {
	RestaurantID   string          `json:"restaurant_id"`
	RestaurantName string          `json:"restaurant_name"`
	CompanyID      string          `json:"company_id"`
	Revenue        decimal.Decimal `json:"revenue"`
	Expense        decimal.Decimal `json:"expense"`
	NetProfit      decimal.Decimal `json:"net_profit"`
}

// TrendPointDTO punto diario de la serie (orden ascendente por fecha).
type TrendPointDTO struct {
	Date      string          `json:"date"`
	Revenue   decimal.Decimal `json:"revenue"`
	Expense   decimal.Decimal `json:"expense"`
	NetProfit decimal.Decimal `json:"net_profit"`
}

// DashboardQuery filtros de GET /dashboard/stats y /dashboard/export.
// RestaurantIDs acepta varios valores separados por coma; vacío = todo el alcance.
type DashboardQuery struct {
	DateRangeQuery
	RestaurantIDs string `query:"restaurant_ids"`
}
