package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/infrastructure/pdf"
)

func TestRenderDashboard(t *testing.T) {
	stats := &dto.DashboardStatsDTO{
		Role:   "Company_Admin",
		Period: dto.DashboardPeriodDTO{Start: "2025-01-01", End: "2025-01-31"},
		Summary: dto.DashboardSummaryDTO{
			TotalRevenue: decimal.RequireFromString("1500.50"),
			TotalExpense: decimal.RequireFromString("1800"),
			NetProfit:    decimal.RequireFromString("-299.50"),
		},
		Breakdown: []dto.RestaurantStatDTO{{
			RestaurantID: "r1", RestaurantName: "Centro",
			Revenue: decimal.RequireFromString("1500.50"), Expense: decimal.RequireFromString("1800"),
			NetProfit: decimal.RequireFromString("-299.50"),
		}},
		Trend: []dto.TrendPointDTO{{
			Date: "2025-01-02", Revenue: decimal.NewFromInt(100), Expense: decimal.Zero, NetProfit: decimal.NewFromInt(100),
		}},
	}

	out, err := pdf.NewMarotoPDFGenerator("BlueBook").RenderDashboard(context.Background(), "Dashboard", stats)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderDashboard_EmptyAndNil(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("")

	out, err := g.RenderDashboard(context.Background(), "Vacío", &dto.DashboardStatsDTO{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = g.RenderDashboard(context.Background(), "x", nil)
	assert.Error(t, err)
}

func TestRenderDashboard_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pdf.NewMarotoPDFGenerator("").RenderDashboard(ctx, "x", &dto.DashboardStatsDTO{})
	assert.ErrorIs(t, err, context.Canceled)
}
