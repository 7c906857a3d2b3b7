package analytics_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bluebook-api/internal/application/analytics"
	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
	"github.com/jhoicas/bluebook-api/internal/infrastructure/memory"
)

func day(s string) time.Time {
	t, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// countingAnalytics registra cuántas consultas llegan al Store.
type countingAnalytics struct {
	repository.AnalyticsRepository
	calls atomic.Int32
}

func (c *countingAnalytics) SumRevenue(ctx context.Context, f repository.FinanceFilter) (decimal.Decimal, error) {
	c.calls.Add(1)
	return c.AnalyticsRepository.SumRevenue(ctx, f)
}

type mapCache struct {
	data map[string]*dto.DashboardStatsDTO
	sets int
}

func (m *mapCache) GetStats(_ context.Context, key string) (*dto.DashboardStatsDTO, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapCache) SetStats(_ context.Context, key string, s *dto.DashboardStatsDTO) error {
	m.data[key] = s
	m.sets++
	return nil
}

// seed: r1 y r2 de c1 (r2 sin movimientos), r3 de c2.
func seed(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.New()
	r := s.Repos()
	require.NoError(t, r.Companies.Create(ctx, &entity.Company{ID: "c1", IsActive: true}))
	require.NoError(t, r.Companies.Create(ctx, &entity.Company{ID: "c2", IsActive: true}))
	for _, x := range []*entity.Restaurant{
		{ID: "r1", CompanyID: "c1", Name: "Alfa", IsActive: true},
		{ID: "r2", CompanyID: "c1", Name: "Beta", IsActive: true},
		{ID: "r3", CompanyID: "c2", Name: "Gamma", IsActive: true},
	} {
		require.NoError(t, r.Restaurants.Create(ctx, x))
	}
	revenues := []*entity.Revenue{
		{ID: "v1", RestaurantID: "r1", BeginningDate: day("2024-01-01"), EndingDate: day("2024-01-01"), TotalAmount: dec("100.005"), IsActive: true},
		{ID: "v2", RestaurantID: "r1", BeginningDate: day("2024-01-03"), EndingDate: day("2024-01-03"), TotalAmount: dec("50"), IsActive: true},
		{ID: "v3", RestaurantID: "r3", BeginningDate: day("2024-01-01"), EndingDate: day("2024-01-01"), TotalAmount: dec("999"), IsActive: true},
		{ID: "v4", RestaurantID: "r1", BeginningDate: day("2024-01-02"), EndingDate: day("2024-01-02"), TotalAmount: dec("70"), IsActive: false},
	}
	for _, v := range revenues {
		require.NoError(t, r.Revenues.Create(ctx, v))
	}
	expenses := []*entity.Expense{
		{ID: "e1", RestaurantID: "r1", Category: "Food", Date: day("2024-01-02"), Amount: dec("30"), IsActive: true},
		{ID: "e2", RestaurantID: "r1", Category: "Food", Date: day("2024-01-03"), Amount: dec("20"), IsActive: true},
	}
	for _, e := range expenses {
		require.NoError(t, r.Expenses.Create(ctx, e))
	}
	return s
}

func newUseCase(s *memory.Store) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(s.Analytics(), s.Repos().Restaurants, nil, nil).
		WithClock(func() time.Time { return time.Date(2024, 6, 30, 15, 0, 0, 0, time.UTC) })
}

func TestGetStats_CompanyScope(t *testing.T) {
	s := seed(t)
	uc := newUseCase(s)

	out, err := uc.GetStats(context.Background(), access.Restricted([]string{"r1", "r2"}), repository.DateRange{})
	require.NoError(t, err)

	assert.Equal(t, "150.01", out.Summary.TotalRevenue.String())
	assert.Equal(t, "50", out.Summary.TotalExpense.String())
	assert.Equal(t, "100.01", out.Summary.NetProfit.String())

	require.Len(t, out.Breakdown, 2)
	assert.Equal(t, "r1", out.Breakdown[0].RestaurantID)
	assert.Equal(t, "r2", out.Breakdown[1].RestaurantID)
	assert.True(t, out.Breakdown[1].Revenue.IsZero(), "restaurante sin movimientos aparece con cero")
	assert.True(t, out.Breakdown[1].NetProfit.IsZero())

	require.Len(t, out.Trend, 3)
	assert.Equal(t, "2024-01-01", out.Trend[0].Date)
	assert.True(t, out.Trend[0].Expense.IsZero())
	assert.Equal(t, "2024-01-02", out.Trend[1].Date)
	assert.True(t, out.Trend[1].Revenue.IsZero())
	assert.Equal(t, "-30", out.Trend[1].NetProfit.String())
	assert.Equal(t, "30", out.Trend[2].NetProfit.String())
}

func TestGetStats_AllScopeIncludesEveryRestaurant(t *testing.T) {
	out, err := newUseCase(seed(t)).GetStats(context.Background(), access.All(), repository.DateRange{})
	require.NoError(t, err)
	assert.Len(t, out.Breakdown, 3)
	assert.Equal(t, "1149.01", out.Summary.TotalRevenue.String())
}

func TestGetStats_EmptyScopeSkipsStore(t *testing.T) {
	s := seed(t)
	spy := &countingAnalytics{AnalyticsRepository: s.Analytics()}
	uc := analytics.NewDashboardUseCase(spy, s.Repos().Restaurants, nil, nil)

	out, err := uc.GetStats(context.Background(), access.Restricted(nil), repository.DateRange{})
	require.NoError(t, err)
	assert.True(t, out.Summary.TotalRevenue.IsZero())
	assert.True(t, out.Summary.NetProfit.IsZero())
	assert.Empty(t, out.Breakdown)
	assert.NotNil(t, out.Breakdown)
	assert.Empty(t, out.Trend)
	assert.Zero(t, spy.calls.Load())
}

func TestGetStats_DateRangeDefaults(t *testing.T) {
	uc := newUseCase(seed(t))
	end := day("2024-01-02")

	out, err := uc.GetStats(context.Background(), access.All(), repository.DateRange{To: &end})
	require.NoError(t, err)
	assert.Equal(t, "2000-01-01", out.Period.Start)
	assert.Equal(t, "2024-01-02", out.Period.End)
	assert.Equal(t, "1099.01", out.Summary.TotalRevenue.String(), "ambos extremos inclusivos")
	assert.Equal(t, "30", out.Summary.TotalExpense.String())

	start := day("2024-01-03")
	out, err = uc.GetStats(context.Background(), access.All(), repository.DateRange{From: &start})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-30", out.Period.End)
	assert.Equal(t, "50", out.Summary.TotalRevenue.String())
}

func TestGetStats_UsesCache(t *testing.T) {
	s := seed(t)
	cache := &mapCache{data: map[string]*dto.DashboardStatsDTO{}}
	uc := analytics.NewDashboardUseCase(s.Analytics(), s.Repos().Restaurants, cache, nil)
	ctx := context.Background()

	first, err := uc.GetStats(ctx, access.All(), repository.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := uc.GetStats(ctx, access.All(), repository.DateRange{})
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.sets)
}

func TestMergeTrend_NoDuplicates(t *testing.T) {
	out := analytics.MergeTrend(
		[]repository.DailyAmount{{Date: day("2024-02-02"), Amount: dec("5")}, {Date: day("2024-02-01"), Amount: dec("1")}},
		[]repository.DailyAmount{{Date: day("2024-02-02"), Amount: dec("2")}},
	)
	require.Len(t, out, 2)
	assert.Equal(t, "2024-02-01", out[0].Date)
	assert.Equal(t, "3", out[1].NetProfit.String())
}
