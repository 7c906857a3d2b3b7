// Package analytics contiene el Dashboard financiero: totales, desglose por restaurante y
// tendencia diaria de ingresos y gastos dentro del alcance de quien llama.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
	"github.com/jhoicas/bluebook-api/pkg/logger"
)

// defaultRangeStart inicio del rango cuando solo se indica el fin.
var defaultRangeStart = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// StatsCache caché opcional del resultado (cache-aside). Un fallo del caché nunca rompe la consulta.
type StatsCache interface {
	GetStats(ctx context.Context, key string) (*dto.DashboardStatsDTO, bool, error)
	SetStats(ctx context.Context, key string, stats *dto.DashboardStatsDTO) error
}

// DashboardUseCase agrega ingresos y gastos activos.
//
// Fuente de datos: AnalyticsRepository (consultas agrupadas read-only) y RestaurantRepository
// para los nombres del desglose.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	restaurants   repository.RestaurantRepository
	cache         StatsCache
	now           func() time.Time
	log           *logger.Logger
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	restaurants repository.RestaurantRepository,
	cache StatsCache,
	log *logger.Logger,
) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		restaurants:   restaurants,
		cache:         cache,
		now:           time.Now,
		log:           log.Named("dashboard"),
	}
}

// WithClock fija el reloj usado para "hoy" (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// NormalizeRange completa el rango: si se indica algún extremo, el inicio faltante es
// 2000-01-01 y el fin faltante es hoy. Sin extremos queda sin filtro.
func (uc *DashboardUseCase) NormalizeRange(r repository.DateRange) repository.DateRange {
	if r.IsZero() {
		return r
	}
	if r.From == nil {
		from := defaultRangeStart
		r.From = &from
	}
	if r.To == nil {
		to := entity.DateOnly(uc.now())
		r.To = &to
	}
	return r
}

// GetStats construye el DashboardStatsDTO para el alcance indicado.
//
// Tres lecturas en paralelo:
//  1. totales        → SumRevenue + SumExpense
//  2. desglose       → restaurantes visibles + RevenueByRestaurant + ExpenseByRestaurant
//  3. tendencia      → DailyRevenue + DailyExpense
//
// Un alcance vacío devuelve ceros sin consultar el Store.
func (uc *DashboardUseCase) GetStats(
	ctx context.Context,
	scope access.Scope,
	dateRange repository.DateRange,
) (*dto.DashboardStatsDTO, error) {
	dateRange = uc.NormalizeRange(dateRange)
	out := &dto.DashboardStatsDTO{
		Period:    period(dateRange),
		Summary:   summary(decimal.Zero, decimal.Zero),
		Breakdown: []dto.RestaurantStatDTO{},
		Trend:     []dto.TrendPointDTO{},
	}
	if scope.IsEmpty() {
		return out, nil
	}

	key := cacheKey(scope, dateRange)
	if uc.cache != nil {
		cached, ok, err := uc.cache.GetStats(ctx, key)
		if err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("caché no disponible")
		} else if ok {
			return cached, nil
		}
	}

	filter := repository.FinanceFilter{Scope: scope, Range: dateRange}
	g, gctx := errgroup.WithContext(ctx)

	// ── Totales ───────────────────────────────────────────────────────────────
	var totalRevenue, totalExpense decimal.Decimal
	g.Go(func() error {
		var err error
		if totalRevenue, err = uc.analyticsRepo.SumRevenue(gctx, filter); err != nil {
			return err
		}
		totalExpense, err = uc.analyticsRepo.SumExpense(gctx, filter)
		return err
	})

	// ── Desglose por restaurante ─────────────────────────────────────────────
	var breakdown []dto.RestaurantStatDTO
	g.Go(func() error {
		restaurants, _, err := uc.restaurants.List(gctx, repository.RestaurantFilter{Scope: scope})
		if err != nil {
			return err
		}
		revenue, err := uc.analyticsRepo.RevenueByRestaurant(gctx, filter)
		if err != nil {
			return err
		}
		expense, err := uc.analyticsRepo.ExpenseByRestaurant(gctx, filter)
		if err != nil {
			return err
		}
		breakdown = buildBreakdown(restaurants, revenue, expense)
		return nil
	})

	// ── Tendencia diaria ─────────────────────────────────────────────────────
	var trend []dto.TrendPointDTO
	g.Go(func() error {
		revenue, err := uc.analyticsRepo.DailyRevenue(gctx, filter)
		if err != nil {
			return err
		}
		expense, err := uc.analyticsRepo.DailyExpense(gctx, filter)
		if err != nil {
			return err
		}
		trend = MergeTrend(revenue, expense)
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.log.Error().Err(err).Msg("error agregando dashboard")
		return nil, err
	}

	out.Summary = summary(totalRevenue, totalExpense)
	out.Breakdown = breakdown
	out.Trend = trend

	if uc.cache != nil {
		if err := uc.cache.SetStats(ctx, key, out); err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar en caché")
		}
	}
	return out, nil
}

// buildBreakdown una fila por restaurante visible, incluidos los que no tienen movimientos.
func buildBreakdown(restaurants []*entity.Restaurant, revenue, expense map[string]decimal.Decimal) []dto.RestaurantStatDTO {
	rows := make([]dto.RestaurantStatDTO, 0, len(restaurants))
	for _, r := range restaurants {
		rev, exp := revenue[r.ID], expense[r.ID]
		rows = append(rows, dto.RestaurantStatDTO{
			RestaurantID:   r.ID,
			RestaurantName: r.Name,
			CompanyID:      r.CompanyID,
			Revenue:        rev.Round(2),
			Expense:        exp.Round(2),
			NetProfit:      rev.Sub(exp).Round(2),
		})
	}
	return rows
}

// MergeTrend une las dos series por fecha: orden ascendente, sin duplicados, lado faltante = 0.
func MergeTrend(revenue, expense []repository.DailyAmount) []dto.TrendPointDTO {
	type pair struct{ rev, exp decimal.Decimal }
	byDate := map[time.Time]*pair{}
	get := func(d time.Time) *pair {
		d = entity.DateOnly(d)
		p, ok := byDate[d]
		if !ok {
			p = &pair{}
			byDate[d] = p
		}
		return p
	}
	for _, r := range revenue {
		p := get(r.Date)
		p.rev = p.rev.Add(r.Amount)
	}
	for _, e := range expense {
		p := get(e.Date)
		p.exp = p.exp.Add(e.Amount)
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := make([]dto.TrendPointDTO, 0, len(dates))
	for _, d := range dates {
		p := byDate[d]
		out = append(out, dto.TrendPointDTO{
			Date:      d.Format(entity.DateLayout),
			Revenue:   p.rev.Round(2),
			Expense:   p.exp.Round(2),
			NetProfit: p.rev.Sub(p.exp).Round(2),
		})
	}
	return out
}

func summary(revenue, expense decimal.Decimal) dto.DashboardSummaryDTO {
	return dto.DashboardSummaryDTO{
		TotalRevenue: revenue.Round(2),
		TotalExpense: expense.Round(2),
		NetProfit:    revenue.Sub(expense).Round(2),
	}
}

func period(r repository.DateRange) dto.DashboardPeriodDTO {
	var p dto.DashboardPeriodDTO
	if r.From != nil {
		p.Start = r.From.Format(entity.DateLayout)
	}
	if r.To != nil {
		p.End = r.To.Format(entity.DateLayout)
	}
	return p
}

func cacheKey(scope access.Scope, r repository.DateRange) string {
	p := period(r)
	return "dashboard:" + scope.Key() + ":" + p.Start + ":" + p.End
}
