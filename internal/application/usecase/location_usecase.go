package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

// LocationUseCase actualiza en una sola transacción los datos de un restaurante,
// sus proyecciones mensuales y el objetivo del mes.
type LocationUseCase struct {
	tx     repository.TxRunner
	scopes ScopeResolver
	now    func() time.Time
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(tx repository.TxRunner, scopes ScopeResolver) *LocationUseCase {
	return &LocationUseCase{tx: tx, scopes: scopes, now: time.Now}
}

// WithClock fija el reloj para el año y mes por defecto (tests).
func (uc *LocationUseCase) WithClock(now func() time.Time) *LocationUseCase {
	uc.now = now
	return uc
}

// Update aplica restaurant, forecasts y target. El año de los forecasts es target.year o el actual.
func (uc *LocationUseCase) Update(ctx context.Context, caller access.Caller, in dto.LocationUpdateRequest) (*dto.LocationUpdateResponse, error) {
	if in.ID == "" {
		return nil, domain.Validation("ID_REQUIRED", "id es obligatorio")
	}
	if _, err := uc.scopes.Authorize(ctx, caller, in.ID); err != nil {
		return nil, err
	}
	current := uc.now().UTC()
	year, month := current.Year(), int(current.Month())
	if in.Target != nil {
		if in.Target.Year != 0 {
			year = in.Target.Year
		}
		if in.Target.Month != 0 {
			month = in.Target.Month
		}
	}

	out := &dto.LocationUpdateResponse{Forecasts: []dto.ForecastResponse{}}
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		restaurant, err := r.Restaurants.GetByID(ctx, in.ID, false)
		if err != nil {
			return err
		}
		if in.Restaurant != nil {
			if err := applyRestaurant(restaurant, *in.Restaurant); err != nil {
				return err
			}
			if err := r.Restaurants.Update(ctx, restaurant); err != nil {
				return err
			}
		}
		out.Restaurant = dto.NewRestaurantResponse(restaurant)

		ts := now()
		for _, ma := range dto.MonthAmounts(in.Forecasts) {
			if err := nonNegative(map[string]decimal.Decimal{"forecasts": ma.Amount}); err != nil {
				return err
			}
			if err := r.Forecasts.Upsert(ctx, &entity.Forecast{
				ID:           uuid.New().String(),
				RestaurantID: restaurant.ID,
				Year:         year,
				Month:        ma.Month,
				Amount:       ma.Amount,
				IsActive:     true,
				CreatedAt:    ts,
				UpdatedAt:    ts,
			}); err != nil {
				return err
			}
		}
		forecasts, err := r.Forecasts.ListByRestaurant(ctx, restaurant.ID, year)
		if err != nil {
			return err
		}
		for _, f := range forecasts {
			out.Forecasts = append(out.Forecasts, dto.NewForecastResponse(f))
		}

		if in.Target == nil {
			return nil
		}
		target := &entity.Target{
			ID:           uuid.New().String(),
			RestaurantID: restaurant.ID,
			Year:         year,
			Month:        month,
			IsActive:     true,
			CreatedAt:    ts,
			UpdatedAt:    ts,
		}
		dto.ApplyLabor(target, &in.Target.LaborTargetInput)
		dto.ApplyCOGS(target, &in.Target.COGSTargetInput)
		if err := r.Targets.Upsert(ctx, target); err != nil {
			return err
		}
		out.Target = dto.NewTargetResponse(target)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
