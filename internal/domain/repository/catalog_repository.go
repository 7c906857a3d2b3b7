package repository

import (
	"context"

	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

// SalesCategoryRepository define el puerto para las categorías de venta de un restaurante.
type SalesCategoryRepository interface {
	Create(ctx context.Context, category *entity.SalesCategory) error
	// GetByName busca sin distinguir mayúsculas; NotFound si no existe.
	GetByName(ctx context.Context, restaurantID, name string) (*entity.SalesCategory, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.SalesCategory, error)
}

// ForecastRepository define el puerto para las proyecciones mensuales.
type ForecastRepository interface {
	// Upsert inserta o reemplaza el monto de (restaurant_id, year, month).
	Upsert(ctx context.Context, forecast *entity.Forecast) error
	ListByRestaurant(ctx context.Context, restaurantID string, year int) ([]*entity.Forecast, error)
}

// TargetRepository define el puerto para los objetivos mensuales.
type TargetRepository interface {
	Upsert(ctx context.Context, target *entity.Target) error
	Get(ctx context.Context, restaurantID string, year, month int) (*entity.Target, error)
}

// PosRepository define el puerto para la integración POS (una por restaurante).
type PosRepository interface {
	Upsert(ctx context.Context, pos *entity.Pos) error
	GetByRestaurant(ctx context.Context, restaurantID string) (*entity.Pos, error)
}
