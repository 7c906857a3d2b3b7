package repository

import (
	"context"

	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

// RestaurantFilter filtra restaurantes activos dentro de Scope; CompanyID opcional.
type RestaurantFilter struct {
	Scope     access.Scope
	CompanyID string
	Page      Page
}

// RestaurantRepository define el puerto de persistencia para Restaurant.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	GetByID(ctx context.Context, id string, includeInactive bool) (*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter RestaurantFilter) ([]*entity.Restaurant, int, error)
	// ListIDsByCompany devuelve los ids de restaurantes activos de la empresa.
	ListIDsByCompany(ctx context.Context, companyID string) ([]string, error)
}
