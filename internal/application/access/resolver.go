// Package access resuelve el alcance de datos (restaurantes visibles) de quien llama.
package access

import (
	"context"

	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

// Resolver traduce un Caller en un access.Scope. Solo lectura.
type Resolver struct {
	restaurants repository.RestaurantRepository
	links       repository.UserRestaurantRepository
}

// NewResolver construye el resolver con los puertos de restaurantes y asignaciones.
func NewResolver(restaurants repository.RestaurantRepository, links repository.UserRestaurantRepository) *Resolver {
	return &Resolver{restaurants: restaurants, links: links}
}

// Resolve devuelve el alcance del caller:
//   - Super_Admin: todos los restaurantes.
//   - Company_Admin: restaurantes activos de su empresa.
//   - Restaurant_Employee: restaurantes asignados.
//
// Un alcance vacío no es un error; los consumidores devuelven cero resultados.
func (r *Resolver) Resolve(ctx context.Context, caller access.Caller) (access.Scope, error) {
	switch caller.Role {
	case entity.RoleSuperAdmin:
		return access.All(), nil
	case entity.RoleCompanyAdmin:
		if caller.CompanyID == "" {
			return access.Restricted(nil), nil
		}
		ids, err := r.restaurants.ListIDsByCompany(ctx, caller.CompanyID)
		if err != nil {
			return access.Scope{}, err
		}
		return access.Restricted(ids), nil
	case entity.RoleRestaurantEmployee:
		ids, err := r.links.ListRestaurantIDs(ctx, caller.UserID)
		if err != nil {
			return access.Scope{}, err
		}
		return access.Restricted(ids), nil
	default:
		return access.Restricted(nil), nil
	}
}

// Authorize verifica que restaurantID exista y esté dentro del alcance del caller.
// NotFound si no existe o está inactivo; Forbidden si es de otra empresa o no está asignado.
func (r *Resolver) Authorize(ctx context.Context, caller access.Caller, restaurantID string) (*entity.Restaurant, error) {
	restaurant, err := r.restaurants.GetByID(ctx, restaurantID, false)
	if err != nil {
		return nil, err
	}
	scope, err := r.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !scope.Contains(restaurant.ID) {
		return nil, domain.ErrRestaurantForbidden
	}
	return restaurant, nil
}

// Requested intersecta el alcance del caller con los restaurantes pedidos (vacío = todos los visibles).
func (r *Resolver) Requested(ctx context.Context, caller access.Caller, restaurantIDs []string) (access.Scope, error) {
	scope, err := r.Resolve(ctx, caller)
	if err != nil {
		return access.Scope{}, err
	}
	return scope.Intersect(restaurantIDs), nil
}
