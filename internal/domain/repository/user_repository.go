package repository

import (
	"context"
	"time"

	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

// UserFilter filtra usuarios activos; CompanyID vacío = todas las empresas.
type UserFilter struct {
	CompanyID string
	Role      string
	Page      Page
}

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string, includeInactive bool) (*entity.User, error)
	// GetByEmail busca también usuarios inactivos o bloqueados (login, unicidad).
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter UserFilter) ([]*entity.User, int, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

// UserRestaurantRepository define el puerto para las asignaciones usuario-restaurante.
type UserRestaurantRepository interface {
	Link(ctx context.Context, userID string, restaurantIDs []string) error
	// ListRestaurantIDs devuelve los restaurantes activos asignados al usuario.
	ListRestaurantIDs(ctx context.Context, userID string) ([]string, error)
	Replace(ctx context.Context, userID string, restaurantIDs []string) error
}
