package dto

import "time"

// CreateUserRequest entrada para que un administrador cree un usuario.
// Password vacío = contraseña por defecto de configuración. RestaurantName permite
// asignar por nombre dentro de la empresa (formulario "add user" del frontend).
type CreateUserRequest struct {
	FirstName      string   `json:"first_name" validate:"required,min=1,max=100"`
	LastName       string   `json:"last_name" validate:"omitempty,max=100"`
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"omitempty,min=6"`
	Phone          string   `json:"phone" validate:"omitempty,max=50"`
	Role           string   `json:"role" validate:"omitempty,oneof=Super_Admin Company_Admin Restaurant_Employee"`
	CompanyID      string   `json:"company_id" validate:"omitempty,uuid"`
	RestaurantIDs  []string `json:"restaurant_ids" validate:"omitempty,dive,uuid"`
	RestaurantName string   `json:"restaurant_name" validate:"omitempty,max=200"`
}

// UpdateUserRequest campos editables de un usuario.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=50"`
	Role      *string `json:"role" validate:"omitempty,oneof=Super_Admin Company_Admin Restaurant_Employee"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string     `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Role      string     `json:"role"`
	CompanyID string     `json:"company_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	IsBlocked bool       `json:"is_blocked"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	RestaurantIDs []string `json:"restaurant_ids,omitempty"`
}

// UserListQuery filtros de GET /users.
type UserListQuery struct {
	PageRequest
	CompanyID string `query:"company_id" validate:"omitempty,uuid"`
	Role      string `query:"role" validate:"omitempty,oneof=Super_Admin Company_Admin Restaurant_Employee"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// AssignRestaurantsRequest reemplaza las asignaciones de un usuario.
type AssignRestaurantsRequest struct {
	RestaurantIDs []string `json:"restaurant_ids" validate:"dive,uuid"`
}

// UserRestaurantsResponse restaurantes asignados a un usuario.
type UserRestaurantsResponse struct {
	UserID      string               `json:"user_id"`
	Restaurants []RestaurantResponse `json:"restaurants"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
