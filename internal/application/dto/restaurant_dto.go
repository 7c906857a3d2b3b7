package dto

import "time"

// CreateRestaurantRequest entrada para crear un restaurante. CompanyID solo lo usa un Super_Admin.
type CreateRestaurantRequest struct {
	CompanyID string `json:"company_id" validate:"omitempty,uuid"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=50"`
	Location  string `json:"location" validate:"omitempty,max=255"`
	State     string `json:"state" validate:"omitempty,max=100"`
	Zipcode   string `json:"zipcode" validate:"omitempty,max=20"`
}

// UpdateRestaurantRequest campos editables; company_id no se puede cambiar.
type UpdateRestaurantRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=50"`
	Location *string `json:"location" validate:"omitempty,max=255"`
	State    *string `json:"state" validate:"omitempty,max=100"`
	Zipcode  *string `json:"zipcode" validate:"omitempty,max=20"`
}

// RestaurantResponse salida de un restaurante.
type RestaurantResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	State     string    `json:"state"`
	Zipcode   string    `json:"zipcode"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RestaurantListQuery filtros de GET /restaurants.
type RestaurantListQuery struct {
	PageRequest
	CompanyID string `query:"company_id" validate:"omitempty,uuid"`
}

// RestaurantListResponse lista paginada de restaurantes.
type RestaurantListResponse struct {
	Items []RestaurantResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
