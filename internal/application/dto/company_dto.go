package dto

import "time"

// CreateCompanyRequest entrada para el alta self-service de una empresa (queda pendiente).
type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,max=50"`
	Location string `json:"location" validate:"omitempty,max=255"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=50"`
	Location *string `json:"location" validate:"omitempty,max=255"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Email               string               `json:"email"`
	Phone               string               `json:"phone"`
	Location            string               `json:"location"`
	NumberOfRestaurants int                  `json:"number_of_restaurants"`
	IsOnboarded         bool                 `json:"is_onboarded"`
	IsActive            bool                 `json:"is_active"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
	Restaurants         []RestaurantResponse `json:"restaurants,omitempty"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
