package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRevenueRequest body para POST /restaurants/:restaurant_id/revenue.
type CreateRevenueRequest struct {
	RestaurantID  string          `json:"restaurant_id" validate:"required,uuid"`
	BeginningDate string          `json:"beginning_date" validate:"required,datetime=2006-01-02"`
	EndingDate    string          `json:"ending_date" validate:"required,datetime=2006-01-02"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	FOHLabour     decimal.Decimal `json:"foh_labour"`
	BOHLabour     decimal.Decimal `json:"boh_labour"`
	OtherLabour   decimal.Decimal `json:"other_labour"`
	FoodSale      decimal.Decimal `json:"food_sale"`
	BeerSale      decimal.Decimal `json:"beer_sale"`
	LiquorSale    decimal.Decimal `json:"liquor_sale"`
	WineSale      decimal.Decimal `json:"wine_sale"`
	BeverageSale  decimal.Decimal `json:"beverage_sale"`
	OtherSale     decimal.Decimal `json:"other_sale"`
	TotalGuest    int             `json:"total_guest" validate:"min=0"`
	Notes         string          `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateRevenueRequest campos editables; restaurant_id y user_id no cambian.
type UpdateRevenueRequest struct {
	BeginningDate *string          `json:"beginning_date" validate:"omitempty,datetime=2006-01-02"`
	EndingDate    *string          `json:"ending_date" validate:"omitempty,datetime=2006-01-02"`
	TotalAmount   *decimal.Decimal `json:"total_amount"`
	FOHLabour     *decimal.Decimal `json:"foh_labour"`
	BOHLabour     *decimal.Decimal `json:"boh_labour"`
	OtherLabour   *decimal.Decimal `json:"other_labour"`
	FoodSale      *decimal.Decimal `json:"food_sale"`
	BeerSale      *decimal.Decimal `json:"beer_sale"`
	LiquorSale    *decimal.Decimal `json:"liquor_sale"`
	WineSale      *decimal.Decimal `json:"wine_sale"`
	BeverageSale  *decimal.Decimal `json:"beverage_sale"`
	OtherSale     *decimal.Decimal `json:"other_sale"`
	TotalGuest    *int             `json:"total_guest" validate:"omitempty,min=0"`
	Notes         *string          `json:"notes" validate:"omitempty,max=2000"`
}

// RevenueResponse salida de un registro de ingresos.
type RevenueResponse struct {
	ID            string          `json:"id"`
	RestaurantID  string          `json:"restaurant_id"`
	UserID        string          `json:"user_id"`
	CreatedBy     string          `json:"created_by"`
	BeginningDate string          `json:"beginning_date"`
	EndingDate    string          `json:"ending_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	FOHLabour     decimal.Decimal `json:"foh_labour"`
	BOHLabour     decimal.Decimal `json:"boh_labour"`
	OtherLabour   decimal.Decimal `json:"other_labour"`
	FoodSale      decimal.Decimal `json:"food_sale"`
	BeerSale      decimal.Decimal `json:"beer_sale"`
	LiquorSale    decimal.Decimal `json:"liquor_sale"`
	WineSale      decimal.Decimal `json:"wine_sale"`
	BeverageSale  decimal.Decimal `json:"beverage_sale"`
	OtherSale     decimal.Decimal `json:"other_sale"`
	TotalGuest    int             `json:"total_guest"`
	Notes         string          `json:"notes"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RecordListQuery filtros comunes de listados de revenue / expense / blue book.
// RestaurantIDs acepta varios valores separados por coma.
type RecordListQuery struct {
	PageRequest
	DateRangeQuery
	RestaurantID string `query:"restaurant_id"`
	Category     string `query:"category" validate:"omitempty,max=100"`
}

// RevenueListResponse lista paginada de ingresos.
type RevenueListResponse struct {
	Items []RevenueResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
