package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revenue registra ventas y costo laboral de un restaurante para un rango de fechas.
type Revenue struct {
	ID            string
	RestaurantID  string
	UserID        string
	CreatedBy     string
	BeginningDate time.Time
	EndingDate    time.Time
	TotalAmount   decimal.Decimal
	FOHLabour     decimal.Decimal
	BOHLabour     decimal.Decimal
	OtherLabour   decimal.Decimal
	FoodSale      decimal.Decimal
	BeerSale      decimal.Decimal
	LiquorSale    decimal.Decimal
	WineSale      decimal.Decimal
	BeverageSale  decimal.Decimal
	OtherSale     decimal.Decimal
	TotalGuest    int
	Notes         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Amounts devuelve los campos monetarios con su nombre de columna.
func (r *Revenue) Amounts() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"total_amount":  r.TotalAmount,
		"foh_labour":    r.FOHLabour,
		"boh_labour":    r.BOHLabour,
		"other_labour":  r.OtherLabour,
		"food_sale":     r.FoodSale,
		"beer_sale":     r.BeerSale,
		"liquor_sale":   r.LiquorSale,
		"wine_sale":     r.WineSale,
		"beverage_sale": r.BeverageSale,
		"other_sale":    r.OtherSale,
	}
}
