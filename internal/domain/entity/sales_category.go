package entity

import "time"

// DefaultSalesCategories se crean para cada restaurante nuevo durante el onboarding.
var DefaultSalesCategories = []string{
	"Beer", "Others", "Tax", "Liquor", "Wine", "NA Beverage",
	"Food", "Pastry", "Retail", "Smallware", "Linen",
}

// SalesCategory es una categoría de venta/costo de un restaurante; (restaurant_id, name) es único.
type SalesCategory struct {
	ID           string
	RestaurantID string
	Name         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
