package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Forecast es la meta de ventas mensual de un restaurante; (restaurant_id, year, month) es único.
type Forecast struct {
	ID           string
	RestaurantID string
	Year         int
	Month        int
	Amount       decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Target agrupa los objetivos de labor y COGS (porcentajes) de un mes.
type Target struct {
	ID                    string
	RestaurantID          string
	Year                  int
	Month                 int
	OverallLaborTarget    decimal.Decimal
	FOHTarget             decimal.Decimal
	BOHTarget             decimal.Decimal
	FOHCombinedSalaried   decimal.Decimal
	BOHCombinedSalaried   decimal.Decimal
	OtherCombinedSalaried decimal.Decimal
	IncludesSalaries      bool
	COGSTarget            decimal.Decimal
	Food                  decimal.Decimal
	Pastry                decimal.Decimal
	Beer                  decimal.Decimal
	Wine                  decimal.Decimal
	Liquor                decimal.Decimal
	NABev                 decimal.Decimal
	Smallwares            decimal.Decimal
	Others                decimal.Decimal
	PrimePercentage       decimal.Decimal
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
