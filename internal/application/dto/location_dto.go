package dto

import "github.com/shopspring/decimal"

// LocationUpdateRequest body para PUT /location.
// Forecasts: nombre de mes → monto (entradas inválidas se ignoran).
type LocationUpdateRequest struct {
	ID         string                   `json:"id" validate:"required,uuid"`
	Restaurant *UpdateRestaurantRequest `json:"restaurant"`
	Forecasts  map[string]any           `json:"forecasts"`
	Target     *LocationTargetInput     `json:"target"`
}

// LocationTargetInput objetivo mensual; Year/Month vacíos = año y mes actuales.
type LocationTargetInput struct {
	Year  int `json:"year" validate:"omitempty,min=2000,max=2100"`
	Month int `json:"month" validate:"omitempty,min=1,max=12"`
	LaborTargetInput
	COGSTargetInput
}

// LocationUpdateResponse estado resultante del restaurante.
type LocationUpdateResponse struct {
	Restaurant RestaurantResponse `json:"restaurant"`
	Forecasts  []ForecastResponse `json:"forecasts"`
	Target     *TargetResponse    `json:"target,omitempty"`
}

// ForecastResponse proyección mensual.
type ForecastResponse struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// TargetResponse objetivos del mes.
type TargetResponse struct {
	Year                  int             `json:"year"`
	Month                 int             `json:"month"`
	OverallLaborTarget    decimal.Decimal `json:"overall_labor_target"`
	FOHTarget             decimal.Decimal `json:"foh_target"`
	BOHTarget             decimal.Decimal `json:"boh_target"`
	FOHCombinedSalaried   decimal.Decimal `json:"foh_combined_salaried"`
	BOHCombinedSalaried   decimal.Decimal `json:"boh_combined_salaried"`
	OtherCombinedSalaried decimal.Decimal `json:"other_combined_salaried"`
	IncludesSalaries      bool            `json:"includes_salaries"`
	COGSTarget            decimal.Decimal `json:"cogs_target"`
	Food                  decimal.Decimal `json:"food"`
	Pastry                decimal.Decimal `json:"pastry"`
	Beer                  decimal.Decimal `json:"beer"`
	Wine                  decimal.Decimal `json:"wine"`
	Liquor                decimal.Decimal `json:"liquor"`
	NABev                 decimal.Decimal `json:"NA_Bev"`
	Smallwares            decimal.Decimal `json:"smallwares"`
	Others                decimal.Decimal `json:"others"`
	PrimePercentage       decimal.Decimal `json:"prime_percentage"`
}
