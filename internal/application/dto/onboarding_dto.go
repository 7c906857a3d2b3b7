package dto

import "github.com/shopspring/decimal"

// OnboardingRequest body para POST /api/v1/onboarding (público).
type OnboardingRequest struct {
	User    *OnboardingUser    `json:"user" validate:"required"`
	Company *OnboardingCompany `json:"company" validate:"required"`
	Toast   *OnboardingToast   `json:"toast"`
}

// OnboardingUser primer administrador de la empresa.
type OnboardingUser struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"omitempty,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"omitempty,min=6"`
	PhoneNumber string `json:"phone_number"`
	Location    string `json:"location"`
}

// OnboardingCompany empresa y sus restaurantes iniciales.
type OnboardingCompany struct {
	CompanyName     string                 `json:"company_name" validate:"required,max=200"`
	CompanyEmail    string                 `json:"company_email" validate:"omitempty,email"`
	CompanyPhone    string                 `json:"company_phone"`
	CompanyLocation string                 `json:"company_location"`
	Restaurants     []OnboardingRestaurant `json:"restaurants" validate:"dive"`
}

// OnboardingRestaurant restaurante con sus metas iniciales.
// RevenueTargets: nombre de mes → monto; entradas inválidas se ignoran.
type OnboardingRestaurant struct {
	RestaurantName     string           `json:"restaurant_name" validate:"required,max=200"`
	RestaurantEmail    string           `json:"restaurant_email" validate:"omitempty,email"`
	RestaurantPhone    string           `json:"restaurant_phone"`
	RestaurantLocation string           `json:"restaurant_location"`
	State              string           `json:"state"`
	Zipcode            string           `json:"zipcode"`
	RevenueTargets     map[string]any   `json:"revenue_targets"`
	LaborTarget        *LaborTargetInput `json:"labor_target"`
	COGSTarget         *COGSTargetInput  `json:"cogs_target"`
}

// LaborTargetInput objetivos de labor; campos ausentes = 0 / false.
type LaborTargetInput struct {
	OverallLaborTarget    decimal.Decimal `json:"overall_labor_target"`
	FOHTarget             decimal.Decimal `json:"foh_target"`
	BOHTarget             decimal.Decimal `json:"boh_target"`
	FOHCombinedSalaried   decimal.Decimal `json:"foh_combined_salaried"`
	BOHCombinedSalaried   decimal.Decimal `json:"boh_combined_salaried"`
	OtherCombinedSalaried decimal.Decimal `json:"other_combined_salaried"`
	IncludesSalaries      bool            `json:"includes_salaries"`
}

// COGSTargetInput objetivos de costo por categoría.
type COGSTargetInput struct {
	COGSTarget      decimal.Decimal `json:"cogs_target"`
	Food            decimal.Decimal `json:"food"`
	Pastry          decimal.Decimal `json:"pastry"`
	Beer            decimal.Decimal `json:"beer"`
	Wine            decimal.Decimal `json:"wine"`
	Liquor          decimal.Decimal `json:"liquor"`
	NABev           decimal.Decimal `json:"NA_Bev"`
	Smallwares      decimal.Decimal `json:"smallwares"`
	Others          decimal.Decimal `json:"others"`
	PrimePercentage decimal.Decimal `json:"prime_percentage"`
}

// OnboardingToast datos de la integración POS.
type OnboardingToast struct {
	Platform                string `json:"platform"`
	UsesToastPos            bool   `json:"uses_toast_pos"`
	SSHDataExportsEnabled   bool   `json:"ssh_data_exports_enabled"`
	NeedHelpEnablingExports bool   `json:"need_help_enabling_exports"`
}

// OnboardingResult proyección condensada de lo creado (sin passwords).
type OnboardingResult struct {
	User        OnboardedUser         `json:"user"`
	Company     OnboardedCompany      `json:"company"`
	Restaurants []OnboardedRestaurant `json:"restaurants"`
}

// OnboardingResponse respuesta 201 del onboarding.
type OnboardingResponse struct {
	Message string            `json:"message"`
	Data    *OnboardingResult `json:"data"`
}

type OnboardedUser struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
}

type OnboardedCompany struct {
	CompanyID           string `json:"company_id"`
	CompanyName         string `json:"company_name"`
	IsOnboarded         bool   `json:"is_onboarded"`
	NumberOfRestaurants int    `json:"number_of_restaurants"`
}

type OnboardedRestaurant struct {
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	Location       string `json:"location"`
}

// PendingCompaniesResponse empresas activas pendientes de aprobación.
type PendingCompaniesResponse struct {
	Count     int               `json:"count"`
	Companies []CompanyResponse `json:"companies"`
}
