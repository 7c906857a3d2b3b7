package entity

import "time"

// Restaurant pertenece a una única Company; CompanyID no cambia después de crearse.
type Restaurant struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	Location  string
	State     string
	Zipcode   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
