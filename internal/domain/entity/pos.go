package entity

import "time"

// Pos describe la integración de punto de venta de un restaurante (uno por restaurante).
type Pos struct {
	ID                      string
	RestaurantID            string
	UsesToastPos            bool
	Platform                string
	SSHDataExportsEnabled   bool
	NeedHelpEnablingExports bool
	Credential              map[string]any // JSONB
	IsActive                bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
