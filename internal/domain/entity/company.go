package entity

import "time"

// Company representa una empresa (tenant) dueña de uno o más restaurantes.
// IsOnboarded=false significa pendiente de aprobación por un Super_Admin.
type Company struct {
	ID                  string
	Name                string
	Email               string
	Phone               string
	Location            string
	NumberOfRestaurants int
	IsOnboarded         bool
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Pending indica si la empresa espera aprobación.
func (c *Company) Pending() bool {
	return c.IsActive && !c.IsOnboarded
}
