package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin         = "Super_Admin"
	RoleCompanyAdmin       = "Company_Admin"
	RoleRestaurantEmployee = "Restaurant_Employee"
)

// ValidRole indica si role es uno de los tres roles del sistema.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleRestaurantEmployee:
		return true
	}
	return false
}

// User representa un usuario del sistema. CompanyID es nil solo para Super_Admin.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Phone        string
	Role         string
	CompanyID    *string
	IsActive     bool
	IsBlocked    bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CompanyIDValue devuelve el company_id o "" cuando el usuario no tiene empresa.
func (u *User) CompanyIDValue() string {
	if u.CompanyID == nil {
		return ""
	}
	return *u.CompanyID
}

// UserRestaurant vincula un usuario con un restaurante; el par es único.
type UserRestaurant struct {
	UserID       string
	RestaurantID string
	CreatedAt    time.Time
}
