package access

import (
	"sort"

	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

// Permission es un par recurso:acción (ej. "revenue:create").
type Permission string

const (
	CompanyView    Permission = "company:view"
	CompanyCreate  Permission = "company:create"
	CompanyUpdate  Permission = "company:update"
	CompanyDelete  Permission = "company:delete"
	CompanyApprove Permission = "company:approve"

	UserView   Permission = "user:view"
	UserCreate Permission = "user:create"
	UserUpdate Permission = "user:update"
	UserDelete Permission = "user:delete"

	RestaurantView   Permission = "restaurant:view"
	RestaurantCreate Permission = "restaurant:create"
	RestaurantUpdate Permission = "restaurant:update"
	RestaurantDelete Permission = "restaurant:delete"

	RevenueView   Permission = "revenue:view"
	RevenueCreate Permission = "revenue:create"
	RevenueUpdate Permission = "revenue:update"
	RevenueDelete Permission = "revenue:delete"

	ExpenseView   Permission = "expense:view"
	ExpenseCreate Permission = "expense:create"
	ExpenseUpdate Permission = "expense:update"
	ExpenseDelete Permission = "expense:delete"

	BlueBookView   Permission = "bluebook:view"
	BlueBookCreate Permission = "bluebook:create"
	BlueBookUpdate Permission = "bluebook:update"
	BlueBookDelete Permission = "bluebook:delete"

	AnalyticsView Permission = "analytics:view"
	ReportsExport Permission = "reports:export"
)

var (
	allRoles   = []string{entity.RoleSuperAdmin, entity.RoleCompanyAdmin, entity.RoleRestaurantEmployee}
	adminRoles = []string{entity.RoleSuperAdmin, entity.RoleCompanyAdmin}
	superOnly  = []string{entity.RoleSuperAdmin}
)

// permissions: permiso → roles que lo tienen.
var permissions = map[Permission][]string{
	CompanyView:    allRoles,
	CompanyCreate:  superOnly,
	CompanyUpdate:  adminRoles,
	CompanyDelete:  superOnly,
	CompanyApprove: superOnly,

	UserView:   adminRoles,
	UserCreate: adminRoles,
	UserUpdate: adminRoles,
	UserDelete: adminRoles,

	RestaurantView:   allRoles,
	RestaurantCreate: adminRoles,
	RestaurantUpdate: adminRoles,
	RestaurantDelete: adminRoles,

	RevenueView:   allRoles,
	RevenueCreate: allRoles,
	RevenueUpdate: allRoles,
	RevenueDelete: adminRoles,

	ExpenseView:   allRoles,
	ExpenseCreate: allRoles,
	ExpenseUpdate: allRoles,
	ExpenseDelete: adminRoles,

	BlueBookView:   allRoles,
	BlueBookCreate: allRoles,
	BlueBookUpdate: allRoles,
	BlueBookDelete: adminRoles,

	AnalyticsView: adminRoles,
	ReportsExport: adminRoles,
}

// HasPermission indica si role tiene el permiso p. Permisos desconocidos se niegan.
func HasPermission(role string, p Permission) bool {
	for _, r := range permissions[p] {
		if r == role {
			return true
		}
	}
	return false
}

// PermissionsOf lista los permisos de role en orden alfabético.
func PermissionsOf(role string) []string {
	var out []string
	for p := range permissions {
		if HasPermission(role, p) {
			out = append(out, string(p))
		}
	}
	sort.Strings(out)
	return out
}

// HasAnyRole indica si role está en roles.
func HasAnyRole(role string, roles ...string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
