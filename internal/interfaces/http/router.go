package http

import (
	"github.com/gofiber/fiber/v2"

	appaccess "github.com/jhoicas/bluebook-api/internal/application/access"
	appanalytics "github.com/jhoicas/bluebook-api/internal/application/analytics"
	"github.com/jhoicas/bluebook-api/internal/application/auth"
	"github.com/jhoicas/bluebook-api/internal/application/onboarding"
	"github.com/jhoicas/bluebook-api/internal/application/usecase"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Onboarding   *onboarding.Service
	CompanyUC    *usecase.CompanyUseCase
	RestaurantUC *usecase.RestaurantUseCase
	LocationUC   *usecase.LocationUseCase
	UserUC       *usecase.UserUseCase
	RoleUC       *usecase.RoleUseCase
	RevenueUC    *usecase.RevenueUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	BlueBookUC   *usecase.BlueBookUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	ReportUC     *appanalytics.ReportUseCase
	Scopes       *appaccess.Resolver
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")
	requireAuth := AuthMiddleware(deps.AuthUC)

	// Auth y onboarding (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Onboarding)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/auth/me", requireAuth, authHandler.Me)
	api.Post("/onboarding", authHandler.Onboard)

	// Companies: el alta queda pendiente hasta que un Super_Admin la apruebe
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies := api.Group("/companies")
	companies.Post("/", companyHandler.Create)
	companies.Get("/", requireAuth, RequirePermission(access.CompanyView), companyHandler.List)
	companies.Get("/pending", requireAuth, RequireRole(entity.RoleSuperAdmin), authHandler.ListPending)
	companies.Get("/:id", requireAuth, RequirePermission(access.CompanyView), companyHandler.GetByID)
	companies.Put("/:id", requireAuth, RequirePermission(access.CompanyUpdate), companyHandler.Update)
	companies.Delete("/:id", requireAuth, RequirePermission(access.CompanyDelete), companyHandler.Delete)
	companies.Patch("/:id/approve", requireAuth, RequirePermission(access.CompanyApprove), companyHandler.Approve)
	companies.Patch("/:id/reject", requireAuth, RequirePermission(access.CompanyApprove), companyHandler.Reject)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", requireAuth)

	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC, deps.LocationUC)
	restaurants := protected.Group("/restaurants")
	restaurants.Post("/", RequirePermission(access.RestaurantCreate), restaurantHandler.Create)
	restaurants.Get("/", RequirePermission(access.RestaurantView), restaurantHandler.List)
	restaurants.Get("/:id", RequirePermission(access.RestaurantView), restaurantHandler.GetByID)
	restaurants.Put("/:id", RequirePermission(access.RestaurantUpdate), restaurantHandler.Update)
	restaurants.Delete("/:id", RequirePermission(access.RestaurantDelete), restaurantHandler.Delete)
	protected.Put("/location", RequirePermission(access.RestaurantUpdate), restaurantHandler.UpdateLocation)

	// Users: ver y editar el propio perfil no exige permiso de administración
	userHandler := NewUserHandler(deps.UserUC, deps.RoleUC)
	users := protected.Group("/users")
	users.Post("/", RequirePermission(access.UserCreate), userHandler.Create)
	users.Get("/", RequirePermission(access.UserView), userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", RequirePermission(access.UserDelete), userHandler.Delete)
	users.Patch("/:id/block", RequirePermission(access.UserUpdate), userHandler.ToggleBlock)
	users.Get("/:id/restaurants", userHandler.Restaurants)
	users.Put("/:id/restaurants", RequirePermission(access.UserUpdate), userHandler.AssignRestaurants)

	roles := protected.Group("/roles")
	roles.Get("/", userHandler.ListRoles)
	roles.Get("/:name", userHandler.RoleByName)

	revenueHandler := NewRevenueHandler(deps.RevenueUC)
	revenue := protected.Group("/revenue")
	revenue.Post("/", RequirePermission(access.RevenueCreate), revenueHandler.Create)
	revenue.Get("/", RequirePermission(access.RevenueView), revenueHandler.List)
	revenue.Get("/:id", RequirePermission(access.RevenueView), revenueHandler.GetByID)
	revenue.Put("/:id", RequirePermission(access.RevenueUpdate), revenueHandler.Update)
	revenue.Delete("/:id", RequirePermission(access.RevenueDelete), revenueHandler.Delete)

	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expense := protected.Group("/expense")
	expense.Post("/", RequirePermission(access.ExpenseCreate), expenseHandler.Create)
	expense.Get("/", RequirePermission(access.ExpenseView), expenseHandler.List)
	expense.Get("/:id", RequirePermission(access.ExpenseView), expenseHandler.GetByID)
	expense.Put("/:id", RequirePermission(access.ExpenseUpdate), expenseHandler.Update)
	expense.Delete("/:id", RequirePermission(access.ExpenseDelete), expenseHandler.Delete)

	blueBookHandler := NewBlueBookHandler(deps.BlueBookUC)
	blueBook := protected.Group("/blue-book")
	blueBook.Post("/", RequirePermission(access.BlueBookCreate), blueBookHandler.Create)
	blueBook.Get("/", RequirePermission(access.BlueBookView), blueBookHandler.List)
	blueBook.Get("/restaurant/:restaurantId/date/:date", RequirePermission(access.BlueBookView), blueBookHandler.GetByDate)
	blueBook.Get("/:id", RequirePermission(access.BlueBookView), blueBookHandler.GetByID)
	blueBook.Put("/:id", RequirePermission(access.BlueBookUpdate), blueBookHandler.Update)
	blueBook.Delete("/:id", RequirePermission(access.BlueBookDelete), blueBookHandler.Delete)

	// Dashboard: las estadísticas respetan el alcance; el PDF exige reports:export
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC, deps.Scopes)
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", dashboardHandler.GetStats)
	dashboard.Get("/export", RequirePermission(access.ReportsExport), dashboardHandler.Export)
}
