package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appaccess "github.com/jhoicas/bluebook-api/internal/application/access"
	appanalytics "github.com/jhoicas/bluebook-api/internal/application/analytics"
	"github.com/jhoicas/bluebook-api/internal/application/auth"
	"github.com/jhoicas/bluebook-api/internal/application/onboarding"
	"github.com/jhoicas/bluebook-api/internal/application/usecase"
	"github.com/jhoicas/bluebook-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/bluebook-api/internal/infrastructure/pdf"
	"github.com/jhoicas/bluebook-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/bluebook-api/internal/interfaces/http"
	"github.com/jhoicas/bluebook-api/pkg/config"
	"github.com/jhoicas/bluebook-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repos := postgres.NewRepos(pool)
	txRunner := postgres.NewTxRunner(pool)
	scopes := appaccess.NewResolver(repos.Restaurants, repos.UserRestaurants)

	// Caché del dashboard: opcional, si Redis no responde se sigue sin ella
	var statsCache appanalytics.StatsCache
	if cfg.Redis.Enabled() {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		rdb, err := cache.Connect(pingCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		cancel()
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, dashboard sin caché")
		} else {
			defer rdb.Close()
			statsCache = cache.NewRedisStatsCache(rdb, cfg.Redis.TTL)
			log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("caché del dashboard activa")
		}
	}

	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	onboardingSvc := onboarding.NewService(txRunner, repos.Companies, repos.Restaurants,
		onboarding.Config{DefaultPassword: cfg.Auth.DefaultPassword}, log)

	companyUC := usecase.NewCompanyUseCase(repos.Companies, repos.Restaurants, log)
	restaurantUC := usecase.NewRestaurantUseCase(repos.Restaurants, txRunner, scopes)
	locationUC := usecase.NewLocationUseCase(txRunner, scopes)
	userUC := usecase.NewUserUseCase(repos.Users, repos.UserRestaurants, repos.Restaurants,
		txRunner, scopes, cfg.Auth.DefaultPassword, log)
	roleUC := usecase.NewRoleUseCase()
	revenueUC := usecase.NewRevenueUseCase(repos.Revenues, scopes)
	expenseUC := usecase.NewExpenseUseCase(repos.Expenses, repos.Invoices, txRunner, scopes, log)
	blueBookUC := usecase.NewBlueBookUseCase(repos.BlueBooks, txRunner, scopes, log)

	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, repos.Restaurants, statsCache, log)

	// PDF: exportación del dashboard
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	reportUC := appanalytics.NewReportUseCase(dashboardUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: httpRouter.ErrorHandler(cfg.App.IsProduction(), log),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs (se genera con swag init)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Blue Book API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Onboarding:   onboardingSvc,
		CompanyUC:    companyUC,
		RestaurantUC: restaurantUC,
		LocationUC:   locationUC,
		UserUC:       userUC,
		RoleUC:       roleUC,
		RevenueUC:    revenueUC,
		ExpenseUC:    expenseUC,
		BlueBookUC:   blueBookUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		Scopes:       scopes,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
