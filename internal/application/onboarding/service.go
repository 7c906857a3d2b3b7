// Package onboarding orquesta el alta self-service: empresa, restaurantes, sub-registros y primer
// administrador, todo en una sola transacción.
package onboarding

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bluebook-api/internal/application/auth"
	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
	"github.com/jhoicas/bluebook-api/pkg/logger"
)

// SuccessMessage mensaje de la respuesta 201.
const SuccessMessage = "Onboarding successful! Company pending approval."

// Config parámetros del orquestador. Now es inyectable para fijar año/mes en tests.
type Config struct {
	DefaultPassword string
	Now             func() time.Time
}

// Service implementa Onboard y ListPending.
type Service struct {
	tx          repository.TxRunner
	companies   repository.CompanyRepository
	restaurants repository.RestaurantRepository
	cfg         Config
	log         *logger.Logger
}

// NewService construye el orquestador.
func NewService(
	tx repository.TxRunner,
	companies repository.CompanyRepository,
	restaurants repository.RestaurantRepository,
	cfg Config,
	log *logger.Logger,
) *Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{tx: tx, companies: companies, restaurants: restaurants, cfg: cfg, log: log.Named("onboarding")}
}

// Onboard crea empresa pendiente + restaurantes + POS/categorías/forecasts/target + usuario
// Company_Admin vinculado a cada restaurante. Cualquier fallo revierte todo.
func (s *Service) Onboard(ctx context.Context, in *dto.OnboardingRequest) (*dto.OnboardingResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	password := in.User.Password
	if password == "" {
		password = s.cfg.DefaultPassword
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := s.cfg.Now().UTC()
	email := strings.TrimSpace(in.User.Email)
	s.log.Info().Str("email", email).Int("restaurants", len(in.Company.Restaurants)).Msg("onboarding iniciado")

	var result *dto.OnboardingResult
	err = s.tx.Run(ctx, func(r repository.Repos) error {
		// Pre-chequeo; el índice único de users.email es la autoridad final.
		if _, err := r.Users.GetByEmail(ctx, email); err == nil {
			return domain.ErrEmailAlreadyExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		company := &entity.Company{
			ID:                  uuid.New().String(),
			Name:                strings.TrimSpace(in.Company.CompanyName),
			Email:               firstNonEmpty(in.Company.CompanyEmail, email),
			Phone:               firstNonEmpty(in.Company.CompanyPhone, in.User.PhoneNumber),
			Location:            firstNonEmpty(in.Company.CompanyLocation, in.User.Location),
			NumberOfRestaurants: len(in.Company.Restaurants),
			IsOnboarded:         false,
			IsActive:            true,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if err := r.Companies.Create(ctx, company); err != nil {
			return err
		}

		created := make([]*entity.Restaurant, 0, len(in.Company.Restaurants))
		for _, rin := range in.Company.Restaurants {
			restaurant, err := s.createRestaurant(ctx, r, company, in, rin, now)
			if err != nil {
				return err
			}
			created = append(created, restaurant)
		}

		companyID := company.ID
		user := &entity.User{
			ID:           uuid.New().String(),
			FirstName:    strings.TrimSpace(in.User.FirstName),
			LastName:     strings.TrimSpace(in.User.LastName),
			Email:        email,
			PasswordHash: hash,
			Phone:        in.User.PhoneNumber,
			Role:         entity.RoleCompanyAdmin,
			CompanyID:    &companyID,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := r.Users.Create(ctx, user); err != nil {
			return err
		}

		ids := make([]string, 0, len(created))
		for _, x := range created {
			ids = append(ids, x.ID)
		}
		if len(ids) > 0 {
			if err := r.UserRestaurants.Link(ctx, user.ID, ids); err != nil {
				return err
			}
		}

		result = project(user, company, created)
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("onboarding revertido")
		return nil, asDomainError(err)
	}

	s.log.Info().Str("company_id", result.Company.CompanyID).Str("user_id", result.User.UserID).Msg("onboarding completado")
	return result, nil
}

// createRestaurant crea el restaurante y sus sub-registros dentro de la transacción.
func (s *Service) createRestaurant(
	ctx context.Context,
	r repository.Repos,
	company *entity.Company,
	in *dto.OnboardingRequest,
	rin dto.OnboardingRestaurant,
	now time.Time,
) (*entity.Restaurant, error) {
	restaurant := &entity.Restaurant{
		ID:        uuid.New().String(),
		CompanyID: company.ID,
		Name:      strings.TrimSpace(rin.RestaurantName),
		Email:     firstNonEmpty(rin.RestaurantEmail, in.User.Email),
		Phone:     firstNonEmpty(rin.RestaurantPhone, in.User.PhoneNumber),
		Location:  rin.RestaurantLocation,
		State:     rin.State,
		Zipcode:   rin.Zipcode,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.Restaurants.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	// ── POS ──────────────────────────────────────────────────────────────────
	if t := in.Toast; t != nil && (t.Platform != "" || t.UsesToastPos) {
		pos := &entity.Pos{
			ID:                      uuid.New().String(),
			RestaurantID:            restaurant.ID,
			UsesToastPos:            t.UsesToastPos,
			Platform:                t.Platform,
			SSHDataExportsEnabled:   t.SSHDataExportsEnabled,
			NeedHelpEnablingExports: t.NeedHelpEnablingExports,
			IsActive:                true,
			CreatedAt:               now,
			UpdatedAt:               now,
		}
		if err := r.Pos.Upsert(ctx, pos); err != nil {
			return nil, err
		}
	}

	// ── Categorías de venta por defecto ─────────────────────────────────────
	for _, name := range entity.DefaultSalesCategories {
		category := &entity.SalesCategory{
			ID:           uuid.New().String(),
			RestaurantID: restaurant.ID,
			Name:         name,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := r.SalesCategories.Create(ctx, category); err != nil {
			return nil, err
		}
	}

	// ── Forecasts del año en curso ───────────────────────────────────────────
	for _, ma := range dto.MonthAmounts(rin.RevenueTargets) {
		forecast := &entity.Forecast{
			ID:           uuid.New().String(),
			RestaurantID: restaurant.ID,
			Year:         now.Year(),
			Month:        ma.Month,
			Amount:       ma.Amount,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := r.Forecasts.Upsert(ctx, forecast); err != nil {
			return nil, err
		}
	}

	// ── Target del mes en curso ──────────────────────────────────────────────
	target := &entity.Target{
		ID:           uuid.New().String(),
		RestaurantID: restaurant.ID,
		Year:         now.Year(),
		Month:        int(now.Month()),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	dto.ApplyLabor(target, rin.LaborTarget)
	dto.ApplyCOGS(target, rin.COGSTarget)
	if err := r.Targets.Upsert(ctx, target); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// ListPending devuelve las empresas activas pendientes de aprobación con sus restaurantes,
// de la más antigua a la más reciente.
func (s *Service) ListPending(ctx context.Context) (*dto.PendingCompaniesResponse, error) {
	pending := false
	list, _, err := s.companies.List(ctx, repository.CompanyFilter{Onboarded: &pending})
	if err != nil {
		return nil, err
	}
	out := &dto.PendingCompaniesResponse{Companies: make([]dto.CompanyResponse, 0, len(list))}
	for i := len(list) - 1; i >= 0; i-- {
		c := list[i]
		restaurants, _, err := s.restaurants.List(ctx, repository.RestaurantFilter{Scope: access.All(), CompanyID: c.ID})
		if err != nil {
			return nil, err
		}
		resp := dto.NewCompanyResponse(c)
		resp.Restaurants = dto.NewRestaurantResponses(restaurants)
		out.Companies = append(out.Companies, resp)
	}
	out.Count = len(out.Companies)
	return out, nil
}

func validate(in *dto.OnboardingRequest) error {
	if in == nil || in.User == nil || in.Company == nil {
		return domain.Validation("ONBOARDING_INCOMPLETE", "user y company son obligatorios")
	}
	if strings.TrimSpace(in.User.Email) == "" {
		return domain.Validation("ONBOARDING_INCOMPLETE", "user.email es obligatorio")
	}
	if strings.TrimSpace(in.Company.CompanyName) == "" {
		return domain.Validation("ONBOARDING_INCOMPLETE", "company.company_name es obligatorio")
	}
	for i, r := range in.Company.Restaurants {
		if strings.TrimSpace(r.RestaurantName) == "" {
			return domain.Validation("ONBOARDING_INCOMPLETE", "restaurants["+strconv.Itoa(i)+"].restaurant_name es obligatorio")
		}
	}
	return nil
}

func project(u *entity.User, c *entity.Company, restaurants []*entity.Restaurant) *dto.OnboardingResult {
	out := &dto.OnboardingResult{
		User: dto.OnboardedUser{
			UserID:    u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      u.Role,
			CompanyID: u.CompanyIDValue(),
		},
		Company: dto.OnboardedCompany{
			CompanyID:           c.ID,
			CompanyName:         c.Name,
			IsOnboarded:         c.IsOnboarded,
			NumberOfRestaurants: c.NumberOfRestaurants,
		},
		Restaurants: make([]dto.OnboardedRestaurant, 0, len(restaurants)),
	}
	for _, r := range restaurants {
		out.Restaurants = append(out.Restaurants, dto.OnboardedRestaurant{
			RestaurantID:   r.ID,
			RestaurantName: r.Name,
			Location:       r.Location,
		})
	}
	return out
}

// asDomainError deja pasar los errores tipados y envuelve el resto como Internal.
func asDomainError(err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return domain.Internal("onboarding", err)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
