package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
	"github.com/jhoicas/bluebook-api/pkg/logger"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo        repository.CompanyRepository
	restaurants repository.RestaurantRepository
	log         *logger.Logger
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, restaurants repository.RestaurantRepository, log *logger.Logger) *CompanyUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CompanyUseCase{repo: repo, restaurants: restaurants, log: log.Named("company")}
}

// Create da de alta una empresa pendiente de aprobación (is_onboarded=false).
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	ts := now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Location:  strings.TrimSpace(in.Location),
		IsActive:  true,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if company.Name == "" {
		return nil, domain.Validation("NAME_REQUIRED", "name es obligatorio")
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	out := dto.NewCompanyResponse(company)
	return &out, nil
}

// GetByID obtiene una empresa con sus restaurantes activos. Solo Super_Admin ve empresas ajenas.
func (uc *CompanyUseCase) GetByID(ctx context.Context, caller access.Caller, id string) (*dto.CompanyResponse, error) {
	if err := sameCompany(caller, id); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	restaurants, _, err := uc.restaurants.List(ctx, repository.RestaurantFilter{Scope: access.All(), CompanyID: id})
	if err != nil {
		return nil, err
	}
	out := dto.NewCompanyResponse(company)
	out.Restaurants = dto.NewRestaurantResponses(restaurants)
	return &out, nil
}

// List lista empresas aprobadas. Un Company_Admin solo ve la suya.
func (uc *CompanyUseCase) List(ctx context.Context, caller access.Caller, p dto.PageRequest) (*dto.CompanyListResponse, error) {
	p.DefaultPage()
	items := []dto.CompanyResponse{}
	if caller.Role != entity.RoleSuperAdmin {
		if caller.CompanyID == "" {
			return &dto.CompanyListResponse{Items: items, Page: dto.NewPageResponse(0, p)}, nil
		}
		company, err := uc.repo.GetByID(ctx, caller.CompanyID, false)
		if err != nil {
			if isNotFound(err) {
				return &dto.CompanyListResponse{Items: items, Page: dto.NewPageResponse(0, p)}, nil
			}
			return nil, err
		}
		if company.IsOnboarded {
			items = append(items, dto.NewCompanyResponse(company))
		}
		return &dto.CompanyListResponse{Items: items, Page: dto.NewPageResponse(len(items), p)}, nil
	}

	onboarded := true
	list, total, err := uc.repo.List(ctx, repository.CompanyFilter{
		Onboarded: &onboarded,
		Page:      repository.Page{Limit: p.Limit(), Offset: p.Offset()},
	})
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		items = append(items, dto.NewCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Items: items, Page: dto.NewPageResponse(total, p)}, nil
}

// Update modifica los datos de contacto. Company_Admin solo sobre su empresa.
func (uc *CompanyUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := sameCompany(caller, id); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	setString(&company.Name, in.Name)
	setString(&company.Email, in.Email)
	setString(&company.Phone, in.Phone)
	setString(&company.Location, in.Location)
	if company.Name == "" {
		return nil, domain.Validation("NAME_REQUIRED", "name es obligatorio")
	}
	company.UpdatedAt = now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	out := dto.NewCompanyResponse(company)
	return &out, nil
}

// Delete desactiva la empresa (solo Super_Admin, controlado por permisos).
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("company_id", id).Msg("empresa desactivada")
	return nil
}

// Approve marca como aprobada una empresa pendiente.
func (uc *CompanyUseCase) Approve(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if company.IsOnboarded {
		return nil, domain.Conflict("COMPANY_ALREADY_ONBOARDED", "la empresa ya está aprobada")
	}
	company.IsOnboarded = true
	company.UpdatedAt = now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	uc.log.Info().Str("company_id", id).Msg("empresa aprobada")
	out := dto.NewCompanyResponse(company)
	return &out, nil
}

// Reject desactiva una empresa pendiente.
func (uc *CompanyUseCase) Reject(ctx context.Context, id string) error {
	company, err := uc.repo.GetByID(ctx, id, false)
	if err != nil {
		return err
	}
	if company.IsOnboarded {
		return domain.Conflict("COMPANY_ALREADY_ONBOARDED", "la empresa ya está aprobada")
	}
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("company_id", id).Msg("empresa rechazada")
	return nil
}
