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
)

// RestaurantUseCase gestiona restaurantes dentro del alcance de quien llama.
type RestaurantUseCase struct {
	repo   repository.RestaurantRepository
	tx     repository.TxRunner
	scopes ScopeResolver
}

// NewRestaurantUseCase construye el caso de uso.
func NewRestaurantUseCase(repo repository.RestaurantRepository, tx repository.TxRunner, scopes ScopeResolver) *RestaurantUseCase {
	return &RestaurantUseCase{repo: repo, tx: tx, scopes: scopes}
}

// Create crea un restaurante. Company_Admin siempre en su empresa; Super_Admin indica company_id.
// Las categorías de venta por defecto se crean en la misma transacción y
// number_of_restaurants de la empresa se incrementa.
func (uc *RestaurantUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	companyID := in.CompanyID
	if caller.Role != entity.RoleSuperAdmin {
		if companyID != "" && companyID != caller.CompanyID {
			return nil, domain.Forbidden("COMPANY_FORBIDDEN", "no tiene acceso a esta empresa")
		}
		companyID = caller.CompanyID
	}
	if companyID == "" {
		return nil, domain.Validation("COMPANY_REQUIRED", "company_id es obligatorio")
	}
	ts := now()
	restaurant := &entity.Restaurant{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Location:  strings.TrimSpace(in.Location),
		State:     strings.TrimSpace(in.State),
		Zipcode:   strings.TrimSpace(in.Zipcode),
		IsActive:  true,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if restaurant.Name == "" {
		return nil, domain.Validation("NAME_REQUIRED", "name es obligatorio")
	}

	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		company, err := r.Companies.GetByID(ctx, companyID, false)
		if err != nil {
			return err
		}
		if err := r.Restaurants.Create(ctx, restaurant); err != nil {
			return err
		}
		for _, name := range entity.DefaultSalesCategories {
			if err := r.SalesCategories.Create(ctx, &entity.SalesCategory{
				ID:           uuid.New().String(),
				RestaurantID: restaurant.ID,
				Name:         name,
				IsActive:     true,
				CreatedAt:    ts,
				UpdatedAt:    ts,
			}); err != nil {
				return err
			}
		}
		company.NumberOfRestaurants++
		company.UpdatedAt = ts
		return r.Companies.Update(ctx, company)
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewRestaurantResponse(restaurant)
	return &out, nil
}

// GetByID devuelve el restaurante si está en el alcance.
func (uc *RestaurantUseCase) GetByID(ctx context.Context, caller access.Caller, id string) (*dto.RestaurantResponse, error) {
	restaurant, err := uc.scopes.Authorize(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewRestaurantResponse(restaurant)
	return &out, nil
}

// List pagina los restaurantes visibles, opcionalmente de una empresa.
func (uc *RestaurantUseCase) List(ctx context.Context, caller access.Caller, q dto.RestaurantListQuery) (*dto.RestaurantListResponse, error) {
	q.DefaultPage()
	scope, err := uc.scopes.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if scope.IsEmpty() {
		return &dto.RestaurantListResponse{Items: []dto.RestaurantResponse{}, Page: dto.NewPageResponse(0, q.PageRequest)}, nil
	}
	list, total, err := uc.repo.List(ctx, repository.RestaurantFilter{
		Scope:     scope,
		CompanyID: q.CompanyID,
		Page:      repository.Page{Limit: q.Limit(), Offset: q.Offset()},
	})
	if err != nil {
		return nil, err
	}
	return &dto.RestaurantListResponse{Items: dto.NewRestaurantResponses(list), Page: dto.NewPageResponse(total, q.PageRequest)}, nil
}

// Update aplica los campos editables; company_id nunca cambia.
func (uc *RestaurantUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	restaurant, err := uc.scopes.Authorize(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := applyRestaurant(restaurant, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	out := dto.NewRestaurantResponse(restaurant)
	return &out, nil
}

// Delete desactiva el restaurante y decrementa number_of_restaurants.
func (uc *RestaurantUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	restaurant, err := uc.scopes.Authorize(ctx, caller, id)
	if err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(r repository.Repos) error {
		if err := r.Restaurants.SoftDelete(ctx, id); err != nil {
			return err
		}
		company, err := r.Companies.GetByID(ctx, restaurant.CompanyID, true)
		if err != nil {
			return err
		}
		if company.NumberOfRestaurants > 0 {
			company.NumberOfRestaurants--
		}
		company.UpdatedAt = now()
		return r.Companies.Update(ctx, company)
	})
}

func applyRestaurant(r *entity.Restaurant, in dto.UpdateRestaurantRequest) error {
	setString(&r.Name, in.Name)
	setString(&r.Email, in.Email)
	setString(&r.Phone, in.Phone)
	setString(&r.Location, in.Location)
	setString(&r.State, in.State)
	setString(&r.Zipcode, in.Zipcode)
	if r.Name == "" {
		return domain.Validation("NAME_REQUIRED", "name es obligatorio")
	}
	r.UpdatedAt = now()
	return nil
}
