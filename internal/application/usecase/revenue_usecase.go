package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

// RevenueUseCase registra ventas y costo laboral por rango de fechas.
type RevenueUseCase struct {
	repo   repository.RevenueRepository
	scopes ScopeResolver
}

// NewRevenueUseCase construye el caso de uso.
func NewRevenueUseCase(repo repository.RevenueRepository, scopes ScopeResolver) *RevenueUseCase {
	return &RevenueUseCase{repo: repo, scopes: scopes}
}

// Create guarda un registro en un restaurante del alcance. beginning_date <= ending_date.
func (uc *RevenueUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateRevenueRequest) (*dto.RevenueResponse, error) {
	if _, err := uc.scopes.Authorize(ctx, caller, in.RestaurantID); err != nil {
		return nil, err
	}
	begin, err := parseDate("beginning_date", in.BeginningDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("ending_date", in.EndingDate)
	if err != nil {
		return nil, err
	}
	ts := now()
	rev := &entity.Revenue{
		ID:            uuid.New().String(),
		RestaurantID:  in.RestaurantID,
		UserID:        caller.UserID,
		CreatedBy:     caller.UserID,
		BeginningDate: begin,
		EndingDate:    end,
		TotalAmount:   in.TotalAmount,
		FOHLabour:     in.FOHLabour,
		BOHLabour:     in.BOHLabour,
		OtherLabour:   in.OtherLabour,
		FoodSale:      in.FoodSale,
		BeerSale:      in.BeerSale,
		LiquorSale:    in.LiquorSale,
		WineSale:      in.WineSale,
		BeverageSale:  in.BeverageSale,
		OtherSale:     in.OtherSale,
		TotalGuest:    in.TotalGuest,
		Notes:         in.Notes,
		IsActive:      true,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	if err := validateRevenue(rev); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, rev); err != nil {
		return nil, err
	}
	out := dto.NewRevenueResponse(rev)
	return &out, nil
}

// GetByID devuelve el registro si su restaurante está en el alcance.
func (uc *RevenueUseCase) GetByID(ctx context.Context, caller access.Caller, id string, includeInactive bool) (*dto.RevenueResponse, error) {
	rev, err := uc.get(ctx, caller, id, includeInactive)
	if err != nil {
		return nil, err
	}
	out := dto.NewRevenueResponse(rev)
	return &out, nil
}

// List pagina los registros visibles, filtrados por restaurante y rango de fechas.
func (uc *RevenueUseCase) List(ctx context.Context, caller access.Caller, q dto.RecordListQuery) (*dto.RevenueListResponse, error) {
	filter, err := recordFilter(ctx, uc.scopes, caller, &q)
	if err != nil {
		return nil, err
	}
	items := []dto.RevenueResponse{}
	if filter.Scope.IsEmpty() {
		return &dto.RevenueListResponse{Items: items, Page: dto.NewPageResponse(0, q.PageRequest)}, nil
	}
	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, r := range list {
		items = append(items, dto.NewRevenueResponse(r))
	}
	return &dto.RevenueListResponse{Items: items, Page: dto.NewPageResponse(total, q.PageRequest)}, nil
}

// Update aplica solo los campos editables.
func (uc *RevenueUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateRevenueRequest) (*dto.RevenueResponse, error) {
	rev, err := uc.get(ctx, caller, id, false)
	if err != nil {
		return nil, err
	}
	if in.BeginningDate != nil {
		if rev.BeginningDate, err = parseDate("beginning_date", *in.BeginningDate); err != nil {
			return nil, err
		}
	}
	if in.EndingDate != nil {
		if rev.EndingDate, err = parseDate("ending_date", *in.EndingDate); err != nil {
			return nil, err
		}
	}
	setDecimal(&rev.TotalAmount, in.TotalAmount)
	setDecimal(&rev.FOHLabour, in.FOHLabour)
	setDecimal(&rev.BOHLabour, in.BOHLabour)
	setDecimal(&rev.OtherLabour, in.OtherLabour)
	setDecimal(&rev.FoodSale, in.FoodSale)
	setDecimal(&rev.BeerSale, in.BeerSale)
	setDecimal(&rev.LiquorSale, in.LiquorSale)
	setDecimal(&rev.WineSale, in.WineSale)
	setDecimal(&rev.BeverageSale, in.BeverageSale)
	setDecimal(&rev.OtherSale, in.OtherSale)
	setInt(&rev.TotalGuest, in.TotalGuest)
	setString(&rev.Notes, in.Notes)
	rev.UpdatedAt = now()

	if err := validateRevenue(rev); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, rev); err != nil {
		return nil, err
	}
	out := dto.NewRevenueResponse(rev)
	return &out, nil
}

// Delete desactiva el registro (soft delete).
func (uc *RevenueUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if _, err := uc.get(ctx, caller, id, false); err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, id)
}

func (uc *RevenueUseCase) get(ctx context.Context, caller access.Caller, id string, includeInactive bool) (*entity.Revenue, error) {
	rev, err := uc.repo.GetByID(ctx, id, includeInactive)
	if err != nil {
		return nil, err
	}
	if err := checkScope(ctx, uc.scopes, caller, rev.RestaurantID); err != nil {
		return nil, err
	}
	return rev, nil
}

func validateRevenue(r *entity.Revenue) error {
	if r.BeginningDate.After(r.EndingDate) {
		return domain.Validation("INVALID_DATE_RANGE", "beginning_date no puede ser posterior a ending_date")
	}
	if err := nonNegative(r.Amounts()); err != nil {
		return err
	}
	return nonNegativeInt("total_guest", r.TotalGuest)
}
