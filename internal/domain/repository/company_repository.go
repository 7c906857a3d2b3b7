package repository

import (
	"context"

	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

// CompanyFilter filtra el listado de empresas activas. Onboarded nil = todas.
type CompanyFilter struct {
	Onboarded *bool
	Page      Page
}

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string, includeInactive bool) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter CompanyFilter) ([]*entity.Company, int, error)
}
