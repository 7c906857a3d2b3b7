package repository

import (
	"context"

	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

// RevenueRepository define el puerto de persistencia para Revenue. List ordena por beginning_date DESC.
type RevenueRepository interface {
	Create(ctx context.Context, revenue *entity.Revenue) error
	GetByID(ctx context.Context, id string, includeInactive bool) (*entity.Revenue, error)
	Update(ctx context.Context, revenue *entity.Revenue) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter RecordFilter) ([]*entity.Revenue, int, error)
}
