package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

const revenueColumns = `id, restaurant_id, user_id, created_by, beginning_date, ending_date, total_amount,
	foh_labour, boh_labour, other_labour, food_sale, beer_sale, liquor_sale, wine_sale, beverage_sale, other_sale,
	total_guest, notes, is_active, created_at, updated_at`

// RevenueRepo implementación del puerto RevenueRepository sobre PostgreSQL.
type RevenueRepo struct {
	q Querier
}

// NewRevenueRepository construye el adaptador de persistencia para ingresos.
func NewRevenueRepository(q Querier) *RevenueRepo {
	return &RevenueRepo{q: q}
}

func scanRevenue(row pgx.Row) (*entity.Revenue, error) {
	var x entity.Revenue
	err := row.Scan(&x.ID, &x.RestaurantID, &x.UserID, &x.CreatedBy, &x.BeginningDate, &x.EndingDate, &x.TotalAmount,
		&x.FOHLabour, &x.BOHLabour, &x.OtherLabour, &x.FoodSale, &x.BeerSale, &x.LiquorSale, &x.WineSale,
		&x.BeverageSale, &x.OtherSale, &x.TotalGuest, &x.Notes, &x.IsActive, &x.CreatedAt, &x.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

// Create persiste un ingreso.
func (r *RevenueRepo) Create(ctx context.Context, x *entity.Revenue) error {
	query := `
		INSERT INTO revenues (` + revenueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(ctx, query,
		x.ID, x.RestaurantID, x.UserID, x.CreatedBy, x.BeginningDate, x.EndingDate, x.TotalAmount,
		x.FOHLabour, x.BOHLabour, x.OtherLabour, x.FoodSale, x.BeerSale, x.LiquorSale, x.WineSale,
		x.BeverageSale, x.OtherSale, x.TotalGuest, x.Notes, x.IsActive, x.CreatedAt, x.UpdatedAt,
	)
	return mapErr(err, nil, domain.ErrConflict, "insert revenue")
}

// GetByID obtiene un ingreso por ID.
func (r *RevenueRepo) GetByID(ctx context.Context, id string, includeInactive bool) (*entity.Revenue, error) {
	query := `SELECT ` + revenueColumns + ` FROM revenues WHERE id = $1` + activeClause(includeInactive)
	x, err := scanRevenue(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapErr(err, domain.ErrRevenueNotFound, nil, "get revenue")
	}
	return x, nil
}

// Update actualiza los campos editables de un ingreso activo.
func (r *RevenueRepo) Update(ctx context.Context, x *entity.Revenue) error {
	query := `
		UPDATE revenues SET beginning_date = $2, ending_date = $3, total_amount = $4,
			foh_labour = $5, boh_labour = $6, other_labour = $7, food_sale = $8, beer_sale = $9,
			liquor_sale = $10, wine_sale = $11, beverage_sale = $12, other_sale = $13,
			total_guest = $14, notes = $15, updated_at = $16
		WHERE id = $1 AND is_active = TRUE`
	tag, err := r.q.Exec(ctx, query,
		x.ID, x.BeginningDate, x.EndingDate, x.TotalAmount,
		x.FOHLabour, x.BOHLabour, x.OtherLabour, x.FoodSale, x.BeerSale,
		x.LiquorSale, x.WineSale, x.BeverageSale, x.OtherSale,
		x.TotalGuest, x.Notes, x.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update revenue: %w", err)
	}
	return expectOne(tag, domain.ErrRevenueNotFound)
}

// SoftDelete marca el ingreso como inactivo.
func (r *RevenueRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE revenues SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return fmt.Errorf("delete revenue: %w", err)
	}
	return expectOne(tag, domain.ErrRevenueNotFound)
}

// List lista ingresos activos del alcance, más recientes primero.
func (r *RevenueRepo) List(ctx context.Context, fl repository.RecordFilter) ([]*entity.Revenue, int, error) {
	f := &filter{}
	f.where("is_active = TRUE")
	f.scope("restaurant_id", fl.Scope)
	f.dateRange("beginning_date", fl.Range)
	total, err := count(ctx, r.q, "revenues", f)
	if err != nil {
		return nil, 0, fmt.Errorf("count revenues: %w", err)
	}
	query := `SELECT ` + revenueColumns + ` FROM revenues` + f.clause() +
		` ORDER BY beginning_date DESC, created_at DESC` + f.page(fl.Page)
	rows, err := r.q.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list revenues: %w", err)
	}
	defer rows.Close()
	var list []*entity.Revenue
	for rows.Next() {
		x, err := scanRevenue(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan revenue: %w", err)
		}
		list = append(list, x)
	}
	return list, total, rows.Err()
}
