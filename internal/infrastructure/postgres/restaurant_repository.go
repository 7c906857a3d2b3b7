package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

const restaurantColumns = `id, company_id, name, email, phone, location, state, zipcode, is_active, created_at, updated_at`

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL.
type RestaurantRepo struct {
	q Querier
}

// NewRestaurantRepository construye el adaptador de persistencia para restaurantes.
func NewRestaurantRepository(q Querier) *RestaurantRepo {
	return &RestaurantRepo{q: q}
}

func scanRestaurant(row pgx.Row) (*entity.Restaurant, error) {
	var x entity.Restaurant
	err := row.Scan(&x.ID, &x.CompanyID, &x.Name, &x.Email, &x.Phone, &x.Location,
		&x.State, &x.Zipcode, &x.IsActive, &x.CreatedAt, &x.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

// Create persiste un restaurante.
func (r *RestaurantRepo) Create(ctx context.Context, x *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (` + restaurantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		x.ID, x.CompanyID, x.Name, x.Email, x.Phone, x.Location, x.State, x.Zipcode,
		x.IsActive, x.CreatedAt, x.UpdatedAt,
	)
	return mapErr(err, nil, domain.ErrConflict, "insert restaurant")
}

// GetByID obtiene un restaurante por ID.
func (r *RestaurantRepo) GetByID(ctx context.Context, id string, includeInactive bool) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1` + activeClause(includeInactive)
	x, err := scanRestaurant(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapErr(err, domain.ErrRestaurantNotFound, nil, "get restaurant")
	}
	return x, nil
}

// Update actualiza los datos básicos; company_id no se toca.
func (r *RestaurantRepo) Update(ctx context.Context, x *entity.Restaurant) error {
	query := `
		UPDATE restaurants SET name = $2, email = $3, phone = $4, location = $5, state = $6, zipcode = $7, updated_at = $8
		WHERE id = $1 AND is_active = TRUE`
	tag, err := r.q.Exec(ctx, query, x.ID, x.Name, x.Email, x.Phone, x.Location, x.State, x.Zipcode, x.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	return expectOne(tag, domain.ErrRestaurantNotFound)
}

// SoftDelete marca el restaurante como inactivo.
func (r *RestaurantRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE restaurants SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	return expectOne(tag, domain.ErrRestaurantNotFound)
}

// List lista restaurantes activos del alcance ordenados por nombre.
func (r *RestaurantRepo) List(ctx context.Context, fl repository.RestaurantFilter) ([]*entity.Restaurant, int, error) {
	f := &filter{}
	f.where("is_active = TRUE")
	f.scope("id", fl.Scope)
	if fl.CompanyID != "" {
		f.where("company_id = " + f.arg(fl.CompanyID))
	}
	total, err := count(ctx, r.q, "restaurants", f)
	if err != nil {
		return nil, 0, fmt.Errorf("count restaurants: %w", err)
	}
	query := `SELECT ` + restaurantColumns + ` FROM restaurants` + f.clause() + ` ORDER BY name, id` + f.page(fl.Page)
	rows, err := r.q.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Restaurant
	for rows.Next() {
		x, err := scanRestaurant(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan restaurant: %w", err)
		}
		list = append(list, x)
	}
	return list, total, rows.Err()
}

// ListIDsByCompany devuelve los ids de restaurantes activos de una empresa.
func (r *RestaurantRepo) ListIDsByCompany(ctx context.Context, companyID string) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM restaurants WHERE company_id = $1 AND is_active = TRUE ORDER BY id`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list restaurant ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan restaurant ids: %w", err)
	}
	return ids, nil
}
