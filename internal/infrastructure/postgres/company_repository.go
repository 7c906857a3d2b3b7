package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, email, phone, location, number_of_restaurants, is_onboarded, is_active, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Location, c.NumberOfRestaurants,
		c.IsOnboarded, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	return mapErr(err, nil, domain.Conflict("COMPANY_EXISTS", "la empresa ya existe"), "insert company")
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string, includeInactive bool) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1` + activeClause(includeInactive)
	var c entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Location, &c.NumberOfRestaurants,
		&c.IsOnboarded, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(err, domain.ErrCompanyNotFound, nil, "get company")
	}
	return &c, nil
}

// Update actualiza una empresa activa.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, email = $3, phone = $4, location = $5,
			number_of_restaurants = $6, is_onboarded = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Location, c.NumberOfRestaurants,
		c.IsOnboarded, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return expectOne(tag, domain.ErrCompanyNotFound)
}

// SoftDelete marca la empresa como inactiva.
func (r *CompanyRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE companies SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return expectOne(tag, domain.ErrCompanyNotFound)
}

// List lista empresas activas, más recientes primero.
func (r *CompanyRepo) List(ctx context.Context, fl repository.CompanyFilter) ([]*entity.Company, int, error) {
	f := &filter{}
	f.where("is_active = TRUE")
	if fl.Onboarded != nil {
		f.where("is_onboarded = " + f.arg(*fl.Onboarded))
	}
	total, err := count(ctx, r.q, "companies", f)
	if err != nil {
		return nil, 0, fmt.Errorf("count companies: %w", err)
	}
	query := `SELECT ` + companyColumns + ` FROM companies` + f.clause() + ` ORDER BY created_at DESC` + f.page(fl.Page)
	rows, err := r.q.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.Location, &c.NumberOfRestaurants,
			&c.IsOnboarded, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}
