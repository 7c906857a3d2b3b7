package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

var (
	_ repository.SalesCategoryRepository = (*SalesCategoryRepo)(nil)
	_ repository.ForecastRepository      = (*ForecastRepo)(nil)
	_ repository.TargetRepository        = (*TargetRepo)(nil)
	_ repository.PosRepository           = (*PosRepo)(nil)
)

// ── SalesCategory ────────────────────────────────────────────────────────────

// SalesCategoryRepo persiste categorías de venta por restaurante.
type SalesCategoryRepo struct {
	q Querier
}

// NewSalesCategoryRepository construye el adaptador de categorías.
func NewSalesCategoryRepository(q Querier) *SalesCategoryRepo {
	return &SalesCategoryRepo{q: q}
}

// Create inserta una categoría; (restaurant_id, LOWER(name)) es único.
func (r *SalesCategoryRepo) Create(ctx context.Context, c *entity.SalesCategory) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sales_categories (id, restaurant_id, name, is_active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.RestaurantID, c.Name, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	return mapErr(err, nil, domain.Conflict("SALES_CATEGORY_EXISTS", "la categoría ya existe"), "insert sales category")
}

// GetByName busca una categoría del restaurante sin distinguir mayúsculas.
func (r *SalesCategoryRepo) GetByName(ctx context.Context, restaurantID, name string) (*entity.SalesCategory, error) {
	var c entity.SalesCategory
	err := r.q.QueryRow(ctx,
		`SELECT id, restaurant_id, name, is_active, created_at, updated_at
		 FROM sales_categories WHERE restaurant_id = $1 AND LOWER(name) = LOWER($2)`,
		restaurantID, name,
	).Scan(&c.ID, &c.RestaurantID, &c.Name, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, mapErr(err, domain.ErrSalesCategoryNotFound, nil, "get sales category")
	}
	return &c, nil
}

// ListByRestaurant lista las categorías activas del restaurante.
func (r *SalesCategoryRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.SalesCategory, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, restaurant_id, name, is_active, created_at, updated_at
		 FROM sales_categories WHERE restaurant_id = $1 AND is_active = TRUE ORDER BY name`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list sales categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesCategory
	for rows.Next() {
		var c entity.SalesCategory
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sales category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ── Forecast ─────────────────────────────────────────────────────────────────

// ForecastRepo persiste proyecciones mensuales.
type ForecastRepo struct {
	q Querier
}

// NewForecastRepository construye el adaptador de proyecciones.
func NewForecastRepository(q Querier) *ForecastRepo {
	return &ForecastRepo{q: q}
}

// Upsert inserta o actualiza el monto del mes.
func (r *ForecastRepo) Upsert(ctx context.Context, f *entity.Forecast) error {
	query := `
		INSERT INTO forecasts (id, restaurant_id, year, month, amount, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6, $7)
		ON CONFLICT (restaurant_id, year, month)
		DO UPDATE SET amount = EXCLUDED.amount, is_active = TRUE, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, f.ID, f.RestaurantID, f.Year, f.Month, f.Amount, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert forecast: %w", err)
	}
	return nil
}

// ListByRestaurant lista las proyecciones activas del año ordenadas por mes.
func (r *ForecastRepo) ListByRestaurant(ctx context.Context, restaurantID string, year int) ([]*entity.Forecast, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, restaurant_id, year, month, amount, is_active, created_at, updated_at
		 FROM forecasts WHERE restaurant_id = $1 AND year = $2 AND is_active = TRUE ORDER BY month`,
		restaurantID, year)
	if err != nil {
		return nil, fmt.Errorf("list forecasts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Forecast
	for rows.Next() {
		var f entity.Forecast
		if err := rows.Scan(&f.ID, &f.RestaurantID, &f.Year, &f.Month, &f.Amount, &f.IsActive, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan forecast: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// ── Target ───────────────────────────────────────────────────────────────────

const targetColumns = `id, restaurant_id, year, month, overall_labor_target, foh_target, boh_target,
	foh_combined_salaried, boh_combined_salaried, other_combined_salaried, includes_salaries,
	cogs_target, food, pastry, beer, wine, liquor, na_bev, smallwares, others, prime_percentage,
	is_active, created_at, updated_at`

// TargetRepo persiste objetivos mensuales.
type TargetRepo struct {
	q Querier
}

// NewTargetRepository construye el adaptador de objetivos.
func NewTargetRepository(q Querier) *TargetRepo {
	return &TargetRepo{q: q}
}

// Upsert inserta o reemplaza el objetivo del mes.
func (r *TargetRepo) Upsert(ctx context.Context, t *entity.Target) error {
	query := `
		INSERT INTO targets (` + targetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, TRUE, $22, $23)
		ON CONFLICT (restaurant_id, year, month) DO UPDATE SET
			overall_labor_target = EXCLUDED.overall_labor_target, foh_target = EXCLUDED.foh_target,
			boh_target = EXCLUDED.boh_target, foh_combined_salaried = EXCLUDED.foh_combined_salaried,
			boh_combined_salaried = EXCLUDED.boh_combined_salaried, other_combined_salaried = EXCLUDED.other_combined_salaried,
			includes_salaries = EXCLUDED.includes_salaries, cogs_target = EXCLUDED.cogs_target,
			food = EXCLUDED.food, pastry = EXCLUDED.pastry, beer = EXCLUDED.beer, wine = EXCLUDED.wine,
			liquor = EXCLUDED.liquor, na_bev = EXCLUDED.na_bev, smallwares = EXCLUDED.smallwares,
			others = EXCLUDED.others, prime_percentage = EXCLUDED.prime_percentage,
			is_active = TRUE, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.RestaurantID, t.Year, t.Month, t.OverallLaborTarget, t.FOHTarget, t.BOHTarget,
		t.FOHCombinedSalaried, t.BOHCombinedSalaried, t.OtherCombinedSalaried, t.IncludesSalaries,
		t.COGSTarget, t.Food, t.Pastry, t.Beer, t.Wine, t.Liquor, t.NABev, t.Smallwares, t.Others, t.PrimePercentage,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert target: %w", err)
	}
	return nil
}

// Get obtiene el objetivo activo del mes.
func (r *TargetRepo) Get(ctx context.Context, restaurantID string, year, month int) (*entity.Target, error) {
	var t entity.Target
	err := r.q.QueryRow(ctx,
		`SELECT `+targetColumns+` FROM targets WHERE restaurant_id = $1 AND year = $2 AND month = $3 AND is_active = TRUE`,
		restaurantID, year, month,
	).Scan(&t.ID, &t.RestaurantID, &t.Year, &t.Month, &t.OverallLaborTarget, &t.FOHTarget, &t.BOHTarget,
		&t.FOHCombinedSalaried, &t.BOHCombinedSalaried, &t.OtherCombinedSalaried, &t.IncludesSalaries,
		&t.COGSTarget, &t.Food, &t.Pastry, &t.Beer, &t.Wine, &t.Liquor, &t.NABev, &t.Smallwares, &t.Others, &t.PrimePercentage,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, mapErr(err, domain.ErrTargetNotFound, nil, "get target")
	}
	return &t, nil
}

// ── Pos ──────────────────────────────────────────────────────────────────────

// PosRepo persiste la integración POS.
type PosRepo struct {
	q Querier
}

// NewPosRepository construye el adaptador POS.
func NewPosRepository(q Querier) *PosRepo {
	return &PosRepo{q: q}
}

// Upsert inserta o reemplaza la integración del restaurante; credential se guarda como JSONB.
func (r *PosRepo) Upsert(ctx context.Context, p *entity.Pos) error {
	cred := p.Credential
	if cred == nil {
		cred = map[string]any{}
	}
	query := `
		INSERT INTO pos (id, restaurant_id, uses_toast_pos, platform, ssh_data_exports_enabled, need_help_enabling_exports,
			credential, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, $8, $9)
		ON CONFLICT (restaurant_id) DO UPDATE SET
			uses_toast_pos = EXCLUDED.uses_toast_pos, platform = EXCLUDED.platform,
			ssh_data_exports_enabled = EXCLUDED.ssh_data_exports_enabled,
			need_help_enabling_exports = EXCLUDED.need_help_enabling_exports,
			credential = EXCLUDED.credential, is_active = TRUE, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, p.ID, p.RestaurantID, p.UsesToastPos, p.Platform,
		p.SSHDataExportsEnabled, p.NeedHelpEnablingExports, cred, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert pos: %w", err)
	}
	return nil
}

// GetByRestaurant obtiene la integración activa del restaurante.
func (r *PosRepo) GetByRestaurant(ctx context.Context, restaurantID string) (*entity.Pos, error) {
	var p entity.Pos
	err := r.q.QueryRow(ctx,
		`SELECT id, restaurant_id, uses_toast_pos, platform, ssh_data_exports_enabled, need_help_enabling_exports,
			credential, is_active, created_at, updated_at
		 FROM pos WHERE restaurant_id = $1 AND is_active = TRUE`, restaurantID,
	).Scan(&p.ID, &p.RestaurantID, &p.UsesToastPos, &p.Platform, &p.SSHDataExportsEnabled,
		&p.NeedHelpEnablingExports, &p.Credential, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, mapErr(err, domain.ErrPosNotFound, nil, "get pos")
	}
	return &p, nil
}
