package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.UserRestaurantRepository = (*UserRestaurantRepo)(nil)

const userColumns = `id, first_name, last_name, email, password_hash, phone, role, company_id, is_active, is_blocked, last_login, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Phone, &u.Role,
		&u.CompanyID, &u.IsActive, &u.IsBlocked, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. El índice único sobre LOWER(email) es la autoridad final.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Phone, u.Role,
		u.CompanyID, u.IsActive, u.IsBlocked, u.LastLogin, u.CreatedAt, u.UpdatedAt,
	)
	return mapErr(err, nil, domain.ErrEmailAlreadyExists, "insert user")
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string, includeInactive bool) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1` + activeClause(includeInactive)
	u, err := scanUser(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapErr(err, domain.ErrUserNotFound, nil, "get user by id")
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email sin distinguir mayúsculas.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) LIMIT 1`
	u, err := scanUser(r.q.QueryRow(ctx, query, email))
	if err != nil {
		return nil, mapErr(err, domain.ErrUserNotFound, nil, "get user by email")
	}
	return u, nil
}

// Update actualiza un usuario; el email duplicado se traduce a Conflict.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users SET first_name = $2, last_name = $3, email = $4, password_hash = $5, phone = $6, role = $7,
			is_active = $8, is_blocked = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Phone, u.Role,
		u.IsActive, u.IsBlocked, u.UpdatedAt,
	)
	if err != nil {
		return mapErr(err, nil, domain.ErrEmailAlreadyExists, "update user")
	}
	return expectOne(tag, domain.ErrUserNotFound)
}

// SoftDelete marca el usuario como inactivo.
func (r *UserRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE users SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return expectOne(tag, domain.ErrUserNotFound)
}

// List lista usuarios activos con paginación.
func (r *UserRepo) List(ctx context.Context, fl repository.UserFilter) ([]*entity.User, int, error) {
	f := &filter{}
	f.where("is_active = TRUE")
	if fl.CompanyID != "" {
		f.where("company_id = " + f.arg(fl.CompanyID))
	}
	if fl.Role != "" {
		f.where("role = " + f.arg(fl.Role))
	}
	total, err := count(ctx, r.q, "users", f)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	query := `SELECT ` + userColumns + ` FROM users` + f.clause() + ` ORDER BY created_at DESC` + f.page(fl.Page)
	rows, err := r.q.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, total, rows.Err()
}

// TouchLastLogin registra la fecha del último login.
func (r *UserRepo) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

// UserRestaurantRepo persiste las asignaciones usuario-restaurante.
type UserRestaurantRepo struct {
	q Querier
}

// NewUserRestaurantRepository construye el adaptador de asignaciones.
func NewUserRestaurantRepository(q Querier) *UserRestaurantRepo {
	return &UserRestaurantRepo{q: q}
}

// Link agrega asignaciones; las ya existentes se ignoran.
func (r *UserRestaurantRepo) Link(ctx context.Context, userID string, restaurantIDs []string) error {
	if len(restaurantIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO user_restaurants (user_id, restaurant_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT (user_id, restaurant_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, query, userID, restaurantIDs); err != nil {
		return fmt.Errorf("link user restaurants: %w", err)
	}
	return nil
}

// ListRestaurantIDs devuelve los restaurantes activos asignados al usuario.
func (r *UserRestaurantRepo) ListRestaurantIDs(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT ur.restaurant_id
		FROM user_restaurants ur
		JOIN restaurants rs ON rs.id = ur.restaurant_id AND rs.is_active = TRUE
		WHERE ur.user_id = $1
		ORDER BY ur.restaurant_id`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user restaurants: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan user restaurants: %w", err)
	}
	return ids, nil
}

// Replace reemplaza el conjunto de asignaciones del usuario.
func (r *UserRestaurantRepo) Replace(ctx context.Context, userID string, restaurantIDs []string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM user_restaurants WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear user restaurants: %w", err)
	}
	return r.Link(ctx, userID, restaurantIDs)
}
