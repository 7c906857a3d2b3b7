package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

// Querier es lo común entre *pgxpool.Pool y pgx.Tx; los repos funcionan igual dentro y fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgCode devuelve el SQLSTATE de err o "" si no es un error del servidor.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	if code := pgCode(err); code != "" {
		return code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// mapErr traduce errores de pgx a errores de dominio: sin filas → NotFound, 23505 → Conflict,
// 22P02 (texto que no es un UUID) → Validation.
func mapErr(err error, notFound, conflict error, op string) error {
	switch {
	case err == nil:
		return nil
	case isNoRows(err) && notFound != nil:
		return notFound
	case isUniqueViolation(err) && conflict != nil:
		return conflict
	case pgCode(err) == "22P02": // invalid_text_representation
		return domain.ErrInvalidID
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// expectOne devuelve notFound cuando el UPDATE no tocó ninguna fila.
func expectOne(tag pgconn.CommandTag, notFound error) error {
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// filter arma cláusulas WHERE con placeholders posicionales.
type filter struct {
	conds []string
	args  []any
}

func (f *filter) arg(v any) string {
	f.args = append(f.args, v)
	return fmt.Sprintf("$%d", len(f.args))
}

func (f *filter) where(cond string) {
	f.conds = append(f.conds, cond)
}

// scope restringe col a los restaurantes del alcance; alcance total no agrega condición.
func (f *filter) scope(col string, s access.Scope) {
	if s.IsAll() {
		return
	}
	f.where(col + " = ANY(" + f.arg(s.IDs()) + "::uuid[])")
}

func (f *filter) dateRange(col string, r repository.DateRange) {
	if r.From != nil {
		f.where(col + " >= " + f.arg(*r.From))
	}
	if r.To != nil {
		f.where(col + " <= " + f.arg(*r.To))
	}
}

func (f *filter) clause() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// page agrega LIMIT/OFFSET; Limit <= 0 no limita.
func (f *filter) page(p repository.Page) string {
	out := ""
	if p.Limit > 0 {
		out += " LIMIT " + f.arg(p.Limit)
	}
	if p.Offset > 0 {
		out += " OFFSET " + f.arg(p.Offset)
	}
	return out
}

// count ejecuta SELECT COUNT(*) con los filtros acumulados (antes de page).
func count(ctx context.Context, q Querier, table string, f *filter) (int, error) {
	var n int
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM "+table+f.clause(), f.args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func activeClause(includeInactive bool) string {
	if includeInactive {
		return ""
	}
	return " AND is_active = TRUE"
}
