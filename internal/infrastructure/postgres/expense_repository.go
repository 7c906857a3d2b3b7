package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

const expenseColumns = `id, restaurant_id, user_id, category, vendor_name, invoice_number, date, amount, description, is_active, created_at, updated_at`

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var x entity.Expense
	err := row.Scan(&x.ID, &x.RestaurantID, &x.UserID, &x.Category, &x.VendorName, &x.InvoiceNumber,
		&x.Date, &x.Amount, &x.Description, &x.IsActive, &x.CreatedAt, &x.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

// Create persiste un gasto (sin sus facturas).
func (r *ExpenseRepo) Create(ctx context.Context, x *entity.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		x.ID, x.RestaurantID, x.UserID, x.Category, x.VendorName, x.InvoiceNumber,
		x.Date, x.Amount, x.Description, x.IsActive, x.CreatedAt, x.UpdatedAt,
	)
	return mapErr(err, nil, domain.ErrConflict, "insert expense")
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string, includeInactive bool) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1` + activeClause(includeInactive)
	x, err := scanExpense(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapErr(err, domain.ErrExpenseNotFound, nil, "get expense")
	}
	return x, nil
}

// Update actualiza los campos editables de un gasto activo.
func (r *ExpenseRepo) Update(ctx context.Context, x *entity.Expense) error {
	query := `
		UPDATE expenses SET category = $2, vendor_name = $3, invoice_number = $4, date = $5,
			amount = $6, description = $7, updated_at = $8
		WHERE id = $1 AND is_active = TRUE`
	tag, err := r.q.Exec(ctx, query,
		x.ID, x.Category, x.VendorName, x.InvoiceNumber, x.Date, x.Amount, x.Description, x.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return expectOne(tag, domain.ErrExpenseNotFound)
}

// SoftDelete marca el gasto como inactivo.
func (r *ExpenseRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE expenses SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return expectOne(tag, domain.ErrExpenseNotFound)
}

// List lista gastos activos del alcance ordenados por date DESC.
func (r *ExpenseRepo) List(ctx context.Context, fl repository.RecordFilter) ([]*entity.Expense, int, error) {
	f := &filter{}
	f.where("is_active = TRUE")
	f.scope("restaurant_id", fl.Scope)
	f.dateRange("date", fl.Range)
	if fl.Category != "" {
		f.where("category = " + f.arg(fl.Category))
	}
	total, err := count(ctx, r.q, "expenses", f)
	if err != nil {
		return nil, 0, fmt.Errorf("count expenses: %w", err)
	}
	query := `SELECT ` + expenseColumns + ` FROM expenses` + f.clause() + ` ORDER BY date DESC, created_at DESC` + f.page(fl.Page)
	rows, err := r.q.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		x, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, x)
	}
	return list, total, rows.Err()
}
