package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo persiste las líneas de factura de un gasto.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador de facturas.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create inserta una línea de factura.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, user_id, expense_id, sales_category_id, date, quantity, unit_price, tax_price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.UserID, inv.ExpenseID, inv.SalesCategoryID, inv.Date, inv.Quantity,
		inv.UnitPrice, inv.TaxPrice, inv.IsActive, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// ListByExpense devuelve las facturas activas del gasto.
func (r *InvoiceRepo) ListByExpense(ctx context.Context, expenseID string) ([]*entity.Invoice, error) {
	query := `
		SELECT id, user_id, expense_id, sales_category_id, date, quantity, unit_price, tax_price, is_active, created_at, updated_at
		FROM invoices WHERE expense_id = $1 AND is_active = TRUE ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.UserID, &inv.ExpenseID, &inv.SalesCategoryID, &inv.Date, &inv.Quantity,
			&inv.UnitPrice, &inv.TaxPrice, &inv.IsActive, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// DeactivateByExpense da de baja todas las facturas del gasto.
func (r *InvoiceRepo) DeactivateByExpense(ctx context.Context, expenseID string) error {
	_, err := r.q.Exec(ctx, `UPDATE invoices SET is_active = FALSE, updated_at = NOW() WHERE expense_id = $1 AND is_active = TRUE`, expenseID)
	if err != nil {
		return fmt.Errorf("deactivate invoices: %w", err)
	}
	return nil
}
