package repository

import (
	"context"

	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para Expense. List ordena por date DESC.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id string, includeInactive bool) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter RecordFilter) ([]*entity.Expense, int, error)
}

// InvoiceRepository define el puerto para las líneas de un Expense de categoría Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	ListByExpense(ctx context.Context, expenseID string) ([]*entity.Invoice, error)
	DeactivateByExpense(ctx context.Context, expenseID string) error
}
