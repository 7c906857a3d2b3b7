// Package repository define los puertos de persistencia (DIP); las implementaciones viven en infrastructure.
package repository

import (
	"context"
	"time"

	"github.com/jhoicas/bluebook-api/internal/domain/access"
)

// Page limita un listado. Limit <= 0 significa sin límite.
type Page struct {
	Limit  int
	Offset int
}

// DateRange filtra por fecha; ambos extremos inclusivos. nil = sin límite de ese lado.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero indica que no hay filtro de fechas.
func (d DateRange) IsZero() bool { return d.From == nil && d.To == nil }

// RecordFilter filtra los registros dependientes de restaurante (revenue, expense, blue book).
// Scope ya viene intersectado con los restaurant_id pedidos.
type RecordFilter struct {
	Scope    access.Scope
	Range    DateRange
	Category string // solo expense
	Page     Page
}

// Repos agrupa los repositorios atados a una misma transacción.
type Repos struct {
	Companies       CompanyRepository
	Restaurants     RestaurantRepository
	Users           UserRepository
	UserRestaurants UserRestaurantRepository
	Revenues        RevenueRepository
	Expenses        ExpenseRepository
	Invoices        InvoiceRepository
	BlueBooks       BlueBookRepository
	SalesCategories SalesCategoryRepository
	Forecasts       ForecastRepository
	Targets         TargetRepository
	Pos             PosRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}
