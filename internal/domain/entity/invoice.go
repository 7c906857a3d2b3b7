package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice es una línea de un Expense de categoría Invoice, asociada a una SalesCategory.
type Invoice struct {
	ID              string
	UserID          string
	ExpenseID       string
	SalesCategoryID string
	Date            time.Time
	Quantity        int
	UnitPrice       decimal.Decimal
	TaxPrice        decimal.Decimal
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Total = unit_price × quantity + tax_price.
func (i *Invoice) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Add(i.TaxPrice)
}

// SumInvoices suma el total de las facturas.
func SumInvoices(invoices []*Invoice) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		sum = sum.Add(inv.Total())
	}
	return sum
}
