package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategoryInvoice es la categoría de gasto que se desglosa en facturas por categoría de venta.
const ExpenseCategoryInvoice = "Invoice"

// Expense es un gasto de un restaurante en una fecha.
type Expense struct {
	ID            string
	RestaurantID  string
	UserID        string
	Category      string
	VendorName    string
	InvoiceNumber string
	Date          time.Time
	Amount        decimal.Decimal
	Description   string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Invoices []*Invoice // solo para category=Invoice
}

// IsInvoice indica si el gasto se compone de facturas.
func (e *Expense) IsInvoice() bool {
	return e.Category == ExpenseCategoryInvoice
}
