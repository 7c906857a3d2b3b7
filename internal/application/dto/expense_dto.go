package dto

import (
	"bytes"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// AmountMap categoría de venta → monto. Acepta un objeto JSON o un string que contiene el objeto.
type AmountMap map[string]decimal.Decimal

// UnmarshalJSON implementa json.Unmarshaler.
func (m *AmountMap) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = nil
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			*m = nil
			return nil
		}
		data = []byte(raw)
	}
	var out map[string]decimal.Decimal
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("amounts: %w", err)
	}
	*m = out
	return nil
}

// Total suma todos los montos.
func (m AmountMap) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range m {
		sum = sum.Add(v)
	}
	return sum
}

// CreateExpenseRequest body para POST /expense.
// Con category=Invoice, Amounts genera una factura por categoría y el monto se recalcula.
// SalaryAmount, si viene, reemplaza a Amount.
type CreateExpenseRequest struct {
	RestaurantID  string           `json:"restaurant_id" validate:"required,uuid"`
	Category      string           `json:"category" validate:"required,max=100"`
	VendorName    string           `json:"vendor_name" validate:"omitempty,max=200"`
	InvoiceNumber string           `json:"invoice_number" validate:"omitempty,max=100"`
	Date          string           `json:"date" validate:"required,datetime=2006-01-02"`
	Amount        decimal.Decimal  `json:"amount"`
	SalaryAmount  *decimal.Decimal `json:"salary_amount"`
	Description   string           `json:"description" validate:"omitempty,max=2000"`
	Amounts       AmountMap        `json:"amounts"`
}

// UpdateExpenseRequest campos editables; con Amounts en un gasto Invoice se regeneran las facturas.
type UpdateExpenseRequest struct {
	Category      *string          `json:"category" validate:"omitempty,min=1,max=100"`
	VendorName    *string          `json:"vendor_name" validate:"omitempty,max=200"`
	InvoiceNumber *string          `json:"invoice_number" validate:"omitempty,max=100"`
	Date          *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount        *decimal.Decimal `json:"amount"`
	SalaryAmount  *decimal.Decimal `json:"salary_amount"`
	Description   *string          `json:"description" validate:"omitempty,max=2000"`
	Amounts       AmountMap        `json:"amounts"`
}

// InvoiceResponse línea de un gasto Invoice.
type InvoiceResponse struct {
	ID              string          `json:"id"`
	SalesCategoryID string          `json:"sales_category_id"`
	Date            string          `json:"date"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TaxPrice        decimal.Decimal `json:"tax_price"`
	Total           decimal.Decimal `json:"total"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID            string            `json:"id"`
	RestaurantID  string            `json:"restaurant_id"`
	UserID        string            `json:"user_id"`
	Category      string            `json:"category"`
	VendorName    string            `json:"vendor_name"`
	InvoiceNumber string            `json:"invoice_number"`
	Date          string            `json:"date"`
	Amount        decimal.Decimal   `json:"amount"`
	Description   string            `json:"description"`
	IsActive      bool              `json:"is_active"`
	Invoices      []InvoiceResponse `json:"invoices,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ExpenseListResponse lista paginada de gastos.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
