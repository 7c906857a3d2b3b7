package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
	"github.com/jhoicas/bluebook-api/pkg/logger"
)

// ExpenseUseCase registra gastos. Un gasto de categoría Invoice se desglosa en una factura
// por categoría de venta y su monto es la suma de las facturas.
type ExpenseUseCase struct {
	repo     repository.ExpenseRepository
	invoices repository.InvoiceRepository
	tx       repository.TxRunner
	scopes   ScopeResolver
	log      *logger.Logger
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(
	repo repository.ExpenseRepository,
	invoices repository.InvoiceRepository,
	tx repository.TxRunner,
	scopes ScopeResolver,
	log *logger.Logger,
) *ExpenseUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ExpenseUseCase{repo: repo, invoices: invoices, tx: tx, scopes: scopes, log: log.Named("expense")}
}

// Create guarda el gasto y, si es Invoice, sus facturas en la misma transacción.
func (uc *ExpenseUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if _, err := uc.scopes.Authorize(ctx, caller, in.RestaurantID); err != nil {
		return nil, err
	}
	date, err := parseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	if err := validateAmounts(in.Amounts); err != nil {
		return nil, err
	}
	ts := now()
	exp := &entity.Expense{
		ID:            uuid.New().String(),
		RestaurantID:  in.RestaurantID,
		UserID:        caller.UserID,
		Category:      normalizeCategory(in.Category),
		VendorName:    strings.TrimSpace(in.VendorName),
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		Date:          date,
		Amount:        resolveAmount(in.Amount, in.SalaryAmount, in.Amounts),
		Description:   in.Description,
		IsActive:      true,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	if exp.Category == "" {
		return nil, domain.Validation("CATEGORY_REQUIRED", "category es obligatorio")
	}
	if err := nonNegative(map[string]decimal.Decimal{"amount": exp.Amount}); err != nil {
		return nil, err
	}

	err = uc.tx.Run(ctx, func(r repository.Repos) error {
		if err := r.Expenses.Create(ctx, exp); err != nil {
			return err
		}
		if !exp.IsInvoice() || len(in.Amounts) == 0 {
			return nil
		}
		invoices, err := writeInvoices(ctx, r, exp, caller.UserID, in.Amounts)
		if err != nil {
			return err
		}
		exp.Invoices = invoices
		exp.Amount = entity.SumInvoices(invoices)
		return r.Expenses.Update(ctx, exp)
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("restaurant_id", in.RestaurantID).Msg("alta de gasto revertida")
		return nil, err
	}
	out := dto.NewExpenseResponse(exp)
	return &out, nil
}

// GetByID devuelve el gasto con sus facturas activas.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, caller access.Caller, id string, includeInactive bool) (*dto.ExpenseResponse, error) {
	exp, err := uc.get(ctx, caller, id, includeInactive)
	if err != nil {
		return nil, err
	}
	if exp.Invoices, err = uc.invoices.ListByExpense(ctx, exp.ID); err != nil {
		return nil, err
	}
	out := dto.NewExpenseResponse(exp)
	return &out, nil
}

// List pagina gastos visibles por restaurante, categoría y rango de fechas (fecha desc).
func (uc *ExpenseUseCase) List(ctx context.Context, caller access.Caller, q dto.RecordListQuery) (*dto.ExpenseListResponse, error) {
	filter, err := recordFilter(ctx, uc.scopes, caller, &q)
	if err != nil {
		return nil, err
	}
	items := []dto.ExpenseResponse{}
	if filter.Scope.IsEmpty() {
		return &dto.ExpenseListResponse{Items: items, Page: dto.NewPageResponse(0, q.PageRequest)}, nil
	}
	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, e := range list {
		items = append(items, dto.NewExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{Items: items, Page: dto.NewPageResponse(total, q.PageRequest)}, nil
}

// Update aplica los campos editables. En un gasto Invoice, amounts regenera las facturas.
func (uc *ExpenseUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	exp, err := uc.get(ctx, caller, id, false)
	if err != nil {
		return nil, err
	}
	if err := validateAmounts(in.Amounts); err != nil {
		return nil, err
	}
	wasInvoice := exp.IsInvoice()
	if in.Category != nil {
		if exp.Category = normalizeCategory(*in.Category); exp.Category == "" {
			return nil, domain.Validation("CATEGORY_REQUIRED", "category es obligatorio")
		}
	}
	setString(&exp.VendorName, in.VendorName)
	setString(&exp.InvoiceNumber, in.InvoiceNumber)
	if in.Date != nil {
		if exp.Date, err = parseDate("date", *in.Date); err != nil {
			return nil, err
		}
	}
	if in.Amount != nil || in.SalaryAmount != nil || len(in.Amounts) > 0 {
		base := exp.Amount
		if in.Amount != nil {
			base = *in.Amount
		}
		exp.Amount = resolveAmount(base, in.SalaryAmount, in.Amounts)
	}
	if in.Description != nil {
		exp.Description = *in.Description
	}
	if err := nonNegative(map[string]decimal.Decimal{"amount": exp.Amount}); err != nil {
		return nil, err
	}
	exp.UpdatedAt = now()

	err = uc.tx.Run(ctx, func(r repository.Repos) error {
		regenerate := exp.IsInvoice() && len(in.Amounts) > 0
		if regenerate || (wasInvoice && !exp.IsInvoice()) {
			if err := r.Invoices.DeactivateByExpense(ctx, exp.ID); err != nil {
				return err
			}
		}
		if regenerate {
			if _, err := writeInvoices(ctx, r, exp, caller.UserID, in.Amounts); err != nil {
				return err
			}
		}
		lines, err := r.Invoices.ListByExpense(ctx, exp.ID)
		if err != nil {
			return err
		}
		// con facturas activas el monto es siempre su suma
		if exp.IsInvoice() && len(lines) > 0 {
			exp.Amount = entity.SumInvoices(lines)
		}
		exp.Invoices = lines
		return r.Expenses.Update(ctx, exp)
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewExpenseResponse(exp)
	return &out, nil
}

// Delete desactiva el gasto y sus facturas.
func (uc *ExpenseUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if _, err := uc.get(ctx, caller, id, false); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(r repository.Repos) error {
		if err := r.Invoices.DeactivateByExpense(ctx, id); err != nil {
			return err
		}
		return r.Expenses.SoftDelete(ctx, id)
	})
}

func (uc *ExpenseUseCase) get(ctx context.Context, caller access.Caller, id string, includeInactive bool) (*entity.Expense, error) {
	exp, err := uc.repo.GetByID(ctx, id, includeInactive)
	if err != nil {
		return nil, err
	}
	if err := checkScope(ctx, uc.scopes, caller, exp.RestaurantID); err != nil {
		return nil, err
	}
	return exp, nil
}

// writeInvoices crea una factura por entrada de amounts (quantity 1, tax 0), creando la
// categoría de venta del restaurante si no existe.
func writeInvoices(ctx context.Context, r repository.Repos, exp *entity.Expense, userID string, amounts dto.AmountMap) ([]*entity.Invoice, error) {
	names := make([]string, 0, len(amounts))
	for name := range amounts {
		names = append(names, name)
	}
	sort.Strings(names)

	ts := now()
	out := make([]*entity.Invoice, 0, len(names))
	for _, name := range names {
		category, err := salesCategory(ctx, r.SalesCategories, exp.RestaurantID, name)
		if err != nil {
			return nil, err
		}
		inv := &entity.Invoice{
			ID:              uuid.New().String(),
			UserID:          userID,
			ExpenseID:       exp.ID,
			SalesCategoryID: category.ID,
			Date:            exp.Date,
			Quantity:        1,
			UnitPrice:       amounts[name],
			TaxPrice:        decimal.Zero,
			IsActive:        true,
			CreatedAt:       ts,
			UpdatedAt:       ts,
		}
		if err := r.Invoices.Create(ctx, inv); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, nil
}

func salesCategory(ctx context.Context, repo repository.SalesCategoryRepository, restaurantID, name string) (*entity.SalesCategory, error) {
	category, err := repo.GetByName(ctx, restaurantID, name)
	if err == nil {
		return category, nil
	}
	if !isNotFound(err) {
		return nil, err
	}
	ts := now()
	category = &entity.SalesCategory{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Name:         name,
		IsActive:     true,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if err := repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// resolveAmount: salary_amount reemplaza a amount; si no, amounts suma sus valores.
func resolveAmount(amount decimal.Decimal, salary *decimal.Decimal, amounts dto.AmountMap) decimal.Decimal {
	if salary != nil {
		return *salary
	}
	if len(amounts) > 0 {
		return amounts.Total()
	}
	return amount
}

func validateAmounts(amounts dto.AmountMap) error {
	for name, v := range amounts {
		if strings.TrimSpace(name) == "" {
			return domain.Validation("INVALID_AMOUNTS", "amounts contiene una categoría vacía")
		}
		if v.IsNegative() {
			return domain.Validation("NEGATIVE_AMOUNT", "amounts."+name+" no puede ser negativo")
		}
	}
	return nil
}

// normalizeCategory unifica la escritura de "Invoice".
func normalizeCategory(c string) string {
	c = strings.TrimSpace(c)
	if strings.EqualFold(c, entity.ExpenseCategoryInvoice) {
		return entity.ExpenseCategoryInvoice
	}
	return c
}
