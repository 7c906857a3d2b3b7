package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/application/usecase"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
)

func newExpenseUC(f *fixture, tx repository.TxRunner) *usecase.ExpenseUseCase {
	if tx == nil {
		tx = f.store
	}
	r := f.store.Repos()
	return usecase.NewExpenseUseCase(r.Expenses, r.Invoices, tx, f.resolver, nil)
}

type failingInvoices struct{ repository.InvoiceRepository }

func (failingInvoices) Create(context.Context, *entity.Invoice) error { return errors.New("timeout") }

func TestExpenseCreate_InvoiceBuildsLines(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Repos().SalesCategories.Create(ctx, &entity.SalesCategory{ID: "sc-food", RestaurantID: "r1", Name: "Food", IsActive: true}))

	out, err := newExpenseUC(f, nil).Create(ctx, f.emp, dto.CreateExpenseRequest{
		RestaurantID: "r1",
		Category:     "invoice",
		VendorName:   "Sysco",
		Date:         "2024-04-02",
		Amount:       dec("999"),
		Amounts:      dto.AmountMap{"food": dec("120.50"), "Linen": dec("30")},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ExpenseCategoryInvoice, out.Category)
	assert.Equal(t, "150.5", out.Amount.String(), "el monto es la suma de las facturas")
	require.Len(t, out.Invoices, 2)
	assert.Equal(t, "30", out.Invoices[0].Total.String())
	assert.Equal(t, 1, out.Invoices[0].Quantity)
	assert.Equal(t, "sc-food", out.Invoices[1].SalesCategoryID, "categoría existente sin distinguir mayúsculas")

	counts := f.store.Counts()
	assert.Equal(t, 2, counts["invoices"])
	assert.Equal(t, 2, counts["sales_categories"], "Linen se creó")

	got, err := newExpenseUC(f, nil).GetByID(ctx, f.ca1, out.ID, false)
	require.NoError(t, err)
	assert.Len(t, got.Invoices, 2)
}

func TestExpenseCreate_SalaryOverridesAmount(t *testing.T) {
	f := newFixture(t)
	out, err := newExpenseUC(f, nil).Create(context.Background(), f.ca1, dto.CreateExpenseRequest{
		RestaurantID: "r2",
		Category:     "Payroll",
		Date:         "2024-04-02",
		Amount:       dec("10"),
		SalaryAmount: ptr(dec("3200")),
	})
	require.NoError(t, err)
	assert.Equal(t, "3200", out.Amount.String())
	assert.Empty(t, out.Invoices)
}

func TestExpenseCreate_InvoiceFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	tx := mutatingTx{inner: f.store, mutate: func(r *repository.Repos) {
		r.Invoices = failingInvoices{r.Invoices}
	}}
	_, err := newExpenseUC(f, tx).Create(context.Background(), f.ca1, dto.CreateExpenseRequest{
		RestaurantID: "r1",
		Category:     "Invoice",
		Date:         "2024-04-02",
		Amounts:      dto.AmountMap{"Beer": dec("10")},
	})
	require.Error(t, err)

	counts := f.store.Counts()
	assert.Zero(t, counts["expenses"])
	assert.Zero(t, counts["sales_categories"])
}

func TestExpenseCreate_NegativeAmountsRejected(t *testing.T) {
	f := newFixture(t)
	_, err := newExpenseUC(f, nil).Create(context.Background(), f.ca1, dto.CreateExpenseRequest{
		RestaurantID: "r1",
		Category:     "Invoice",
		Date:         "2024-04-02",
		Amounts:      dto.AmountMap{"Beer": dec("-1")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExpenseUpdate_RegeneratesInvoices(t *testing.T) {
	f := newFixture(t)
	uc := newExpenseUC(f, nil)
	ctx := context.Background()
	created, err := uc.Create(ctx, f.ca1, dto.CreateExpenseRequest{
		RestaurantID: "r1",
		Category:     "Invoice",
		Date:         "2024-04-02",
		Amounts:      dto.AmountMap{"Beer": dec("10"), "Wine": dec("5")},
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, f.ca1, created.ID, dto.UpdateExpenseRequest{
		Amounts: dto.AmountMap{"Beer": dec("40")},
	})
	require.NoError(t, err)
	assert.Equal(t, "40", updated.Amount.String())
	require.Len(t, updated.Invoices, 1)

	changed, err := uc.Update(ctx, f.ca1, created.ID, dto.UpdateExpenseRequest{
		Category: ptr("Utilities"),
		Amount:   ptr(dec("75")),
	})
	require.NoError(t, err)
	assert.Equal(t, "75", changed.Amount.String())
	assert.Empty(t, changed.Invoices, "al dejar de ser Invoice las facturas se desactivan")
}

func TestExpenseUpdate_InvoiceAmountFollowsLines(t *testing.T) {
	f := newFixture(t)
	uc := newExpenseUC(f, nil)
	ctx := context.Background()
	created, err := uc.Create(ctx, f.ca1, dto.CreateExpenseRequest{
		RestaurantID: "r1",
		Category:     "Invoice",
		Date:         "2024-04-02",
		Amounts:      dto.AmountMap{"Food": dec("100"), "Beer": dec("50")},
	})
	require.NoError(t, err)
	require.Equal(t, "150", created.Amount.String())

	updated, err := uc.Update(ctx, f.ca1, created.ID, dto.UpdateExpenseRequest{
		Amount:       ptr(dec("999")),
		SalaryAmount: ptr(dec("5")),
		VendorName:   ptr("Sysco"),
	})
	require.NoError(t, err)
	assert.Equal(t, "150", updated.Amount.String(), "sin amounts el monto sigue siendo la suma de las facturas")
	assert.Equal(t, "Sysco", updated.VendorName)
	require.Len(t, updated.Invoices, 2)

	got, err := uc.GetByID(ctx, f.ca1, created.ID, false)
	require.NoError(t, err)
	sum := dec("0")
	for _, inv := range got.Invoices {
		sum = sum.Add(inv.Total)
	}
	assert.True(t, got.Amount.Equal(sum), "persistido: %s vs %s", got.Amount, sum)
}

func TestExpenseList_PageBeyondEnd(t *testing.T) {
	f := newFixture(t)
	uc := newExpenseUC(f, nil)
	ctx := context.Background()
	for _, date := range []string{"2024-01-01", "2024-01-02"} {
		_, err := uc.Create(ctx, f.ca1, dto.CreateExpenseRequest{RestaurantID: "r1", Category: "Rent", Date: date, Amount: dec("10")})
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, f.ca1, dto.RecordListQuery{PageRequest: dto.PageRequest{Page: 5, PageSize: 1}})
	require.NoError(t, err)
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
	assert.Equal(t, 2, out.Page.TotalCount)
	assert.Equal(t, 2, out.Page.TotalPages)
	assert.Equal(t, 5, out.Page.Page)
}

func TestExpenseList_CategoryAndDelete(t *testing.T) {
	f := newFixture(t)
	uc := newExpenseUC(f, nil)
	ctx := context.Background()
	for _, in := range []dto.CreateExpenseRequest{
		{RestaurantID: "r1", Category: "Rent", Date: "2024-01-01", Amount: dec("1000")},
		{RestaurantID: "r1", Category: "Utilities", Date: "2024-01-05", Amount: dec("200")},
		{RestaurantID: "r2", Category: "Rent", Date: "2024-01-10", Amount: dec("800")},
	} {
		_, err := uc.Create(ctx, f.ca1, in)
		require.NoError(t, err)
	}

	rent, err := uc.List(ctx, f.ca1, dto.RecordListQuery{Category: "Rent"})
	require.NoError(t, err)
	require.Len(t, rent.Items, 2)
	assert.Equal(t, "2024-01-10", rent.Items[0].Date)

	emp, err := uc.List(ctx, f.emp, dto.RecordListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, emp.Page.TotalCount)

	require.NoError(t, uc.Delete(ctx, f.ca1, rent.Items[0].ID))
	err = uc.Delete(ctx, f.ca1, rent.Items[0].ID)
	assert.ErrorIs(t, err, domain.ErrExpenseNotFound)

	err = uc.Delete(ctx, f.ca2, rent.Items[1].ID)
	assert.ErrorIs(t, err, domain.ErrRestaurantForbidden)
}
