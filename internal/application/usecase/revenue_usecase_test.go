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
)

func newRevenueUC(f *fixture) *usecase.RevenueUseCase {
	return usecase.NewRevenueUseCase(f.store.Repos().Revenues, f.resolver)
}

func revenueReq(restaurantID, begin, end, total string) dto.CreateRevenueRequest {
	return dto.CreateRevenueRequest{
		RestaurantID:  restaurantID,
		BeginningDate: begin,
		EndingDate:    end,
		TotalAmount:   dec(total),
		TotalGuest:    12,
	}
}

func TestRevenueCreate_EmployeeOnAssignedRestaurant(t *testing.T) {
	f := newFixture(t)
	out, err := newRevenueUC(f).Create(context.Background(), f.emp, revenueReq("r1", "2024-03-01", "2024-03-07", "1500.25"))
	require.NoError(t, err)

	assert.Equal(t, "r1", out.RestaurantID)
	assert.Equal(t, "emp", out.UserID)
	assert.Equal(t, "emp", out.CreatedBy, "created_by referencia al usuario, no al email")
	assert.Equal(t, "2024-03-01", out.BeginningDate)
	assert.True(t, out.IsActive)
}

func TestRevenueCreate_Rejections(t *testing.T) {
	f := newFixture(t)
	uc := newRevenueUC(f)
	ctx := context.Background()

	_, err := uc.Create(ctx, f.emp, revenueReq("r2", "2024-03-01", "2024-03-01", "1"))
	assert.ErrorIs(t, err, domain.ErrRestaurantForbidden, "empleado no asignado")

	_, err = uc.Create(ctx, f.ca1, revenueReq("r3", "2024-03-01", "2024-03-01", "1"))
	assert.ErrorIs(t, err, domain.ErrForbidden, "otra empresa")

	_, err = uc.Create(ctx, f.sa, revenueReq("nope", "2024-03-01", "2024-03-01", "1"))
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	_, err = uc.Create(ctx, f.ca1, revenueReq("r1", "2024-03-05", "2024-03-01", "1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, f.ca1, revenueReq("r1", "2024-03-01", "2024-03-01", "-1"))
	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "NEGATIVE_AMOUNT", de.Code)

	_, err = uc.Create(ctx, f.ca1, revenueReq("r1", "03/01/2024", "2024-03-01", "1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, f.store.Counts()["revenues"])
}

func TestRevenueList_ScopedAndFiltered(t *testing.T) {
	f := newFixture(t)
	uc := newRevenueUC(f)
	ctx := context.Background()
	for _, in := range []dto.CreateRevenueRequest{
		revenueReq("r1", "2024-01-01", "2024-01-01", "10"),
		revenueReq("r1", "2024-02-01", "2024-02-01", "20"),
		revenueReq("r2", "2024-02-15", "2024-02-15", "30"),
		revenueReq("r3", "2024-02-20", "2024-02-20", "40"),
	} {
		_, err := uc.Create(ctx, f.sa, in)
		require.NoError(t, err)
	}

	all, err := uc.List(ctx, f.ca1, dto.RecordListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Page.TotalCount)
	assert.Equal(t, "2024-02-15", all.Items[0].BeginningDate, "fecha desc")

	emp, err := uc.List(ctx, f.emp, dto.RecordListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, emp.Page.TotalCount)

	other, err := uc.List(ctx, f.emp, dto.RecordListQuery{RestaurantID: "r3"})
	require.NoError(t, err)
	assert.Empty(t, other.Items, "fuera del alcance no se filtra hacia afuera")
	assert.NotNil(t, other.Items)

	ranged, err := uc.List(ctx, f.sa, dto.RecordListQuery{
		RestaurantID:   "r1, r2",
		DateRangeQuery: dto.DateRangeQuery{StartDate: "2024-02-01", EndDate: "2024-02-15"},
		PageRequest:    dto.PageRequest{Page: 1, PageSize: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, ranged.Page.TotalCount)
	assert.Equal(t, 2, ranged.Page.TotalPages)
	assert.Len(t, ranged.Items, 1)
}

func TestRevenueList_PageBeyondEnd(t *testing.T) {
	f := newFixture(t)
	uc := newRevenueUC(f)
	ctx := context.Background()
	for _, in := range []dto.CreateRevenueRequest{
		revenueReq("r1", "2024-01-01", "2024-01-01", "10"),
		revenueReq("r2", "2024-01-02", "2024-01-02", "20"),
	} {
		_, err := uc.Create(ctx, f.ca1, in)
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, f.ca1, dto.RecordListQuery{PageRequest: dto.PageRequest{Page: 5, PageSize: 1}})
	require.NoError(t, err)
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
	assert.Equal(t, 2, out.Page.TotalCount)
	assert.Equal(t, 2, out.Page.TotalPages)
}

func TestRevenueUpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	uc := newRevenueUC(f)
	ctx := context.Background()
	created, err := uc.Create(ctx, f.emp, revenueReq("r1", "2024-03-01", "2024-03-01", "100"))
	require.NoError(t, err)

	updated, err := uc.Update(ctx, f.ca1, created.ID, dto.UpdateRevenueRequest{
		TotalAmount: ptr(dec("250")),
		Notes:       ptr("  cierre  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "250", updated.TotalAmount.String())
	assert.Equal(t, "cierre", updated.Notes)
	assert.Equal(t, "emp", updated.UserID, "user_id no cambia")

	_, err = uc.Update(ctx, f.ca2, created.ID, dto.UpdateRevenueRequest{TotalAmount: ptr(dec("1"))})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Update(ctx, f.ca1, created.ID, dto.UpdateRevenueRequest{EndingDate: ptr("2024-02-01")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, uc.Delete(ctx, f.ca1, created.ID))
	_, err = uc.GetByID(ctx, f.ca1, created.ID, false)
	assert.ErrorIs(t, err, domain.ErrRevenueNotFound)

	inactive, err := uc.GetByID(ctx, f.ca1, created.ID, true)
	require.NoError(t, err)
	assert.False(t, inactive.IsActive)
}
