package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/application/usecase"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

func newRestaurantUC(f *fixture) *usecase.RestaurantUseCase {
	return usecase.NewRestaurantUseCase(f.store.Repos().Restaurants, f.store, f.resolver)
}

func TestRestaurantCreate_CompanyAdminUsesOwnCompany(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	out, err := newRestaurantUC(f).Create(ctx, f.ca1, dto.CreateRestaurantRequest{Name: "Este", State: "TX"})
	require.NoError(t, err)
	assert.Equal(t, "c1", out.CompanyID)

	categories, err := f.store.Repos().SalesCategories.ListByRestaurant(ctx, out.ID)
	require.NoError(t, err)
	assert.Len(t, categories, len(entity.DefaultSalesCategories))

	company, err := f.store.Repos().Companies.GetByID(ctx, "c1", false)
	require.NoError(t, err)
	assert.Equal(t, 3, company.NumberOfRestaurants)

	_, err = newRestaurantUC(f).Create(ctx, f.ca1, dto.CreateRestaurantRequest{CompanyID: "c2", Name: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRestaurantCreate_SuperAdminNeedsCompany(t *testing.T) {
	f := newFixture(t)
	uc := newRestaurantUC(f)
	ctx := context.Background()

	_, err := uc.Create(ctx, f.sa, dto.CreateRestaurantRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, f.sa, dto.CreateRestaurantRequest{CompanyID: "ghost", Name: "X"})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	assert.Equal(t, 3, f.store.Counts()["restaurants"])

	out, err := uc.Create(ctx, f.sa, dto.CreateRestaurantRequest{CompanyID: "c2", Name: "Oeste"})
	require.NoError(t, err)
	assert.Equal(t, "c2", out.CompanyID)
}

func TestRestaurantList_Scoped(t *testing.T) {
	f := newFixture(t)
	uc := newRestaurantUC(f)
	ctx := context.Background()

	sa, err := uc.List(ctx, f.sa, dto.RestaurantListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, sa.Page.TotalCount)

	filtered, err := uc.List(ctx, f.sa, dto.RestaurantListQuery{CompanyID: "c2"})
	require.NoError(t, err)
	assert.Equal(t, 1, filtered.Page.TotalCount)

	ca, err := uc.List(ctx, f.ca1, dto.RestaurantListQuery{CompanyID: "c2"})
	require.NoError(t, err)
	assert.Empty(t, ca.Items)

	emp, err := uc.List(ctx, f.emp, dto.RestaurantListQuery{})
	require.NoError(t, err)
	require.Len(t, emp.Items, 1)
	assert.Equal(t, "r1", emp.Items[0].ID)
}

func TestRestaurantUpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	uc := newRestaurantUC(f)
	ctx := context.Background()

	out, err := uc.Update(ctx, f.ca1, "r2", dto.UpdateRestaurantRequest{Name: ptr("Norte 2"), Zipcode: ptr("78701")})
	require.NoError(t, err)
	assert.Equal(t, "Norte 2", out.Name)
	assert.Equal(t, "c1", out.CompanyID)

	_, err = uc.Update(ctx, f.ca2, "r2", dto.UpdateRestaurantRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrRestaurantForbidden)

	require.NoError(t, uc.Delete(ctx, f.ca1, "r2"))
	_, err = uc.GetByID(ctx, f.ca1, "r2")
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	company, err := f.store.Repos().Companies.GetByID(ctx, "c1", false)
	require.NoError(t, err)
	assert.Equal(t, 1, company.NumberOfRestaurants)
}
