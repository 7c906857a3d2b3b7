package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bluebook-api/internal/application/auth"
	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/application/usecase"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

func newUserUC(f *fixture) *usecase.UserUseCase {
	r := f.store.Repos()
	return usecase.NewUserUseCase(r.Users, r.UserRestaurants, r.Restaurants, f.store, f.resolver, "default@123", nil)
}

func TestUserCreate_DefaultsAndAssignments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := newUserUC(f).Create(ctx, f.ca1, dto.CreateUserRequest{
		FirstName:      "Luis",
		Email:          "Luis@Example.com",
		RestaurantName: "norte",
		RestaurantIDs:  []string{"r1"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleRestaurantEmployee, out.Role)
	assert.Equal(t, "c1", out.CompanyID)
	assert.Equal(t, "luis@example.com", out.Email)
	assert.ElementsMatch(t, []string{"r1", "r2"}, out.RestaurantIDs)

	stored, err := f.store.Repos().Users.GetByID(ctx, out.ID, false)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(stored.PasswordHash, "default@123"))
}

func TestUserCreate_Rejections(t *testing.T) {
	f := newFixture(t)
	uc := newUserUC(f)
	ctx := context.Background()

	_, err := uc.Create(ctx, f.ca1, dto.CreateUserRequest{FirstName: "X", Email: "x@example.com", Role: entity.RoleSuperAdmin})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Create(ctx, f.ca1, dto.CreateUserRequest{FirstName: "X", Email: "ana@EXAMPLE.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.Create(ctx, f.ca1, dto.CreateUserRequest{FirstName: "X", Email: "x@example.com", RestaurantIDs: []string{"r3"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, f.ca1, dto.CreateUserRequest{FirstName: "X", Email: "x@example.com", RestaurantName: "Sur"})
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound, "búsqueda limitada a la empresa")

	_, err = uc.Create(ctx, f.sa, dto.CreateUserRequest{FirstName: "X", Email: "x@example.com", Role: entity.RoleCompanyAdmin})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin empresa")

	_, err = uc.Create(ctx, f.emp, dto.CreateUserRequest{FirstName: "X", Email: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.Equal(t, 4, f.store.Counts()["users"])
}

func TestUserCreate_SuperAdminResolvesCompanyFromRestaurantName(t *testing.T) {
	f := newFixture(t)
	out, err := newUserUC(f).Create(context.Background(), f.sa, dto.CreateUserRequest{
		FirstName: "Gina", Email: "gina@example.com", Password: "secret1", RestaurantName: "Sur",
	})
	require.NoError(t, err)
	assert.Equal(t, "c2", out.CompanyID)
	assert.Equal(t, []string{"r3"}, out.RestaurantIDs)
}

func TestUserVisibility(t *testing.T) {
	f := newFixture(t)
	uc := newUserUC(f)
	ctx := context.Background()

	self, err := uc.GetByID(ctx, f.emp, "emp")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, self.RestaurantIDs)

	_, err = uc.GetByID(ctx, f.emp, "ca1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetByID(ctx, f.ca1, "ca2")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := uc.List(ctx, f.ca1, dto.UserListQuery{CompanyID: "c2"})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Page.TotalCount, "Company_Admin siempre filtrado a su empresa")

	all, err := uc.List(ctx, f.sa, dto.UserListQuery{Role: entity.RoleCompanyAdmin})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Page.TotalCount)

	_, err = uc.List(ctx, f.emp, dto.UserListQuery{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserUpdate_RoleRules(t *testing.T) {
	f := newFixture(t)
	uc := newUserUC(f)
	ctx := context.Background()

	out, err := uc.Update(ctx, f.emp, "emp", dto.UpdateUserRequest{Phone: ptr("555")})
	require.NoError(t, err)
	assert.Equal(t, "555", out.Phone)

	_, err = uc.Update(ctx, f.emp, "emp", dto.UpdateUserRequest{Role: ptr(entity.RoleCompanyAdmin)})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Update(ctx, f.ca1, "emp", dto.UpdateUserRequest{Role: ptr(entity.RoleSuperAdmin)})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	promoted, err := uc.Update(ctx, f.ca1, "emp", dto.UpdateUserRequest{Role: ptr(entity.RoleCompanyAdmin)})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCompanyAdmin, promoted.Role)
}

func TestUserToggleBlockAndDelete(t *testing.T) {
	f := newFixture(t)
	uc := newUserUC(f)
	ctx := context.Background()

	blocked, err := uc.ToggleBlock(ctx, f.ca1, "emp")
	require.NoError(t, err)
	assert.True(t, blocked.IsBlocked)
	unblocked, err := uc.ToggleBlock(ctx, f.ca1, "emp")
	require.NoError(t, err)
	assert.False(t, unblocked.IsBlocked)

	_, err = uc.ToggleBlock(ctx, f.ca1, "ca1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.ToggleBlock(ctx, f.ca1, "sa")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.ErrorIs(t, uc.Delete(ctx, f.ca1, "ca1"), domain.ErrInvalidInput)
	require.NoError(t, uc.Delete(ctx, f.ca1, "emp"))
	_, err = uc.GetByID(ctx, f.ca1, "emp")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRestaurants_ByRoleAndReplace(t *testing.T) {
	f := newFixture(t)
	uc := newUserUC(f)
	ctx := context.Background()

	admin, err := uc.Restaurants(ctx, f.sa, "ca1")
	require.NoError(t, err)
	assert.Len(t, admin.Restaurants, 2, "Company_Admin opera toda su empresa")

	out, err := uc.AssignRestaurants(ctx, f.ca1, "emp", dto.AssignRestaurantsRequest{RestaurantIDs: []string{"r2", "r2"}})
	require.NoError(t, err)
	require.Len(t, out.Restaurants, 1)
	assert.Equal(t, "r2", out.Restaurants[0].ID)

	_, err = uc.AssignRestaurants(ctx, f.ca1, "emp", dto.AssignRestaurantsRequest{RestaurantIDs: []string{"r3"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AssignRestaurants(ctx, f.sa, "sa", dto.AssignRestaurantsRequest{RestaurantIDs: []string{"r1"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
