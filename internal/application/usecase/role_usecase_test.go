package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bluebook-api/internal/application/usecase"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
)

func roleNames(t *testing.T, role string) []string {
	t.Helper()
	var names []string
	for _, r := range usecase.NewRoleUseCase().List(access.Caller{Role: role}).Roles {
		names = append(names, r.Name)
	}
	return names
}

func TestRoleList_FilteredByCaller(t *testing.T) {
	assert.Equal(t, []string{entity.RoleSuperAdmin, entity.RoleCompanyAdmin, entity.RoleRestaurantEmployee}, roleNames(t, entity.RoleSuperAdmin))
	assert.Equal(t, []string{entity.RoleCompanyAdmin, entity.RoleRestaurantEmployee}, roleNames(t, entity.RoleCompanyAdmin))
	assert.Equal(t, []string{entity.RoleRestaurantEmployee}, roleNames(t, entity.RoleRestaurantEmployee))
}

func TestRoleGetByName(t *testing.T) {
	uc := usecase.NewRoleUseCase()
	r, err := uc.GetByName(entity.RoleCompanyAdmin)
	require.NoError(t, err)
	assert.Equal(t, 2, r.ID)
	assert.Equal(t, "Company administrator with company-wide access", r.Description)
	assert.Contains(t, r.Permissions, string(access.UserCreate))
	assert.NotContains(t, r.Permissions, string(access.CompanyApprove))

	_, err = uc.GetByName("Chef")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
