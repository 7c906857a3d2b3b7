package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	appaccess "github.com/jhoicas/bluebook-api/internal/application/access"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
	"github.com/jhoicas/bluebook-api/internal/infrastructure/memory"
)

// Datos de prueba:
//
//	c1 (aprobada): r1 "Centro", r2 "Norte"     c2 (pendiente): r3 "Sur"
//	sa (Super_Admin) · ca1 / ca2 (Company_Admin de c1 / c2) · emp (Restaurant_Employee c1, asignado a r1)
type fixture struct {
	store    *memory.Store
	resolver *appaccess.Resolver

	sa, ca1, ca2, emp access.Caller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := memory.New()
	r := s.Repos()
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, r.Companies.Create(ctx, &entity.Company{ID: "c1", Name: "Tacos SA", IsOnboarded: true, IsActive: true, NumberOfRestaurants: 2, CreatedAt: ts}))
	require.NoError(t, r.Companies.Create(ctx, &entity.Company{ID: "c2", Name: "Pizza SA", IsActive: true, NumberOfRestaurants: 1, CreatedAt: ts.Add(time.Hour)}))
	for _, x := range []*entity.Restaurant{
		{ID: "r1", CompanyID: "c1", Name: "Centro", IsActive: true},
		{ID: "r2", CompanyID: "c1", Name: "Norte", IsActive: true},
		{ID: "r3", CompanyID: "c2", Name: "Sur", IsActive: true},
	} {
		require.NoError(t, r.Restaurants.Create(ctx, x))
	}
	c1, c2 := "c1", "c2"
	for _, u := range []*entity.User{
		{ID: "sa", FirstName: "Root", Email: "root@example.com", Role: entity.RoleSuperAdmin, IsActive: true, CreatedAt: ts},
		{ID: "ca1", FirstName: "Ana", Email: "ana@example.com", Role: entity.RoleCompanyAdmin, CompanyID: &c1, IsActive: true, CreatedAt: ts.Add(time.Minute)},
		{ID: "ca2", FirstName: "Beto", Email: "beto@example.com", Role: entity.RoleCompanyAdmin, CompanyID: &c2, IsActive: true, CreatedAt: ts.Add(2 * time.Minute)},
		{ID: "emp", FirstName: "Eva", Email: "eva@example.com", Role: entity.RoleRestaurantEmployee, CompanyID: &c1, IsActive: true, CreatedAt: ts.Add(3 * time.Minute)},
	} {
		require.NoError(t, r.Users.Create(ctx, u))
	}
	require.NoError(t, r.UserRestaurants.Link(ctx, "emp", []string{"r1"}))

	return &fixture{
		store:    s,
		resolver: appaccess.NewResolver(r.Restaurants, r.UserRestaurants),
		sa:       access.Caller{UserID: "sa", Role: entity.RoleSuperAdmin, Email: "root@example.com"},
		ca1:      access.Caller{UserID: "ca1", Role: entity.RoleCompanyAdmin, CompanyID: "c1", Email: "ana@example.com"},
		ca2:      access.Caller{UserID: "ca2", Role: entity.RoleCompanyAdmin, CompanyID: "c2", Email: "beto@example.com"},
		emp:      access.Caller{UserID: "emp", Role: entity.RoleRestaurantEmployee, CompanyID: "c1", Email: "eva@example.com"},
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

// mutatingTx reemplaza repositorios dentro de la transacción para inyectar fallos.
type mutatingTx struct {
	inner  repository.TxRunner
	mutate func(r *repository.Repos)
}

func (m mutatingTx) Run(ctx context.Context, fn func(repository.Repos) error) error {
	return m.inner.Run(ctx, func(r repository.Repos) error {
		m.mutate(&r)
		return fn(r)
	})
}
