package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bluebook-api/internal/application/auth"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/infrastructure/memory"
)

func TestSeedSuperAdmin_Idempotente(t *testing.T) {
	ctx := context.Background()
	users := memory.New().Repos().Users
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	created, err := seedSuperAdmin(ctx, users, " root@example.com ", "s3cret!", now)
	require.NoError(t, err)
	assert.True(t, created)

	u, err := users.GetByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSuperAdmin, u.Role)
	assert.Nil(t, u.CompanyID)
	assert.True(t, auth.CheckPassword(u.PasswordHash, "s3cret!"))

	created, err = seedSuperAdmin(ctx, users, "ROOT@example.com", "otra", now)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestSeedSuperAdmin_SinCredenciales(t *testing.T) {
	_, err := seedSuperAdmin(context.Background(), memory.New().Repos().Users, "", "", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
