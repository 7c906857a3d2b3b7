package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bluebook-api/internal/application/auth"
	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/infrastructure/memory"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "bluebook-test"}

func newUseCase(t *testing.T, users ...*entity.User) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	s := memory.New()
	for _, u := range users {
		require.NoError(t, s.Repos().Users.Create(context.Background(), u))
	}
	return auth.NewAuthUseCase(s.Repos().Users, jwtCfg), s
}

func user(t *testing.T, id, email, password string) *entity.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	company := "c1"
	return &entity.User{
		ID: id, Email: email, PasswordHash: hash, FirstName: "Ana",
		Role: entity.RoleCompanyAdmin, CompanyID: &company, IsActive: true,
	}
}

func TestLogin_Success(t *testing.T) {
	uc, s := newUseCase(t, user(t, "u1", "ana@example.com", "secret123"))

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ANA@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "u1", out.User.ID)
	assert.NotNil(t, out.User.LastLogin)

	stored, err := s.Repos().Users.GetByID(context.Background(), "u1", false)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)

	caller, err := uc.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", caller.UserID)
	assert.Equal(t, entity.RoleCompanyAdmin, caller.Role)
	assert.Equal(t, "c1", caller.CompanyID)
	assert.Equal(t, "ana@example.com", caller.Email)
}

func TestLogin_ErrorKinds(t *testing.T) {
	blocked := user(t, "u2", "blocked@example.com", "secret123")
	blocked.IsBlocked = true
	inactive := user(t, "u3", "gone@example.com", "secret123")
	inactive.IsActive = false
	uc, _ := newUseCase(t, user(t, "u1", "ana@example.com", "secret123"), blocked, inactive)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "blocked@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrUserBlocked)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "gone@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrUserInactive)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}

func TestVerify_RejectsGarbage(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Verify("not-a-token")
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}
