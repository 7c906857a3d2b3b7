// seed_superadmin crea el usuario Super_Admin inicial si no existe.
//
// Uso: SUPERADMIN_EMAIL=root@example.com SUPERADMIN_PASSWORD=... go run ./cmd/seed_superadmin
// Es idempotente: si el email ya existe no modifica nada.
package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bluebook-api/internal/application/auth"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/entity"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
	"github.com/jhoicas/bluebook-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bluebook-api/pkg/config"
	"github.com/jhoicas/bluebook-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Named("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	created, err := seedSuperAdmin(ctx, postgres.NewUserRepository(pool), cfg.SuperAdmin.Email, cfg.SuperAdmin.Password, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("seed Super_Admin")
		pool.Close()
		os.Exit(1)
	}
	if !created {
		log.Info().Str("email", cfg.SuperAdmin.Email).Msg("Super_Admin ya existe, sin cambios")
		return
	}
	log.Info().Str("email", cfg.SuperAdmin.Email).Msg("Super_Admin creado")
}

// seedSuperAdmin devuelve true si creó el usuario.
func seedSuperAdmin(ctx context.Context, users repository.UserRepository, email, password string, now time.Time) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return false, domain.Validation("MISSING_SUPERADMIN", "SUPERADMIN_EMAIL y SUPERADMIN_PASSWORD son obligatorios")
	}

	_, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return false, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    "Super",
		LastName:     "Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}
