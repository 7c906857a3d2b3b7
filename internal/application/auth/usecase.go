package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/internal/domain/repository"
	"github.com/jhoicas/bluebook-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y verificación de token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, actualiza last_login y retorna token + usuario.
// Orden de chequeo: existe, activo, no bloqueado, password.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	if user.IsBlocked {
		return nil, domain.ErrUserBlocked
	}
	if !CheckPassword(user.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := uc.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyIDValue(), user.Role, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, domain.Internal("generar token", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// Verify valida el token y devuelve la identidad de quien llama.
func (uc *AuthUseCase) Verify(token string) (access.Caller, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		if errors.Is(err, jwt.ErrEmptySecret) {
			return access.Caller{}, domain.Internal("verificar token", err)
		}
		return access.Caller{}, &domain.Error{
			Kind:    domain.KindUnauthorized,
			Code:    "INVALID_TOKEN",
			Message: "token inválido o expirado",
			Err:     err,
		}
	}
	return access.Caller{
		UserID:    claims.UserID,
		Role:      claims.Role,
		CompanyID: claims.CompanyID,
		Email:     claims.Email,
	}, nil
}

// HashPassword hashea con bcrypt (costo por defecto).
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", domain.Internal("hashear password", err)
	}
	return string(hash), nil
}

// CheckPassword compara un hash bcrypt con el password en texto.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
