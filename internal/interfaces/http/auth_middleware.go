package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
)

// LocalCaller clave de c.Locals con el access.Caller autenticado.
const LocalCaller = "caller"

// TokenVerifier valida un token y devuelve la identidad (lo implementa *auth.AuthUseCase).
type TokenVerifier interface {
	Verify(token string) (access.Caller, error)
}

// AuthMiddleware acepta "Authorization: Bearer <token>" o "x-access-token: <token>"
// y deja el Caller en c.Locals.
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := extractToken(c)
		if err != nil {
			return err
		}
		caller, err := verifier.Verify(token)
		if err != nil {
			return err
		}
		c.Locals(LocalCaller, caller)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) (string, error) {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", unauthorized("INVALID_TOKEN", "formato: Bearer <token>")
		}
		if token := strings.TrimSpace(parts[1]); token != "" {
			return token, nil
		}
		return "", unauthorized("MISSING_TOKEN", "token vacío")
	}
	if token := strings.TrimSpace(c.Get("x-access-token")); token != "" {
		return token, nil
	}
	return "", unauthorized("MISSING_TOKEN", "Authorization header requerido")
}

func unauthorized(code, msg string) error {
	return &domain.Error{Kind: domain.KindUnauthorized, Code: code, Message: msg}
}

// GetCaller devuelve la identidad del contexto (después del middleware de auth).
func GetCaller(c *fiber.Ctx) access.Caller {
	caller, _ := c.Locals(LocalCaller).(access.Caller)
	return caller
}

// GetUserID devuelve el UserID del contexto.
func GetUserID(c *fiber.Ctx) string { return GetCaller(c).UserID }

// GetCompanyID devuelve el CompanyID del contexto (vacío para Super_Admin).
func GetCompanyID(c *fiber.Ctx) string { return GetCaller(c).CompanyID }

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string { return GetCaller(c).Role }
