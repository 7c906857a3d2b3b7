package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/internal/domain/access"
	"github.com/jhoicas/bluebook-api/pkg/logger"
)

// RequireRole deja pasar solo a los roles indicados. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 MISSING_ROLE → token sin claim de rol.
//   - 403 FORBIDDEN    → rol fuera de la lista.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return unauthorized("MISSING_ROLE", "el token no incluye rol")
		}
		if !access.HasAnyRole(role, roles...) {
			return domain.Forbidden(string(domain.KindForbidden), "el rol '"+role+"' no puede acceder a este recurso")
		}
		return c.Next()
	}
}

// RequirePermission verifica el permiso recurso:acción contra la tabla de roles.
func RequirePermission(p access.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return unauthorized("MISSING_ROLE", "el token no incluye rol")
		}
		if !access.HasPermission(role, p) {
			return domain.Forbidden("PERMISSION_DENIED", "permiso requerido: "+string(p))
		}
		return c.Next()
	}
}

// RequestLogger registra método, ruta, status, latencia y usuario de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			// el ErrorHandler todavía no escribió la respuesta
			status, _ = Classify(err, true)
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return err
	}
}
