package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
	"github.com/jhoicas/bluebook-api/pkg/logger"
)

// statusByKind traduce el Kind del error de dominio al status HTTP.
var statusByKind = map[domain.Kind]int{
	domain.KindValidation:   fiber.StatusBadRequest,
	domain.KindNotFound:     fiber.StatusNotFound,
	domain.KindConflict:     fiber.StatusConflict,
	domain.KindForbidden:    fiber.StatusForbidden,
	domain.KindUnauthorized: fiber.StatusUnauthorized,
	domain.KindInternal:     fiber.StatusInternalServerError,
}

// Classify devuelve status y cuerpo para err. Con hideInternal los errores 500 no exponen detalle.
func Classify(err error, hideInternal bool) (int, dto.ErrorResponse) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, dto.ErrorResponse{Code: codeForStatus(fe.Code), Message: fe.Message}
	}

	var de *domain.Error
	if !errors.As(err, &de) {
		de = &domain.Error{Kind: domain.KindInternal, Code: string(domain.KindInternal), Message: "error interno", Err: err}
	}
	status, ok := statusByKind[de.Kind]
	if !ok {
		status = fiber.StatusInternalServerError
	}
	if de.Kind == domain.KindInternal {
		if hideInternal {
			return status, dto.ErrorResponse{Code: de.Code, Message: "error interno"}
		}
		return status, dto.ErrorResponse{Code: de.Code, Message: de.Error()}
	}
	return status, dto.ErrorResponse{Code: de.Code, Message: de.Message}
}

// ErrorHandler es el fiber.ErrorHandler de la API: los handlers devuelven errores de dominio y
// aquí se convierten en dto.ErrorResponse.
func ErrorHandler(hideInternal bool, log *logger.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx, err error) error {
		status, body := Classify(err, hideInternal)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Str("user_id", GetUserID(c)).
				Msg("error no controlado")
		}
		return c.Status(status).JSON(body)
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "INVALID_REQUEST"
	case fiber.StatusNotFound:
		return "ROUTE_NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	case fiber.StatusUnauthorized:
		return string(domain.KindUnauthorized)
	case fiber.StatusForbidden:
		return string(domain.KindForbidden)
	default:
		return string(domain.KindInternal)
	}
}
