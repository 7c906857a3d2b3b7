package http

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
	"github.com/jhoicas/bluebook-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// los mensajes usan el nombre JSON/query del campo
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// parseBody decodifica el cuerpo JSON en out. Con aliases, las claves se normalizan antes
// de decodificar (ej. expense_date → date). Después aplica las reglas validate.
func parseBody(c *fiber.Ctx, aliases dto.Aliases, out any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		body = []byte("{}")
	}
	if len(aliases) > 0 {
		var raw map[string]any
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return invalidBody(err)
		}
		normalized, err := json.Marshal(aliases.Apply(raw))
		if err != nil {
			return invalidBody(err)
		}
		body = normalized
	}
	if err := json.Unmarshal(body, out); err != nil {
		return invalidBody(err)
	}
	return validateStruct(out)
}

// parseQuery lee la query string en out aplicando aliases y validación.
func parseQuery(c *fiber.Ctx, aliases dto.Aliases, out any) error {
	if len(aliases) > 0 {
		normalized := aliases.ApplyQuery(c.Queries())
		args := c.Context().QueryArgs()
		args.Reset()
		for k, v := range normalized {
			args.Set(k, v)
		}
	}
	if err := c.QueryParser(out); err != nil {
		return domain.Validation("INVALID_QUERY", "parámetros de consulta inválidos")
	}
	return validateStruct(out)
}

func validateStruct(out any) error {
	err := validate.Struct(out)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Validation("VALIDATION", err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return domain.Validation("VALIDATION", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " es requerido"
	case "uuid":
		return field + " debe ser un UUID"
	case "email":
		return field + " debe ser un email válido"
	case "datetime":
		return field + " debe tener formato YYYY-MM-DD"
	case "min", "gte":
		return fmt.Sprintf("%s debe ser al menos %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s no puede superar %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s no cumple la regla %s", field, fe.Tag())
	}
}

func invalidBody(err error) error {
	return &domain.Error{Kind: domain.KindValidation, Code: "INVALID_BODY", Message: "cuerpo inválido", Err: err}
}

// requireParam devuelve el parámetro de ruta o un error de validación si falta.
func requireParam(c *fiber.Ctx, name string) (string, error) {
	v := strings.TrimSpace(c.Params(name))
	if v == "" {
		return "", domain.Validation("MISSING_"+strings.ToUpper(name), name+" es requerido")
	}
	return v, nil
}

// requireID es requireParam para identificadores: exige un UUID.
func requireID(c *fiber.Ctx, name string) (string, error) {
	v, err := requireParam(c, name)
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(v); err != nil {
		return "", domain.Validation(domain.ErrInvalidID.Code, name+" debe ser un UUID")
	}
	return v, nil
}

// parseIDs separa una lista de UUIDs por coma; los vacíos se ignoran.
func parseIDs(field, raw string) ([]string, error) {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			return nil, domain.Validation(domain.ErrInvalidID.Code, field+" contiene un id inválido: "+id)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
