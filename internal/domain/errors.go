package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica un error de dominio; la capa HTTP lo traduce a un status estable.
type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindForbidden    Kind = "FORBIDDEN"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindInternal     Kind = "INTERNAL"
)

// Error es el error tipado que devuelven los casos de uso y los repositorios.
// Code es un identificador estable (ej. DUPLICATE_BLUE_BOOK); Message es legible.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is compara por código; los sentinels de Kind (Code == Kind) coinciden con cualquier error de ese Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code == string(t.Kind) {
		return t.Kind == e.Kind
	}
	return t.Code == e.Code
}

// Sentinels por Kind.
var (
	ErrInvalidInput = &Error{Kind: KindValidation, Code: string(KindValidation), Message: "entrada inválida"}
	ErrNotFound     = &Error{Kind: KindNotFound, Code: string(KindNotFound), Message: "recurso no encontrado"}
	ErrConflict     = &Error{Kind: KindConflict, Code: string(KindConflict), Message: "conflicto con el estado actual"}
	ErrForbidden    = &Error{Kind: KindForbidden, Code: string(KindForbidden), Message: "acceso denegado"}
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Code: string(KindUnauthorized), Message: "no autorizado"}
	ErrInternal     = &Error{Kind: KindInternal, Code: string(KindInternal), Message: "error interno"}
)

// Errores de negocio con código propio.
var (
	ErrEmailAlreadyExists  = &Error{Kind: KindConflict, Code: "EMAIL_EXISTS", Message: "ya existe un usuario con este email"}
	ErrDuplicateBlueBook   = &Error{Kind: KindConflict, Code: "DUPLICATE_BLUE_BOOK", Message: "ya existe una entrada para esta fecha"}
	ErrUserNotFound        = &Error{Kind: KindNotFound, Code: "USER_NOT_FOUND", Message: "usuario no encontrado"}
	ErrUserBlocked         = &Error{Kind: KindForbidden, Code: "USER_BLOCKED", Message: "la cuenta está bloqueada"}
	ErrUserInactive        = &Error{Kind: KindForbidden, Code: "USER_INACTIVE", Message: "la cuenta está desactivada"}
	ErrInvalidCredentials  = &Error{Kind: KindUnauthorized, Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"}
	ErrRestaurantForbidden = &Error{Kind: KindForbidden, Code: "RESTAURANT_FORBIDDEN", Message: "no tiene acceso a este restaurante"}
	ErrInvalidID           = &Error{Kind: KindValidation, Code: "INVALID_ID", Message: "identificador con formato inválido"}
)

// No encontrados por recurso.
var (
	ErrCompanyNotFound       = &Error{Kind: KindNotFound, Code: "COMPANY_NOT_FOUND", Message: "empresa no encontrada"}
	ErrRestaurantNotFound    = &Error{Kind: KindNotFound, Code: "RESTAURANT_NOT_FOUND", Message: "restaurante no encontrado"}
	ErrRevenueNotFound       = &Error{Kind: KindNotFound, Code: "REVENUE_NOT_FOUND", Message: "ingreso no encontrado"}
	ErrExpenseNotFound       = &Error{Kind: KindNotFound, Code: "EXPENSE_NOT_FOUND", Message: "gasto no encontrado"}
	ErrBlueBookNotFound      = &Error{Kind: KindNotFound, Code: "BLUE_BOOK_NOT_FOUND", Message: "entrada de blue book no encontrada"}
	ErrSalesCategoryNotFound = &Error{Kind: KindNotFound, Code: "SALES_CATEGORY_NOT_FOUND", Message: "categoría no encontrada"}
	ErrTargetNotFound        = &Error{Kind: KindNotFound, Code: "TARGET_NOT_FOUND", Message: "objetivo no encontrado"}
	ErrPosNotFound           = &Error{Kind: KindNotFound, Code: "POS_NOT_FOUND", Message: "integración POS no encontrada"}
)

// Validation construye un error de validación con código propio.
func Validation(code, message string) error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

// NotFound construye un error de recurso inexistente o inactivo.
func NotFound(code, message string) error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// Conflict construye un error de clave única duplicada.
func Conflict(code, message string) error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// Forbidden construye un error de scope o rol.
func Forbidden(code, message string) error {
	return &Error{Kind: KindForbidden, Code: code, Message: message}
}

// Internal envuelve un fallo inesperado de Store o transacción.
func Internal(op string, err error) error {
	return &Error{Kind: KindInternal, Code: string(KindInternal), Message: op, Err: err}
}

// KindOf devuelve el Kind del error; cualquier error no tipado es Internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
