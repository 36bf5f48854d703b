package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidState      = errors.New("operación no permitida en el estado actual")
	// ErrCommissionConfig falta una regla de comisión: se corrige agregando la regla, no la petición.
	ErrCommissionConfig = errors.New("no hay comisión configurada")
)

// Errores compuestos: coinciden con errors.Is contra su categoría general.
var (
	ErrPeriodClosed   = &categorized{msg: "el periodo de nómina está cerrado", kind: ErrInvalidState}
	ErrNoActivePeriod = &categorized{msg: "no hay un periodo de nómina activo", kind: ErrNotFound}
)

type categorized struct {
	msg  string
	kind error
}

func (e *categorized) Error() string { return e.msg }

func (e *categorized) Is(target error) bool { return target == e.kind }

// Invalid envuelve ErrInvalidInput con un detalle legible para el cliente.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NotFound envuelve ErrNotFound indicando el recurso.
func NotFound(resource string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, resource)
}
