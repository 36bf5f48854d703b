package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// Códigos de error expuestos en dto.ErrorResponse.
const (
	CodeValidation        = "VALIDATION"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInvalidState      = "INVALID_STATE"
	CodePeriodClosed      = "PERIOD_CLOSED"
	CodeDuplicate         = "DUPLICATE"
	CodeCommissionConfig  = "COMMISSION_CONFIG"
	CodeRateLimited       = "RATE_LIMITED"
	CodeInternal          = "INTERNAL"
)

// errorMapping orden de evaluación: ErrPeriodClosed antes que ErrInvalidState porque también coincide con él.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, CodeValidation},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, CodeUnauthorized},
	{domain.ErrForbidden, fiber.StatusForbidden, CodeForbidden},
	{domain.ErrNotFound, fiber.StatusNotFound, CodeNotFound},
	{domain.ErrInsufficientStock, fiber.StatusConflict, CodeInsufficientStock},
	{domain.ErrPeriodClosed, fiber.StatusConflict, CodePeriodClosed},
	{domain.ErrInvalidState, fiber.StatusConflict, CodeInvalidState},
	{domain.ErrConflict, fiber.StatusConflict, CodeInvalidState},
	{domain.ErrDuplicate, fiber.StatusConflict, CodeDuplicate},
	{domain.ErrCommissionConfig, fiber.StatusUnprocessableEntity, CodeCommissionConfig},
}

// StatusFor traduce un error de dominio a status HTTP y código.
func StatusFor(err error) (int, string) {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return fiber.StatusInternalServerError, CodeInternal
}

// respondError escribe el error con el status que le corresponde.
// Los errores internos se registran y no exponen detalles al cliente.
func respondError(c *fiber.Ctx, err error) error {
	status, code := StatusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		msg = "error interno del servidor"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// ErrorHandler manejador global de Fiber: errores de Fiber conservan su status, el resto se mapea.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: CodeFromStatus(fe.Code), Message: fe.Message})
	}
	return respondError(c, err)
}

// CodeFromStatus código genérico para errores que no vienen del dominio.
func CodeFromStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return CodeValidation
	case fiber.StatusUnauthorized:
		return CodeUnauthorized
	case fiber.StatusForbidden:
		return CodeForbidden
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusTooManyRequests:
		return CodeRateLimited
	}
	return CodeInternal
}
