package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Nomina-api/internal/application/access"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
)

// RequireAssignedModule exige que el empleado del token tenga módulo asignado.
// Las operaciones de caja (ventas, traspasos) no tienen sentido sin módulo.
// Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 si no hay actor en el contexto.
//   - 403 si el actor no tiene módulo.
func RequireAssignedModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor.EmployeeID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: "no autenticado"})
		}
		if err := access.RequireModule(actor); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULE_REQUIRED",
				Message: "el empleado no tiene módulo asignado",
			})
		}
		return c.Next()
	}
}
