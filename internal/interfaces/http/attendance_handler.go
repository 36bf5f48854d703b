package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/usecase"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

// AttendanceHandler entradas y salidas.
type AttendanceHandler struct {
	uc *usecase.AttendanceUseCase
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *usecase.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// CheckIn godoc
// @Summary      Registrar entrada
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckInRequest  true  "Turno"
// @Success      201  {object}  dto.AttendanceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var in dto.CheckInRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CheckIn(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CheckOut godoc
// @Summary      Registrar salida
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AttendanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	out, err := h.uc.CheckOut(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Registro de asistencia
// @Description  Asesor: solo lo propio; encargado: su módulo.
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Param        start        query  string  false  "Inicio AAAA-MM-DD"
// @Param        end          query  string  false  "Fin AAAA-MM-DD"
// @Param        module_id    query  string  false  "Módulo"
// @Param        employee_id  query  string  false  "Empleado"
// @Success      200  {array}  dto.AttendanceResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	var q dto.AttendanceQuery
	if err := parseQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	r, err := optionalRange(q.Start, q.End)
	if err != nil {
		return respondError(c, err)
	}
	f := repository.AttendanceFilter{ModuleID: q.ModuleID, EmployeeID: q.EmployeeID}
	if r != nil {
		f.From, f.To = r.Start, r.End
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
