package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/payroll"
)

// PayrollHandler periodos de nómina, cálculo y exportación.
type PayrollHandler struct {
	periods *payroll.PeriodManager
	calc    *payroll.ComputationUseCase
}

// NewPayrollHandler construye el handler.
func NewPayrollHandler(periods *payroll.PeriodManager, calc *payroll.ComputationUseCase) *PayrollHandler {
	return &PayrollHandler{periods: periods, calc: calc}
}

// ListPeriods godoc
// @Summary      Listar periodos de nómina
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PayrollPeriodResponse
// @Router       /api/payroll/periods [get]
func (h *PayrollHandler) ListPeriods(c *fiber.Ctx) error {
	out, err := h.periods.List(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ActivePeriod godoc
// @Summary      Periodo activo
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PayrollPeriodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payroll/periods/active [get]
func (h *PayrollHandler) ActivePeriod(c *fiber.Ctx) error {
	p, err := h.periods.Active(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payroll.ToPeriodResponse(p))
}

// OpenPeriod godoc
// @Summary      Abrir periodo de nómina
// @Description  Cierra el periodo activo anterior; solo queda uno activo.
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenPeriodRequest  true  "Rango y rangos por grupo"
// @Success      201   {object}  dto.PayrollPeriodResponse
// @Router       /api/payroll/periods [post]
func (h *PayrollHandler) OpenPeriod(c *fiber.Ctx) error {
	var in dto.OpenPeriodRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.periods.Open(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetGroupRanges godoc
// @Summary      Rangos de los grupos A y C
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del periodo"
// @Param        body  body  dto.GroupRangesRequest  true  "Rangos"
// @Success      200   {object}  dto.PayrollPeriodResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payroll/periods/{id}/ranges [put]
func (h *PayrollHandler) SetGroupRanges(c *fiber.Ctx) error {
	var in dto.GroupRangesRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.periods.SetGroupRanges(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ClosePeriod godoc
// @Summary      Cerrar periodo
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del periodo"
// @Success      200  {object}  dto.PayrollPeriodResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/payroll/periods/{id}/close [post]
func (h *PayrollHandler) ClosePeriod(c *fiber.Ctx) error {
	out, err := h.periods.Close(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Nómina del periodo
// @Description  Un renglón por empleado activo; start_a/end_a y start_c/end_c sustituyen los rangos del grupo.
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        period_id  query  string  false  "Periodo (por defecto el activo)"
// @Param        start_a    query  string  false  "Inicio grupo A"
// @Param        end_a      query  string  false  "Fin grupo A"
// @Param        start_c    query  string  false  "Inicio grupo C"
// @Param        end_c      query  string  false  "Fin grupo C"
// @Success      200  {object}  dto.PayrollSummaryResponse
// @Router       /api/payroll/summary [get]
func (h *PayrollHandler) Summary(c *fiber.Ctx) error {
	var q dto.SummaryQuery
	if err := parseQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	var ov payroll.Overrides
	var err error
	if ov.GroupA, err = optionalRange(q.StartA, q.EndA); err != nil {
		return respondError(c, err)
	}
	if ov.GroupC, err = optionalRange(q.StartC, q.EndC); err != nil {
		return respondError(c, err)
	}
	out, err := h.calc.ComputeSummary(c.UserContext(), GetActor(c), q.PeriodID, ov)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EmployeeDetail godoc
// @Summary      Nómina de un empleado
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        id         path   string  true   "ID del empleado"
// @Param        period_id  query  string  false  "Periodo (por defecto el activo)"
// @Param        start      query  string  false  "Inicio del rango"
// @Param        end        query  string  false  "Fin del rango"
// @Success      200  {object}  dto.PayrollDetailResponse
// @Router       /api/payroll/employees/{id} [get]
func (h *PayrollHandler) EmployeeDetail(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := parseQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	override, err := optionalRange(q.Start, q.End)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.calc.EmployeeDetail(c.UserContext(), GetActor(c), c.Params("id"), c.Query("period_id"), override)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateEmployee godoc
// @Summary      Capturar horas extra, sanciones y comisiones pendientes
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del empleado"
// @Param        body  body  dto.UpdatePayrollRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.PayrollRecordResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payroll/employees/{id} [put]
func (h *PayrollHandler) UpdateEmployee(c *fiber.Ctx) error {
	var in dto.UpdatePayrollRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.calc.UpdateFields(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Mi nómina del periodo activo
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PayrollDetailResponse
// @Router       /api/payroll/me [get]
func (h *PayrollHandler) Me(c *fiber.Ctx) error {
	out, err := h.calc.MySummary(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar nómina
// @Tags         payroll
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        format     query  string  false  "xlsx | pdf"  default(xlsx)
// @Param        period_id  query  string  false  "Periodo (por defecto el activo)"
// @Success      200  {file}  binary
// @Router       /api/payroll/export [get]
func (h *PayrollHandler) Export(c *fiber.Ctx) error {
	file, err := h.calc.Export(c.UserContext(), GetActor(c), c.Query("period_id"), c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Send(file.Content)
}
