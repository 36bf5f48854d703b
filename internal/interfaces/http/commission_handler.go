package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Nomina-api/internal/application/commission"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
)

// CommissionHandler reglas de comisión, tabla de chips, bonos y reportes.
type CommissionHandler struct {
	rules *commission.RulesUseCase
	agg   *commission.Aggregator
}

// NewCommissionHandler construye el handler.
func NewCommissionHandler(rules *commission.RulesUseCase, agg *commission.Aggregator) *CommissionHandler {
	return &CommissionHandler{rules: rules, agg: agg}
}

// ListRules godoc
// @Summary      Listar reglas de comisión por producto
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CommissionRuleResponse
// @Router       /api/commissions/rules [get]
func (h *CommissionHandler) ListRules(c *fiber.Ctx) error {
	out, err := h.rules.ListRules(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateRule godoc
// @Summary      Crear regla de comisión
// @Tags         commissions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommissionRuleRequest  true  "Producto y montos"
// @Success      201   {object}  dto.CommissionRuleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/commissions/rules [post]
func (h *CommissionHandler) CreateRule(c *fiber.Ctx) error {
	var in dto.CommissionRuleRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.rules.CreateRule(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateRule godoc
// @Summary      Actualizar regla de comisión
// @Tags         commissions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la regla"
// @Param        body  body  dto.CommissionRuleRequest  true  "Producto y montos"
// @Success      200   {object}  dto.CommissionRuleResponse
// @Router       /api/commissions/rules/{id} [put]
func (h *CommissionHandler) UpdateRule(c *fiber.Ctx) error {
	var in dto.CommissionRuleRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.rules.UpdateRule(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteRule godoc
// @Summary      Eliminar regla de comisión
// @Tags         commissions
// @Security     Bearer
// @Param        id  path  string  true  "ID de la regla"
// @Success      204
// @Router       /api/commissions/rules/{id} [delete]
func (h *CommissionHandler) DeleteRule(c *fiber.Ctx) error {
	if err := h.rules.DeleteRule(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListChipTables godoc
// @Summary      Tabla de comisiones de chips
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ChipTableResponse
// @Router       /api/commissions/chip-tiers [get]
func (h *CommissionHandler) ListChipTables(c *fiber.Ctx) error {
	out, err := h.rules.ListChipTables(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReplaceChipTable godoc
// @Summary      Reemplazar escalones de un tipo de chip
// @Tags         commissions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        chipType  path  string                true  "Tipo de chip"
// @Param        body      body  dto.ChipTableRequest  true  "Escalones"
// @Success      200       {object}  dto.ChipTableResponse
// @Router       /api/commissions/chip-tiers/{chipType} [put]
func (h *CommissionHandler) ReplaceChipTable(c *fiber.Ctx) error {
	var in dto.ChipTableRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.rules.ReplaceChipTable(c.UserContext(), GetActor(c), c.Params("chipType"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBonuses godoc
// @Summary      Bonos por tipo de venta
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleTypeBonusResponse
// @Router       /api/commissions/bonuses [get]
func (h *CommissionHandler) ListBonuses(c *fiber.Ctx) error {
	out, err := h.rules.ListBonuses(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetBonus godoc
// @Summary      Fijar bono de un tipo de venta
// @Tags         commissions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        saleType  path  string                   true  "Tipo de venta"
// @Param        body      body  dto.SaleTypeBonusRequest  true  "Monto"
// @Success      200       {object}  dto.SaleTypeBonusResponse
// @Router       /api/commissions/bonuses/{saleType} [put]
func (h *CommissionHandler) SetBonus(c *fiber.Ctx) error {
	var in dto.SaleTypeBonusRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.rules.SetBonus(c.UserContext(), GetActor(c), c.Params("saleType"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteBonus godoc
// @Summary      Eliminar bono de un tipo de venta
// @Tags         commissions
// @Security     Bearer
// @Param        saleType  path  string  true  "Tipo de venta"
// @Success      204
// @Router       /api/commissions/bonuses/{saleType} [delete]
func (h *CommissionHandler) DeleteBonus(c *fiber.Ctx) error {
	if err := h.rules.DeleteBonus(c.UserContext(), GetActor(c), c.Params("saleType")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// EmployeeTotals godoc
// @Summary      Comisiones de un empleado en un rango
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true  "ID del empleado"
// @Param        start  query  string  true  "Inicio AAAA-MM-DD"
// @Param        end    query  string  true  "Fin AAAA-MM-DD"
// @Success      200    {object}  dto.CommissionTotalsResponse
// @Router       /api/commissions/employees/{id} [get]
func (h *CommissionHandler) EmployeeTotals(c *fiber.Ctx) error {
	r, err := requiredRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.agg.EmployeeTotals(c.UserContext(), GetActor(c), c.Params("id"), r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AllTotals godoc
// @Summary      Comisiones de todos los empleados en un rango
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "Inicio AAAA-MM-DD"
// @Param        end    query  string  true  "Fin AAAA-MM-DD"
// @Success      200    {array}  dto.CommissionTotalsResponse
// @Router       /api/commissions/all [get]
func (h *CommissionHandler) AllTotals(c *fiber.Ctx) error {
	r, err := requiredRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.agg.AllTotals(c.UserContext(), GetActor(c), r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cycle godoc
// @Summary      Ciclo semanal de comisiones
// @Description  Sin rango: semana actual (lunes a domingo). El rango personalizado es solo para admin y encargado.
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Param        employee_id  query  string  false  "ID del empleado (por defecto el propio)"
// @Param        start        query  string  false  "Inicio AAAA-MM-DD"
// @Param        end          query  string  false  "Fin AAAA-MM-DD"
// @Success      200          {object}  dto.CycleResponse
// @Router       /api/commissions/cycle [get]
func (h *CommissionHandler) Cycle(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := parseQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	custom, err := optionalRange(q.Start, q.End)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.agg.Cycle(c.UserContext(), GetActor(c), c.Query("employee_id"), custom)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
