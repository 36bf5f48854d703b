package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/payroll"
	"github.com/jhoicas/Nomina-api/internal/application/sales"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
)

// SaleHandler punto de venta.
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar venta
// @Description  Una o varias líneas del módulo del vendedor; descuenta inventario en una sola transacción.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Líneas y método de pago"
// @Success      201   {array}   dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.RegisterSale(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Description  Por defecto las de hoy. Asesor: solo las propias; encargado: su módulo.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        start              query  string  false  "Inicio AAAA-MM-DD"
// @Param        end                query  string  false  "Fin AAAA-MM-DD"
// @Param        module_id          query  string  false  "Módulo"
// @Param        employee_id        query  string  false  "Empleado"
// @Param        include_cancelled  query  bool    false  "Incluir canceladas"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var q dto.SaleListQuery
	if err := parseQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	r, err := optionalRange(q.Start, q.End)
	if err != nil {
		return respondError(c, err)
	}
	f := repository.SaleFilter{ModuleID: q.ModuleID, EmployeeID: q.EmployeeID, IncludeCancelled: q.IncludeCancelled}
	if r != nil {
		f.From, f.To = r.Start, r.End
	}
	out, err := h.uc.ListSales(c.UserContext(), GetActor(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar venta
// @Description  Devuelve las piezas al inventario; una venta solo se cancela una vez.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/cancel [post]
func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.CancelSale(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DailyCut godoc
// @Summary      Corte de caja del día
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        module_id  query  string  false  "Módulo (por defecto el asignado)"
// @Param        date       query  string  false  "Día AAAA-MM-DD (por defecto hoy)"
// @Success      200  {object}  dto.DailyCutResponse
// @Router       /api/sales/cut [get]
func (h *SaleHandler) DailyCut(c *fiber.Ctx) error {
	var day time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := payroll.ParseDate(raw)
		if err != nil {
			return respondError(c, err)
		}
		day = d
	}
	out, err := h.uc.DailyCut(c.UserContext(), GetActor(c), c.Query("module_id"), day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
